// Package ui provides the visual styling for the deskcalc terminal
// programs. Styling only ever touches the stdout strings; diagnostics on
// stderr stay plain.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deskcalc/internal/calc"
)

// Palette
var (
	Accent  = lipgloss.Color("#8BC34A") // lime green
	Primary = lipgloss.Color("#2196F3") // blue
	Muted   = lipgloss.Color("245")
)

// Styler renders the calculator strings, styled or plain.
type Styler struct {
	enabled bool
	title   lipgloss.Style
	menu    lipgloss.Style
	prompt  lipgloss.Style
	result  lipgloss.Style
}

// NewStyler returns a Styler. When enabled is false every renderer
// falls back to the plain default text.
func NewStyler(enabled bool) *Styler {
	return &Styler{
		enabled: enabled,
		title:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
		menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1),
		prompt: lipgloss.NewStyle().Foreground(Primary),
		result: lipgloss.NewStyle().Bold(true),
	}
}

// CalculatorText returns the strings the calculator session prints.
func (s *Styler) CalculatorText() calc.Text {
	text := calc.DefaultText()
	if !s.enabled {
		return text
	}

	var menu strings.Builder
	fmt.Fprintln(&menu, s.title.Render("Welcome to Simple Calculator"))
	fmt.Fprintln(&menu, "Choose one of the following Options:")
	fmt.Fprint(&menu, strings.Join(calc.MenuLines(), "\n"))

	text.Banner = "\n\n" + s.menu.Render(menu.String()) + "\n"
	text.ChoicePrompt = "\n" + s.prompt.Render("Now Enter your Choice:") + " "
	text.FirstPrompt = "\n" + s.prompt.Render("Please enter the first number:") + " "
	text.SecondPrompt = s.prompt.Render("Now enter the second number:") + " "
	text.ResultFormat = "\n" + s.result.Render("Result of operation is:") + " %.2f\n"
	return text
}
