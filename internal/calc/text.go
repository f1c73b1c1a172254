package calc

import (
	"fmt"
	"strings"
)

// Text holds the user-facing strings a Session writes to stdout. The
// defaults are plain; the ui package supplies a styled variant for
// terminals. Diagnostics are not part of Text: they go to stderr and
// stay unstyled so they remain grep-able.
type Text struct {
	Banner       string
	ChoicePrompt string
	FirstPrompt  string
	SecondPrompt string
	ResultFormat string // printf verb string receiving the result value
	Farewell     string
}

// DefaultText returns the unstyled calculator strings.
func DefaultText() Text {
	var b strings.Builder
	rule := strings.Repeat("-", 30)
	fmt.Fprintf(&b, "\n\n%s\n", rule)
	fmt.Fprintln(&b, "Welcome to Simple Calculator")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Choose one of the following Options:")
	for _, line := range MenuLines() {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b, rule)

	return Text{
		Banner:       b.String(),
		ChoicePrompt: "\nNow Enter your Choice: ",
		FirstPrompt:  "\nPlease enter the first number: ",
		SecondPrompt: "Now enter the second number: ",
		ResultFormat: "\nResult of operation is: %.2f\n",
		Farewell:     "Exiting calculator. Goodbye!\n",
	}
}
