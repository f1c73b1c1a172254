// Package calc implements the interactive menu calculator: selection
// parsing, operand acquisition and the operation dispatch loop.
//
// The calculator reads whitespace-delimited tokens from a line-oriented
// input stream. Every recoverable failure discards the remainder of the
// offending line before re-prompting, so a single bad line never poisons
// the next cycle.
package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// Selection identifies one entry of the calculator menu.
type Selection int

const (
	Add Selection = iota + 1
	Subtract
	Multiply
	Divide
	Remainder
	Power
	Exit
)

// ErrMalformedSelection reports a selection token that is not an integer.
var ErrMalformedSelection = errors.New("selection is not a number")

// RangeError reports an integer selection outside the menu range.
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("selection %d is not between %d and %d", e.Value, int(Add), int(Exit))
}

// ParseSelection converts a raw input token into a validated Selection.
// Non-integer tokens fail with ErrMalformedSelection; integers outside
// [Add, Exit] fail with a *RangeError. The two failures are distinct
// because the loop recovers from them differently.
func ParseSelection(token string) (Selection, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSelection, token)
	}
	if n < int(Add) || n > int(Exit) {
		return 0, &RangeError{Value: n}
	}
	return Selection(n), nil
}

// parseOperand converts a raw input token into an operand value.
func parseOperand(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("operand %q is not a number", token)
	}
	return v, nil
}

// NeedsOperands reports whether the selection requires two operands.
func (s Selection) NeedsOperands() bool {
	return s != Exit
}

func (s Selection) String() string {
	switch s {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Remainder:
		return "Remainder"
	case Power:
		return "Power"
	case Exit:
		return "Exit"
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// MenuLines returns the numbered menu entries in selection order.
// Both the plain banner and the styled one are built from these, so the
// menu text has a single source.
func MenuLines() []string {
	lines := make([]string, 0, int(Exit))
	for s := Add; s <= Exit; s++ {
		lines = append(lines, fmt.Sprintf("%d. %s", int(s), s))
	}
	return lines
}
