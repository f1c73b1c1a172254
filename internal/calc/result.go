package calc

import "fmt"

// Result is the outcome of one arithmetic dispatch: either a defined
// numeric value, or an undefined outcome carrying the diagnostic to show
// for it. An undefined result with an empty diagnostic (a NaN that
// leaked out of the exponentiation primitive) suppresses the result line
// without printing anything.
type Result struct {
	value      float64
	defined    bool
	diagnostic string
}

// Defined wraps a computed value.
func Defined(v float64) Result {
	return Result{value: v, defined: true}
}

// Undefined marks a mathematically undefined outcome. The diagnostic is
// the full sentence the loop emits on stderr.
func Undefined(diagnostic string) Result {
	return Result{diagnostic: diagnostic}
}

// Defined reports whether the result holds a numeric value.
func (r Result) Defined() bool {
	return r.defined
}

// Value returns the numeric value. Only meaningful when Defined.
func (r Result) Value() float64 {
	return r.value
}

// Diagnostic returns the stderr message for an undefined result, or ""
// when there is nothing to report.
func (r Result) Diagnostic() string {
	return r.diagnostic
}

func (r Result) String() string {
	if !r.defined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", r.value)
}
