package calc

import "math"

const (
	diagDivideByZero    = "Error: Cannot divide by zero."
	diagRemainderByZero = "Error: Division by zero in remainder operation."
)

// Apply computes the binary operation selected by s over a and b.
// Division and remainder by zero yield an undefined Result carrying
// their diagnostic. Power is deliberately unguarded: math.Pow semantics
// pass through, and a NaN outcome becomes a silent undefined Result.
func (s Selection) Apply(a, b float64) Result {
	switch s {
	case Add:
		return Defined(a + b)
	case Subtract:
		return Defined(a - b)
	case Multiply:
		return Defined(a * b)
	case Divide:
		if b == 0 {
			return Undefined(diagDivideByZero)
		}
		return Defined(a / b)
	case Remainder:
		if b == 0 {
			return Undefined(diagRemainderByZero)
		}
		// math.Mod keeps the sign of the dividend, matching the
		// floating-point remainder the menu advertises.
		return Defined(math.Mod(a, b))
	case Power:
		v := math.Pow(a, b)
		if math.IsNaN(v) {
			return Undefined("")
		}
		return Defined(v)
	}
	// Unreachable once ParseSelection has validated the choice.
	return Undefined("")
}
