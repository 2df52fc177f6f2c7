package multiply

import "github.com/katalvlaran/trimul/mat3"

// MultiplyWithCount runs the chosen variant on (a, b) and returns the
// product together with the Tally of scalar operations performed by that
// one call.
//
// The tally is measured, not looked up: the kernel executes with a
// counting evaluator over the same formula text as the uninstrumented
// entry points. For a given variant the result is input-independent —
// Standard (27, 18), StrassenBlock (26, 32), Laderman (23, 60) — and a
// test asserting these exact values catches silent algorithmic drift
// introduced by refactoring.
//
// The returned Tally is call-local; it is never shared or reused.
//
// Errors:
//   - ErrUnknownVariant — v is outside the closed set.
func MultiplyWithCount(v Variant, a, b mat3.Mat3) (mat3.Mat3, Tally, error) {
	var t Tally
	e := counting{t: &t}

	var c mat3.Mat3
	switch v {
	case Standard:
		c = standardKernel(e, a, b)
	case StrassenBlock:
		c = strassenKernel(e, a, b)
	case Laderman:
		c = ladermanKernel(e, a, b)
	default:
		return mat3.Mat3{}, Tally{}, ErrUnknownVariant
	}

	return c, t, nil
}
