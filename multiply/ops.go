package multiply

// ops is the scalar evaluator every kernel is written against. Writing the
// formulas once and instantiating them with either evaluator keeps the
// measured tallies and the computed results in lockstep: a refactor that
// changes one changes the other.
//
// Unary negation is intentionally absent — a sign flip is not a scalar
// addition or multiplication and is never tallied.
type ops interface {
	mul(x, y float64) float64
	add(x, y float64) float64
	sub(x, y float64) float64
}

// passthrough evaluates scalars directly. It is a zero-size value type so
// the generic kernel instantiations compile down to plain arithmetic.
type passthrough struct{}

func (passthrough) mul(x, y float64) float64 { return x * y }
func (passthrough) add(x, y float64) float64 { return x + y }
func (passthrough) sub(x, y float64) float64 { return x - y }

// counting evaluates scalars while accumulating a call-local Tally.
// Subtraction counts as one addition.
type counting struct{ t *Tally }

func (c counting) mul(x, y float64) float64 {
	c.t.Multiplications++

	return x * y
}

func (c counting) add(x, y float64) float64 {
	c.t.Additions++

	return x + y
}

func (c counting) sub(x, y float64) float64 {
	c.t.Additions++

	return x - y
}
