package multiply

import (
	"strconv"

	"github.com/katalvlaran/trimul/mat3"
)

// Variant is the closed tagged choice of multiplication algorithms.
// It carries no hidden state; the zero value is Standard.
type Variant int

const (
	// Standard is the direct triple-sum algorithm (27 mult, 18 add).
	Standard Variant = iota
	// StrassenBlock is the 2×2 Strassen core with direct border products
	// (26 mult, 32 add).
	StrassenBlock
	// Laderman is the rank-23 bilinear algorithm (23 mult, 60 add).
	Laderman
)

// Closed-form operation counts per variant. These are fixed properties of
// the formulations in this package, independent of input values; the
// counter tests assert that measured tallies match them exactly.
const (
	// StandardMultiplications and StandardAdditions: 9 outputs × 3 products
	// and × 2 additions each.
	StandardMultiplications = 27
	StandardAdditions       = 18

	// StrassenBlockMultiplications and StrassenBlockAdditions: 7 Strassen
	// products + 19 border products; 18 Strassen additions + 5 border dot
	// additions + 9 assembly additions.
	StrassenBlockMultiplications = 26
	StrassenBlockAdditions       = 32

	// LadermanMultiplications and LadermanAdditions: 23 signed products;
	// 12 preprocessing + 20 in-product + 9 aggregation + 19 output
	// additions/subtractions, unary sign flips untallied.
	LadermanMultiplications = 23
	LadermanAdditions       = 60
)

// Tally records the scalar operations performed by exactly one multiply
// call. It is call-local: born at the start of an instrumented multiply,
// returned to the caller, never shared or reused across calls.
type Tally struct {
	Multiplications int
	Additions       int
}

// Total returns Multiplications + Additions.
func (t Tally) Total() int { return t.Multiplications + t.Additions }

// String returns the variant name, or "Variant(n)" for out-of-range values.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "Standard"
	case StrassenBlock:
		return "StrassenBlock"
	case Laderman:
		return "Laderman"
	default:
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// Counts returns the fixed documented operation counts for v.
// Unknown variants report (0, 0); New and MultiplyWithCount are the
// validating entry points.
func (v Variant) Counts() (mults, adds int) {
	switch v {
	case Standard:
		return StandardMultiplications, StandardAdditions
	case StrassenBlock:
		return StrassenBlockMultiplications, StrassenBlockAdditions
	case Laderman:
		return LadermanMultiplications, LadermanAdditions
	default:
		return 0, 0
	}
}

// Algorithm is the single capability every multiplication variant
// implements. Multiply must be pure: inputs are read-only and the result
// is freshly built on every call.
type Algorithm interface {
	// Multiply returns the product a·b.
	Multiply(a, b mat3.Mat3) mat3.Mat3
	// Variant identifies the algorithm for reports and tallies.
	Variant() Variant
}

// New returns the Algorithm implementation for v, or ErrUnknownVariant
// for values outside the closed set.
func New(v Variant) (Algorithm, error) {
	switch v {
	case Standard:
		return standardAlgorithm{}, nil
	case StrassenBlock:
		return strassenAlgorithm{}, nil
	case Laderman:
		return ladermanAlgorithm{}, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// Variants returns the closed set in canonical order:
// Standard, StrassenBlock, Laderman.
func Variants() []Variant {
	return []Variant{Standard, StrassenBlock, Laderman}
}
