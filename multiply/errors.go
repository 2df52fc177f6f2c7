package multiply

import "errors"

var (
	// ErrUnknownVariant indicates a Variant value outside the closed set
	// {Standard, StrassenBlock, Laderman}.
	ErrUnknownVariant = errors.New("multiply: unknown algorithm variant")

	// ErrBadCostModel indicates a CostModel whose weights are both
	// non-positive; no canonical cost minimizer exists in that case.
	ErrBadCostModel = errors.New("multiply: cost model weights must not both be non-positive")
)
