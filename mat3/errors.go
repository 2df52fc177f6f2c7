package mat3

import "errors"

var (
	// ErrDimension indicates that dynamically-shaped input was not exactly 3×3.
	ErrDimension = errors.New("mat3: input must be exactly 3x3")
	// ErrOutOfRange indicates that an index (row or column) is outside 0..2.
	ErrOutOfRange = errors.New("mat3: index out of range")
	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("mat3: NaN or Inf encountered")
)
