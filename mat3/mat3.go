package mat3

import "math"

// Order is the fixed dimension of every matrix in this package.
const Order = 3

// Mat3 is a 3×3 matrix of float64, row-major: m[i][j] is row i, column j.
// It is a value type; pass it by value for read-only use.
type Mat3 [Order][Order]float64

// Mat2 is a 2×2 matrix of float64, row-major. It appears as the leading
// block in the Strassen border decomposition.
type Mat2 [2][2]float64

// Zero returns the 3×3 zero matrix.
func Zero() Mat3 { return Mat3{} }

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Ones returns the 3×3 matrix with every entry equal to 1.
func Ones() Mat3 {
	return Mat3{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
}

// FromRows builds a Mat3 from dynamically-shaped rows.
//
// It is the single ingestion point for untyped data (decoded JSON, parsed
// text, test fixtures) and enforces two policies that the Mat3 type itself
// cannot:
//   - shape: rows must be exactly 3 slices of exactly 3 entries (ErrDimension);
//   - numeric: every entry must be finite (ErrNaNInf).
//
// Complexity: O(1) — nine entries.
func FromRows(rows [][]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != Order {
		return m, ErrDimension
	}
	for i, row := range rows {
		if len(row) != Order {
			return m, ErrDimension
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return m, ErrNaNInf
			}
			m[i][j] = v
		}
	}

	return m, nil
}

// At returns the entry at row i, column j, or ErrOutOfRange when either
// index falls outside 0..2. Hot-path code should index the array directly.
func (m Mat3) At(i, j int) (float64, error) {
	if i < 0 || i >= Order || j < 0 || j >= Order {
		return 0, ErrOutOfRange
	}

	return m[i][j], nil
}

// Block11 returns the leading 2×2 block m[0..1][0..1].
func (m Mat3) Block11() Mat2 {
	return Mat2{
		{m[0][0], m[0][1]},
		{m[1][0], m[1][1]},
	}
}

// MaxAbsDiff returns max over all entries of |a[i][j] - b[i][j]|.
// This is the error metric used by the verification harness.
func MaxAbsDiff(a, b Mat3) float64 {
	var maxDiff float64
	for i := 0; i < Order; i++ {
		for j := 0; j < Order; j++ {
			d := math.Abs(a[i][j] - b[i][j])
			if d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff
}

// Equal reports whether a and b agree entrywise within eps.
// eps = 0 demands exact equality.
func Equal(a, b Mat3, eps float64) bool {
	return MaxAbsDiff(a, b) <= eps
}
