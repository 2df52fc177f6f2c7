package multiply

import "github.com/katalvlaran/trimul/mat3"

// MultiplyStandard computes C = A·B by the direct triple sum
// C[i][j] = Σ_k A[i][k]·B[k][j].
//
// Cost: exactly 27 scalar multiplications and 18 scalar additions
// (3 products and 2 additions per output entry), independent of input.
//
// This is the reference oracle: total, deterministic, side-effect-free,
// and the variant every other kernel is verified against.
//
// Complexity: Time O(1) (fixed 45 scalar operations), Memory O(1).
func MultiplyStandard(a, b mat3.Mat3) mat3.Mat3 {
	return standardKernel(passthrough{}, a, b)
}

// standardKernel is the triple sum written against a scalar evaluator.
func standardKernel[E ops](e E, a, b mat3.Mat3) mat3.Mat3 {
	var c mat3.Mat3
	for i := 0; i < mat3.Order; i++ {
		for j := 0; j < mat3.Order; j++ {
			// 3 mults, 2 adds per entry
			c[i][j] = e.add(
				e.add(e.mul(a[i][0], b[0][j]), e.mul(a[i][1], b[1][j])),
				e.mul(a[i][2], b[2][j]),
			)
		}
	}

	return c
}

// standardAlgorithm adapts MultiplyStandard to the Algorithm interface.
type standardAlgorithm struct{}

func (standardAlgorithm) Multiply(a, b mat3.Mat3) mat3.Mat3 { return MultiplyStandard(a, b) }
func (standardAlgorithm) Variant() Variant                  { return Standard }
