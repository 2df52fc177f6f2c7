package multiply_test

import (
	"math/rand/v2"

	"github.com/katalvlaran/trimul/mat3"
)

// integerA and integerB are the fixed integer pair; every entry and every
// entry of the true product is exactly representable in float64, so the
// three algorithms must agree exactly, not merely within tolerance.
var (
	integerA = mat3.Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	integerB = mat3.Mat3{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}

	// integerProduct = integerA · integerB.
	integerProduct = mat3.Mat3{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}}
)

// randomMat3 fills a Mat3 with N(0,1) entries from rng, row-major.
func randomMat3(rng *rand.Rand) mat3.Mat3 {
	var m mat3.Mat3
	for i := 0; i < mat3.Order; i++ {
		for j := 0; j < mat3.Order; j++ {
			m[i][j] = rng.NormFloat64()
		}
	}

	return m
}

// randomPair derives a deterministic (A, B) pair for a trial index from a
// per-trial PCG stream keyed (seed, trial).
func randomPair(seed uint64, trial int) (a, b mat3.Mat3) {
	rng := rand.New(rand.NewPCG(seed, uint64(trial)))

	return randomMat3(rng), randomMat3(rng)
}
