package verify

import (
	"math/rand/v2"
	"strconv"

	"github.com/katalvlaran/trimul/mat3"
)

// testCase is one corpus entry: a named (A, B) pair.
type testCase struct {
	id   string
	a, b mat3.Mat3
}

// randomMat3 fills a Mat3 with N(0,1) entries, row-major.
func randomMat3(rng *rand.Rand) mat3.Mat3 {
	var m mat3.Mat3
	for i := 0; i < mat3.Order; i++ {
		for j := 0; j < mat3.Order; j++ {
			m[i][j] = rng.NormFloat64()
		}
	}

	return m
}

// pairForTrial derives the (A, B) pair for one trial from an independent
// PCG stream keyed (seed, trial): A is drawn first, then B. Keying by
// trial index — rather than advancing one shared generator — keeps the
// corpus identical under any evaluation order or degree of parallelism.
func pairForTrial(seed uint64, trial int) (a, b mat3.Mat3) {
	rng := rand.New(rand.NewPCG(seed, uint64(trial)))

	return randomMat3(rng), randomMat3(rng)
}

// corpus materializes the full deterministic case list: the four fixed
// edge cases followed by Trials randomized pairs.
func corpus(opts Options) []testCase {
	cases := make([]testCase, 0, 4+opts.Trials)
	cases = append(cases,
		testCase{id: "zero", a: mat3.Zero(), b: mat3.Zero()},
		testCase{id: "identity", a: mat3.Identity(), b: mat3.Identity()},
		testCase{
			id: "integer",
			a:  mat3.Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			b:  mat3.Mat3{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}},
		},
		testCase{id: "ones", a: mat3.Ones(), b: mat3.Ones()},
	)

	for trial := 0; trial < opts.Trials; trial++ {
		a, b := pairForTrial(opts.Seed, trial)
		cases = append(cases, testCase{id: "trial-" + strconv.Itoa(trial), a: a, b: b})
	}

	return cases
}
