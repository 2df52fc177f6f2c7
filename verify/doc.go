// Package verify cross-checks the multiply kernels against the standard
// triple-sum oracle over deterministic and randomized matrix corpora.
//
// A single transcription error in a bilinear kernel — one flipped sign,
// one swapped operand — produces numerically wrong but plausible-looking
// results and raises no runtime error. This harness is the safety net:
// it catches such faults deterministically (fixed edge cases) and
// statistically (seeded randomized sweeps).
//
// Corpus:
//  1. Fixed cases, always first and in this order:
//     "zero"     — zero · zero
//     "identity" — I · I
//     "integer"  — [[1,2,3],[4,5,6],[7,8,9]] · [[9,8,7],[6,5,4],[3,2,1]]
//     "ones"     — all-ones · all-ones
//  2. "trial-N" for N = 0..Trials-1 — pairs with entries ~ N(0,1) drawn
//     from an independent PCG stream keyed (Seed, N).
//
// Keying each trial by index makes the corpus a pure function of
// (Seed, Trials): the same matrices arise no matter how many workers
// consume them, and the full corpus is materialized before evaluation, so
// callers may fan the cases out without any shared generator state.
//
// Modes:
//
//   - Verify / VerifyAlgorithms — evaluate every case for every candidate
//     and report all of them; no short-circuiting. The aggregate Report
//     carries the complete failing-case list alongside the overall pass
//     boolean.
//
//   - VerifyStrict — fail-fast: returns a *ToleranceError for the first
//     failing case (in corpus order) and nil when everything passes.
//     The error carries the reproducing triple: variant, case id, and
//     measured maximum absolute error.
//
// Errors:
//
//	ErrBadTrials         — negative trial count.
//	ErrBadTolerance      — tolerance ≤ 0 or non-finite.
//	ErrNilAlgorithm      — nil reference or candidate.
//	ErrToleranceExceeded — strict mode found a failing case (via ToleranceError).
//
// The harness is test-time machinery: it allocates the corpus up front
// and favors reproducibility over throughput.
package verify
