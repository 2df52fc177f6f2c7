package verify

import "github.com/katalvlaran/trimul/multiply"

// Defaults for Options; DefaultOptions mirrors these exactly.
const (
	// DefaultSeed keys the randomized corpus.
	DefaultSeed uint64 = 42
	// DefaultTrials is the randomized sweep size.
	DefaultTrials = 10000
	// DefaultTolerance is the per-entry absolute error bound for
	// unit-scale inputs.
	DefaultTolerance = 1e-9
)

// Options configures a verification run.
//
// Fields:
//   - Seed      — keys every randomized trial; identical seeds yield
//     identical corpora regardless of evaluation order.
//   - Trials    — number of randomized N(0,1) pairs appended after the
//     fixed cases. Zero runs the fixed cases only; negative is ErrBadTrials.
//   - Tolerance — per-entry absolute error bound; a case passes when its
//     maximum absolute error is strictly below it.
type Options struct {
	Seed      uint64
	Trials    int
	Tolerance float64
}

// DefaultOptions returns the documented defaults: seed 42, 10000 trials,
// tolerance 1e-9.
func DefaultOptions() Options {
	return Options{
		Seed:      DefaultSeed,
		Trials:    DefaultTrials,
		Tolerance: DefaultTolerance,
	}
}

// CaseReport records one (test case, candidate variant) evaluation.
type CaseReport struct {
	// CaseID names the corpus entry ("zero", "identity", "integer",
	// "ones", or "trial-N").
	CaseID string
	// Variant is the candidate algorithm evaluated.
	Variant multiply.Variant
	// MaxAbsError is max over entries of |candidate - reference|.
	MaxAbsError float64
	// Passed is MaxAbsError < tolerance.
	Passed bool
}

// Report aggregates every CaseReport of one verification run.
// It is retained only for the duration of the run's consumption; nothing
// in this package holds onto it.
type Report struct {
	// Passed is true when every case passed.
	Passed bool
	// Cases lists every evaluation in corpus order, pass or fail.
	Cases []CaseReport
}

// Failures returns the failing cases in corpus order; empty when the run
// passed.
func (r Report) Failures() []CaseReport {
	var failed []CaseReport
	for _, c := range r.Cases {
		if !c.Passed {
			failed = append(failed, c)
		}
	}

	return failed
}
