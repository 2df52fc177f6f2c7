package verify

import (
	"math"

	"github.com/katalvlaran/trimul/mat3"
	"github.com/katalvlaran/trimul/multiply"
)

// Verify cross-checks StrassenBlock and Laderman against the Standard
// oracle over the full corpus described in the package documentation.
//
// Every case is evaluated and reported even after a failure; the Report
// exposes the complete failing list via Failures() alongside the overall
// Passed boolean. A correct implementation passes
// Verify(DefaultOptions()) — seed 42, 10000 trials, tolerance 1e-9.
//
// Errors:
//   - ErrBadTrials, ErrBadTolerance — invalid Options.
func Verify(opts Options) (Report, error) {
	ref, candidates := standardSuite()

	return VerifyAlgorithms(ref, candidates, opts)
}

// VerifyAlgorithms cross-checks arbitrary candidates against an arbitrary
// reference. It exists so tests can drive deliberately faulty candidates
// through the exact harness that certifies the real kernels.
//
// For each corpus case the reference result is computed once, then every
// candidate's maximum absolute entrywise error against it is recorded as
// a CaseReport with Passed = (error < opts.Tolerance). Evaluation never
// short-circuits.
//
// Errors:
//   - ErrBadTrials, ErrBadTolerance — invalid Options.
//   - ErrNilAlgorithm — nil reference or candidate.
func VerifyAlgorithms(reference multiply.Algorithm, candidates []multiply.Algorithm, opts Options) (Report, error) {
	if err := validate(reference, candidates, opts); err != nil {
		return Report{}, err
	}

	cases := corpus(opts)
	report := Report{
		Passed: true,
		Cases:  make([]CaseReport, 0, len(cases)*len(candidates)),
	}

	for _, tc := range cases {
		ref := reference.Multiply(tc.a, tc.b)
		for _, cand := range candidates {
			diff := mat3.MaxAbsDiff(cand.Multiply(tc.a, tc.b), ref)
			passed := diff < opts.Tolerance
			if !passed {
				report.Passed = false
			}
			report.Cases = append(report.Cases, CaseReport{
				CaseID:      tc.id,
				Variant:     cand.Variant(),
				MaxAbsError: diff,
				Passed:      passed,
			})
		}
	}

	return report, nil
}

// VerifyStrict is the fail-fast mode: it stops at the first failing case
// in corpus order and returns a *ToleranceError carrying the reproducing
// triple (variant, case id, measured maximum absolute error). It returns
// nil when the full corpus passes.
//
// Errors:
//   - ErrBadTrials, ErrBadTolerance — invalid Options.
//   - ErrToleranceExceeded (as *ToleranceError) — first failing case.
func VerifyStrict(opts Options) error {
	ref, candidates := standardSuite()
	if err := validate(ref, candidates, opts); err != nil {
		return err
	}

	for _, tc := range corpus(opts) {
		want := ref.Multiply(tc.a, tc.b)
		for _, cand := range candidates {
			diff := mat3.MaxAbsDiff(cand.Multiply(tc.a, tc.b), want)
			if diff >= opts.Tolerance {
				return &ToleranceError{
					Variant:     cand.Variant(),
					CaseID:      tc.id,
					MaxAbsError: diff,
				}
			}
		}
	}

	return nil
}

// standardSuite returns the default harness wiring: Standard as the
// reference, StrassenBlock and Laderman as candidates. Variant values are
// compile-time members of the closed set, so construction cannot fail.
func standardSuite() (multiply.Algorithm, []multiply.Algorithm) {
	ref, _ := multiply.New(multiply.Standard)
	sb, _ := multiply.New(multiply.StrassenBlock)
	ld, _ := multiply.New(multiply.Laderman)

	return ref, []multiply.Algorithm{sb, ld}
}

// validate guards the configuration surface so the evaluation loops stay
// branch-free.
func validate(reference multiply.Algorithm, candidates []multiply.Algorithm, opts Options) error {
	if opts.Trials < 0 {
		return ErrBadTrials
	}
	if opts.Tolerance <= 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
		return ErrBadTolerance
	}
	if reference == nil {
		return ErrNilAlgorithm
	}
	for _, cand := range candidates {
		if cand == nil {
			return ErrNilAlgorithm
		}
	}

	return nil
}
