package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trimul/multiply"
)

var (
	// ErrBadTrials indicates a negative trial count.
	ErrBadTrials = errors.New("verify: trial count must be non-negative")
	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("verify: tolerance must be positive and finite")
	// ErrNilAlgorithm indicates a nil reference or candidate algorithm.
	ErrNilAlgorithm = errors.New("verify: algorithm must not be nil")
	// ErrToleranceExceeded is the sentinel behind every ToleranceError;
	// match it with errors.Is.
	ErrToleranceExceeded = errors.New("verify: tolerance exceeded")
)

// ToleranceError reports the first failing case found by strict-mode
// verification. It always carries the reproducing triple: the algorithm
// variant, the test case identifier, and the measured maximum absolute
// error.
type ToleranceError struct {
	Variant     multiply.Variant
	CaseID      string
	MaxAbsError float64
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("verify: %s failed case %q: max abs error %g", e.Variant, e.CaseID, e.MaxAbsError)
}

// Unwrap makes errors.Is(err, ErrToleranceExceeded) hold.
func (e *ToleranceError) Unwrap() error { return ErrToleranceExceeded }
