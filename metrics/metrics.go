package metrics

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/katalvlaran/trimul/multiply"
	"github.com/katalvlaran/trimul/verify"
)

// Record is one flat metric for the external sink. Valid marks whether
// the value may be consumed downstream; an invalid record documents that
// a measurement happened but should not be trusted.
type Record struct {
	MetricName string  `json:"metric_name"`
	Value      float64 `json:"value"`
	Valid      bool    `json:"valid"`
}

// TallyRecords flattens one multiply tally into three records:
// <variant>_multiplications, <variant>_additions and
// <variant>_total_operations, with the variant name lowercased.
func TallyRecords(v multiply.Variant, t multiply.Tally) []Record {
	prefix := strings.ToLower(v.String())

	return []Record{
		{MetricName: prefix + "_multiplications", Value: float64(t.Multiplications), Valid: true},
		{MetricName: prefix + "_additions", Value: float64(t.Additions), Valid: true},
		{MetricName: prefix + "_total_operations", Value: float64(t.Total()), Valid: true},
	}
}

// ReportRecords flattens a verification report:
//
//	verification_cases         — number of evaluated (case, variant) pairs
//	verification_failures      — number of failing pairs
//	verification_max_abs_error — worst error observed across all pairs
//	verification_passed        — 1 or 0; Valid mirrors the pass boolean so
//	                             a failed run is visibly untrustworthy
func ReportRecords(r verify.Report) []Record {
	var maxErr float64
	for _, c := range r.Cases {
		if c.MaxAbsError > maxErr {
			maxErr = c.MaxAbsError
		}
	}

	passed := 0.0
	if r.Passed {
		passed = 1.0
	}

	return []Record{
		{MetricName: "verification_cases", Value: float64(len(r.Cases)), Valid: true},
		{MetricName: "verification_failures", Value: float64(len(r.Failures())), Valid: true},
		{MetricName: "verification_max_abs_error", Value: maxErr, Valid: true},
		{MetricName: "verification_passed", Value: passed, Valid: r.Passed},
	}
}

// Encode writes records to w as one indented JSON document: a single
// record encodes as an object (the sink's per-file format), several as
// an array.
func Encode(w io.Writer, recs ...Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(recs) == 1 {
		return enc.Encode(recs[0])
	}

	return enc.Encode(recs)
}
