package metrics_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/trimul/mat3"
	"github.com/katalvlaran/trimul/metrics"
	"github.com/katalvlaran/trimul/multiply"
	"github.com/katalvlaran/trimul/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTallyRecords flattens a Laderman tally and checks names and values.
func TestTallyRecords(t *testing.T) {
	tally := multiply.Tally{Multiplications: 23, Additions: 60}

	recs := metrics.TallyRecords(multiply.Laderman, tally)
	require.Len(t, recs, 3)

	assert.Equal(t, metrics.Record{MetricName: "laderman_multiplications", Value: 23, Valid: true}, recs[0])
	assert.Equal(t, metrics.Record{MetricName: "laderman_additions", Value: 60, Valid: true}, recs[1])
	assert.Equal(t, metrics.Record{MetricName: "laderman_total_operations", Value: 83, Valid: true}, recs[2])
}

// TestReportRecords_PassAndFail checks the verification flattening for a
// passing and a failing report.
func TestReportRecords_PassAndFail(t *testing.T) {
	pass := verify.Report{
		Passed: true,
		Cases: []verify.CaseReport{
			{CaseID: "zero", Variant: multiply.Laderman, MaxAbsError: 0, Passed: true},
			{CaseID: "trial-0", Variant: multiply.Laderman, MaxAbsError: 2e-16, Passed: true},
		},
	}

	recs := metrics.ReportRecords(pass)
	require.Len(t, recs, 4)
	assert.Equal(t, metrics.Record{MetricName: "verification_cases", Value: 2, Valid: true}, recs[0])
	assert.Equal(t, metrics.Record{MetricName: "verification_failures", Value: 0, Valid: true}, recs[1])
	assert.Equal(t, metrics.Record{MetricName: "verification_max_abs_error", Value: 2e-16, Valid: true}, recs[2])
	assert.Equal(t, metrics.Record{MetricName: "verification_passed", Value: 1, Valid: true}, recs[3])

	fail := pass
	fail.Passed = false
	fail.Cases = append(fail.Cases, verify.CaseReport{
		CaseID: "trial-1", Variant: multiply.Laderman, MaxAbsError: 0.5, Passed: false,
	})

	recs = metrics.ReportRecords(fail)
	assert.Equal(t, 1.0, recs[1].Value, "one failure")
	assert.Equal(t, 0.5, recs[2].Value, "worst error wins")
	assert.Equal(t, metrics.Record{MetricName: "verification_passed", Value: 0, Valid: false}, recs[3])
}

// TestEncode_SingleObject verifies the sink's per-file object format.
func TestEncode_SingleObject(t *testing.T) {
	var buf bytes.Buffer
	rec := metrics.Record{MetricName: "score", Value: 45, Valid: true}

	require.NoError(t, metrics.Encode(&buf, rec))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "score", decoded["metric_name"])
	assert.Equal(t, 45.0, decoded["value"])
	assert.Equal(t, true, decoded["valid"])
}

// TestEncode_Array verifies several records encode as a JSON array.
func TestEncode_Array(t *testing.T) {
	var buf bytes.Buffer
	recs := metrics.TallyRecords(multiply.Standard, multiply.Tally{Multiplications: 27, Additions: 18})

	require.NoError(t, metrics.Encode(&buf, recs...))

	var decoded []metrics.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, recs, decoded)
}

// TestRecords_EndToEnd drives a real counted multiply and a real small
// verification run through the flattening.
func TestRecords_EndToEnd(t *testing.T) {
	a := multiply.Variants()
	require.Len(t, a, 3)

	_, tally, err := multiply.MultiplyWithCount(multiply.StrassenBlock, mat3.Ones(), mat3.Ones())
	require.NoError(t, err)
	recs := metrics.TallyRecords(multiply.StrassenBlock, tally)
	assert.Equal(t, 26.0, recs[0].Value)
	assert.Equal(t, 32.0, recs[1].Value)

	report, err := verify.Verify(verify.Options{Seed: 42, Trials: 10, Tolerance: 1e-9})
	require.NoError(t, err)
	recs = metrics.ReportRecords(report)
	assert.Equal(t, metrics.Record{MetricName: "verification_passed", Value: 1, Valid: true}, recs[3])
}
