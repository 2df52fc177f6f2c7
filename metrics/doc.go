// Package metrics flattens kernel outputs — operation tallies and
// verification reports — into the plain records the downstream metrics
// sink consumes: {"metric_name": ..., "value": ..., "valid": ...}.
//
// The sink itself (run tracking, dashboards, figure rendering) is an
// external collaborator; this package only defines the boundary value and
// its JSON encoding, so the kernel never prints measurements as a side
// effect of computing them.
//
// Usage:
//
//	_, tally, _ := multiply.MultiplyWithCount(multiply.Laderman, a, b)
//	recs := metrics.TallyRecords(multiply.Laderman, tally)
//	_ = metrics.Encode(os.Stdout, recs...)
package metrics
