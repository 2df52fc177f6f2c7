package metrics_test

import (
	"os"

	"github.com/katalvlaran/trimul/mat3"
	"github.com/katalvlaran/trimul/metrics"
	"github.com/katalvlaran/trimul/multiply"
)

// ExampleTallyRecords counts one Laderman multiply and emits the flat
// records the sink expects.
func ExampleTallyRecords() {
	_, tally, err := multiply.MultiplyWithCount(multiply.Laderman, mat3.Identity(), mat3.Ones())
	if err != nil {
		panic(err)
	}

	if err := metrics.Encode(os.Stdout, metrics.TallyRecords(multiply.Laderman, tally)...); err != nil {
		panic(err)
	}
	// Output:
	// [
	//   {
	//     "metric_name": "laderman_multiplications",
	//     "value": 23,
	//     "valid": true
	//   },
	//   {
	//     "metric_name": "laderman_additions",
	//     "value": 60,
	//     "valid": true
	//   },
	//   {
	//     "metric_name": "laderman_total_operations",
	//     "value": 83,
	//     "valid": true
	//   }
	// ]
}

// ExampleEncode shows the single-record object form.
func ExampleEncode() {
	rec := metrics.Record{MetricName: "verification_passed", Value: 1, Valid: true}
	if err := metrics.Encode(os.Stdout, rec); err != nil {
		panic(err)
	}
	// Output:
	// {
	//   "metric_name": "verification_passed",
	//   "value": 1,
	//   "valid": true
	// }
}
