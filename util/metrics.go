package util

// MetricsBucketsMicroSeconds defines histogram buckets for microsecond-level
// latency measurements.
var MetricsBucketsMicroSeconds = []float64{
	0.000016, 0.000032, 0.000064, 0.000128, 0.000256, 0.000512,
	0.001024, 0.002048, 0.004096, 0.008192, 0.016384,
}

// MetricsBucketsMilliSeconds defines histogram buckets for millisecond-level
// latency measurements.
var MetricsBucketsMilliSeconds = []float64{
	0.001, 0.002, 0.004, 0.008, 0.016, 0.032, 0.064, 0.128, 0.256, 0.512,
	1.024, 2.048, 4.096, 8.192,
}

// MetricsBucketsSeconds defines histogram buckets for second-level
// measurements such as long-running handler calls.
var MetricsBucketsSeconds = []float64{
	0.25, 0.5, 1, 2, 4, 8, 16, 32, 64, 128,
}
