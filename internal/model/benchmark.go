package model

// BenchmarkRow is one fixed row of the results table.
// All cells are literal display text copied straight into the table;
// nothing is computed from them at render time.
type BenchmarkRow struct {
	// Name labels the measured quantity, e.g. "Median latency (p50)".
	Name string `json:"name"`

	// Baseline is the untuned measurement, e.g. "45ms".
	Baseline string `json:"baseline"`

	// Tuned is the measurement under the tuned configuration, e.g. "26ms".
	Tuned string `json:"tuned"`

	// Change is the formatted improvement, a percentage or multiplier.
	Change string `json:"change"`
}
