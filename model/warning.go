package model

// Warning is a data-quality finding about a basal series.
type Warning struct {
	Severity string `json:"severity"` // "info", "warn", "crit"
	Signal   string `json:"signal"`   // short label
	Detail   string `json:"detail"`   // explanation
	Value    string `json:"value"`    // count and first occurrence
	UTC      int64  `json:"utc"`      // start of the first offending event
}
