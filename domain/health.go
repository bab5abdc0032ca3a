package domain

// Bucket is one of the five mutually exclusive health categories
type Bucket string

const (
	BucketWorking     Bucket = "working"
	BucketWarnings    Bucket = "warnings"
	BucketErrors      Bucket = "errors"
	BucketMissing     Bucket = "missing"
	BucketCrossSystem Bucket = "cross_system"
)

// SystemHealth groups a run's results into the five-bucket taxonomy.
// Every result of a run appears in exactly one bucket; within a bucket
// insertion order is preserved.
type SystemHealth struct {
	Working     []TestResult `json:"working" yaml:"working"`
	Warnings    []TestResult `json:"warnings" yaml:"warnings"`
	Errors      []TestResult `json:"errors" yaml:"errors"`
	Missing     []TestResult `json:"missing" yaml:"missing"`
	CrossSystem []TestResult `json:"cross_system" yaml:"cross_system"`
}

// Total returns the number of results across all buckets
func (h *SystemHealth) Total() int {
	return len(h.Working) + len(h.Warnings) + len(h.Errors) + len(h.Missing) + len(h.CrossSystem)
}

// Append adds a result to the given bucket
func (h *SystemHealth) Append(bucket Bucket, r TestResult) {
	switch bucket {
	case BucketWorking:
		h.Working = append(h.Working, r)
	case BucketWarnings:
		h.Warnings = append(h.Warnings, r)
	case BucketErrors:
		h.Errors = append(h.Errors, r)
	case BucketMissing:
		h.Missing = append(h.Missing, r)
	case BucketCrossSystem:
		h.CrossSystem = append(h.CrossSystem, r)
	}
}
