package domain

import (
	"context"
	"io"
	"time"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText   OutputFormat = "text"
	OutputFormatJSON   OutputFormat = "json"
	OutputFormatDigest OutputFormat = "digest"
)

// Verdict is the single top-level judgment derived from a report
type Verdict string

const (
	VerdictPass    Verdict = "PASS"
	VerdictFail    Verdict = "FAIL"
	VerdictPartial Verdict = "PARTIAL"

	// VerdictUnknown is produced when zero tests ran
	VerdictUnknown Verdict = "UNKNOWN"
)

// TestSuite is a named, timed collection of results with derived counts
type TestSuite struct {
	Name      string       `json:"name" yaml:"name"`
	Results   []TestResult `json:"results" yaml:"results"`
	Passed    int          `json:"passed" yaml:"passed"`
	Failed    int          `json:"failed" yaml:"failed"`
	Skipped   int          `json:"skipped" yaml:"skipped"`
	Warnings  int          `json:"warnings" yaml:"warnings"`
	StartTime time.Time    `json:"start_time" yaml:"start_time"`
	EndTime   time.Time    `json:"end_time" yaml:"end_time"`
}

// SystemStatus snapshots per-subsystem reachability for the report header
type SystemStatus struct {
	API      bool `json:"api" yaml:"api"`
	Database bool `json:"database" yaml:"database"`
	Auth     bool `json:"auth" yaml:"auth"`
	Storage  bool `json:"storage" yaml:"storage"`
	Email    bool `json:"email" yaml:"email"`
}

// CleanupStatus counts the outcome of post-run data cleanup
type CleanupStatus struct {
	Attempted int `json:"attempted" yaml:"attempted"`
	Deleted   int `json:"deleted" yaml:"deleted"`
	Failed    int `json:"failed" yaml:"failed"`
}

// TestReport is the top-level aggregate of one or more suites
type TestReport struct {
	ID           string         `json:"id" yaml:"id"`
	Suites       []TestSuite    `json:"suites" yaml:"suites"`
	SystemStatus SystemStatus   `json:"system_status" yaml:"system_status"`
	Health       SystemHealth   `json:"health" yaml:"health"`
	TotalTests   int            `json:"total_tests" yaml:"total_tests"`
	Passed       int            `json:"passed" yaml:"passed"`
	Failed       int            `json:"failed" yaml:"failed"`
	Skipped      int            `json:"skipped" yaml:"skipped"`
	Warnings     int            `json:"warnings" yaml:"warnings"`

	// Coverage is the ratio of executed tests to catalog size
	Coverage float64 `json:"coverage" yaml:"coverage"`

	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Confidence combines coverage and pass ratio into 0-100. It is a
	// derived score, not a statistical measure.
	Confidence int `json:"confidence" yaml:"confidence"`

	Cleanup     *CleanupStatus `json:"cleanup,omitempty" yaml:"cleanup,omitempty"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Filters     RunOptions     `json:"filters" yaml:"filters"`
}

// Exporter defines the interface for serializing reports
type Exporter interface {
	// WriteDigest writes the failure-only text digest for bug reports
	WriteDigest(report *TestReport, w io.Writer) error

	// WriteJSON writes the full structured snapshot
	WriteJSON(report *TestReport, w io.Writer) error

	// ExportFile writes the JSON snapshot to a date-named file in dir and
	// returns the path written
	ExportFile(report *TestReport, dir string) (string, error)
}

// Executor runs a selection of catalog definitions and returns raw results
type Executor interface {
	Execute(ctx context.Context, defs []TestDefinition, rc *RunContext) []TestResult
}
