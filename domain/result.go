package domain

import "time"

// Status represents the lifecycle state of a single check
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusWarning Status = "warning"
	StatusMissing Status = "missing"
)

// IsTerminal reports whether the status is final. A result with a terminal
// status must not be mutated afterwards.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusSkipped, StatusWarning, StatusMissing:
		return true
	}
	return false
}

// Priority represents the ordinal importance of a check: P0 > P1 > P2
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
)

// Severity classifies how a failed check should be weighted
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// TestResult is the outcome of one executed check. Executors and probes
// hand results around by value; once Status is terminal the result is
// treated as immutable.
type TestResult struct {
	// Check identification
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Priority Priority `json:"priority" yaml:"priority"`

	// Outcome
	Status     Status   `json:"status" yaml:"status"`
	Severity   Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	DurationMs int64    `json:"duration_ms" yaml:"duration_ms"`
	Message    string   `json:"message,omitempty" yaml:"message,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
	Expected   string   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual     string   `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Remediation hints for humans triaging the report
	RootCause    string `json:"root_cause,omitempty" yaml:"root_cause,omitempty"`
	SuggestedFix string `json:"suggested_fix,omitempty" yaml:"suggested_fix,omitempty"`

	// Routing metadata carried over from the owning definition
	System      System `json:"system,omitempty" yaml:"system,omitempty"`
	Service     string `json:"service,omitempty" yaml:"service,omitempty"`
	CrossSystem bool   `json:"cross_system,omitempty" yaml:"cross_system,omitempty"`

	// Data lifecycle linkage
	DataCreated bool `json:"data_created,omitempty" yaml:"data_created,omitempty"`
	DataDeleted bool `json:"data_deleted,omitempty" yaml:"data_deleted,omitempty"`

	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
