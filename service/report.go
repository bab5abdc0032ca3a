package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/facturio/qascan/domain"
)

// BuildSuite collects a flat result list into a named, timed suite with
// derived counts
func BuildSuite(name string, results []domain.TestResult, start, end time.Time) domain.TestSuite {
	suite := domain.TestSuite{
		Name:      name,
		Results:   results,
		StartTime: start,
		EndTime:   end,
	}
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			suite.Passed++
		case domain.StatusFailed:
			suite.Failed++
		case domain.StatusSkipped:
			suite.Skipped++
		case domain.StatusWarning:
			suite.Warnings++
		}
	}
	return suite
}

// BuildReport aggregates one or more suites into the top-level report.
// catalogSize is the size of the filtered catalog the run selected from;
// it drives the coverage ratio.
func BuildReport(suites []domain.TestSuite, catalogSize int, filters domain.RunOptions) domain.TestReport {
	report := domain.TestReport{
		ID:          uuid.NewString(),
		Suites:      suites,
		GeneratedAt: time.Now(),
		Filters:     filters,
	}

	var all []domain.TestResult
	for _, suite := range suites {
		report.TotalTests += len(suite.Results)
		report.Passed += suite.Passed
		report.Failed += suite.Failed
		report.Skipped += suite.Skipped
		report.Warnings += suite.Warnings
		all = append(all, suite.Results...)
	}

	report.Health = BuildHealth(all)
	report.SystemStatus = deriveSystemStatus(all)

	if catalogSize > 0 {
		report.Coverage = float64(report.TotalTests) / float64(catalogSize)
	}
	report.Verdict = deriveVerdict(all, report.TotalTests)
	report.Confidence = deriveConfidence(report.Coverage, report.Passed, report.TotalTests)
	return report
}

// deriveVerdict applies the verdict policy: any failed P0 dominates, then
// any warning or missing result makes the run partial, then a non-empty
// all-green run passes. Zero executed tests yield UNKNOWN.
func deriveVerdict(results []domain.TestResult, total int) domain.Verdict {
	if total == 0 {
		return domain.VerdictUnknown
	}
	partial := false
	for _, r := range results {
		if r.Status == domain.StatusFailed && r.Priority == domain.PriorityP0 {
			return domain.VerdictFail
		}
		if r.Status == domain.StatusWarning || r.Status == domain.StatusMissing {
			partial = true
		}
	}
	if partial {
		return domain.VerdictPartial
	}
	return domain.VerdictPass
}

// deriveConfidence combines coverage and pass ratio into 0-100
func deriveConfidence(coverage float64, passed, total int) int {
	divisor := total
	if divisor < 1 {
		divisor = 1
	}
	passRatio := float64(passed) / float64(divisor)
	return int(math.Round(coverage * passRatio * 100))
}

// deriveSystemStatus snapshots per-subsystem reachability from the run's
// failures. A subsystem starts healthy and is marked down by any failed
// result attributed to it.
func deriveSystemStatus(results []domain.TestResult) domain.SystemStatus {
	status := domain.SystemStatus{
		API:      true,
		Database: true,
		Auth:     true,
		Storage:  true,
		Email:    true,
	}
	for _, r := range results {
		if r.Status != domain.StatusFailed {
			continue
		}
		switch {
		case r.ID == "api-health":
			status.API = false
		case r.Category == string(domain.ComponentDB):
			status.Database = false
		case r.System == domain.SystemAuth:
			status.Auth = false
		case r.System == domain.SystemStorage:
			status.Storage = false
		case r.System == domain.SystemNotifications:
			status.Email = false
		}
	}
	return status
}
