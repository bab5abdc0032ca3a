package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/version"
)

// ExporterImpl implements the domain.Exporter interface
type ExporterImpl struct{}

// NewExporter creates a new report exporter
func NewExporter() *ExporterImpl {
	return &ExporterImpl{}
}

// ReportSnapshotJSON wraps a TestReport with export metadata
type ReportSnapshotJSON struct {
	Version     string             `json:"version"`
	GeneratedAt string             `json:"generated_at"`
	Report      *domain.TestReport `json:"report"`
}

// WriteJSON writes the full structured snapshot for archival or download
func (e *ExporterImpl) WriteJSON(report *domain.TestReport, w io.Writer) error {
	snapshot := ReportSnapshotJSON{
		Version:     version.Version,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Report:      report,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return domain.NewExportError("failed to encode report snapshot", err)
	}
	return nil
}

// ExportFile writes the JSON snapshot to a date-named file in dir and
// returns the path written
func (e *ExporterImpl) ExportFile(report *domain.TestReport, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("qa-report-%s.json", report.GeneratedAt.Format("2006-01-02"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", domain.NewExportError("failed to create report file", err)
	}
	defer f.Close()

	if err := e.WriteJSON(report, f); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDigest writes the failure-only digest: errors, missing features,
// cross-system breaks and warnings, in a shape meant for pasting into a
// bug report. Working checks are left out on purpose.
func (e *ExporterImpl) WriteDigest(report *domain.TestReport, w io.Writer) error {
	health := &report.Health

	if _, err := fmt.Fprintf(w, "QA digest %s: verdict %s (confidence %d%%)\n",
		report.GeneratedAt.Format("2006-01-02 15:04"), report.Verdict, report.Confidence); err != nil {
		return domain.NewExportError("failed to write digest", err)
	}

	writeSection := func(title string, results []domain.TestResult) error {
		if len(results) == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(w, "\n%s (%d):\n", title, len(results)); err != nil {
			return err
		}
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "  [%s] %s: %s\n", r.Priority, r.Name, digestLine(r)); err != nil {
				return err
			}
			if r.SuggestedFix != "" {
				if _, err := fmt.Fprintf(w, "        fix: %s\n", r.SuggestedFix); err != nil {
					return err
				}
			}
		}
		return nil
	}

	sections := []struct {
		title   string
		results []domain.TestResult
	}{
		{"Errors", health.Errors},
		{"Missing features", health.Missing},
		{"Cross-system breaks", health.CrossSystem},
		{"Warnings", health.Warnings},
	}
	for _, s := range sections {
		if err := writeSection(s.title, s.results); err != nil {
			return domain.NewExportError("failed to write digest", err)
		}
	}

	if health.Total()-len(health.Working) == 0 {
		if _, err := fmt.Fprintln(w, "\nNo failures to report."); err != nil {
			return domain.NewExportError("failed to write digest", err)
		}
	}
	return nil
}

func digestLine(r domain.TestResult) string {
	switch {
	case r.Error != "":
		return r.Error
	case r.Message != "":
		return r.Message
	default:
		return string(r.Status)
	}
}

// WriteText writes the full human-readable report to the writer
func (e *ExporterImpl) WriteText(report *domain.TestReport, w io.Writer) error {
	fmt.Fprintf(w, "\n=== QA Verification Report ===\n\n")
	fmt.Fprintf(w, "Generated: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Version: %s\n\n", version.Version)

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Verdict: %s\n", report.Verdict)
	fmt.Fprintf(w, "  Confidence: %d%%\n", report.Confidence)
	fmt.Fprintf(w, "  Coverage: %.0f%%\n", report.Coverage*100)
	fmt.Fprintf(w, "  Tests: %d (passed %d, failed %d, warnings %d, skipped %d)\n",
		report.TotalTests, report.Passed, report.Failed, report.Warnings, report.Skipped)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "System status:\n")
	fmt.Fprintf(w, "  API: %s\n", upDown(report.SystemStatus.API))
	fmt.Fprintf(w, "  Database: %s\n", upDown(report.SystemStatus.Database))
	fmt.Fprintf(w, "  Auth: %s\n", upDown(report.SystemStatus.Auth))
	fmt.Fprintf(w, "  Storage: %s\n", upDown(report.SystemStatus.Storage))
	fmt.Fprintf(w, "  Email: %s\n", upDown(report.SystemStatus.Email))
	fmt.Fprintf(w, "\n")

	health := &report.Health
	writeBucket(w, "Working", health.Working)
	writeBucket(w, "Warnings", health.Warnings)
	writeBucket(w, "Errors", health.Errors)
	writeBucket(w, "Missing", health.Missing)
	writeBucket(w, "Cross-system", health.CrossSystem)

	if report.Cleanup != nil {
		fmt.Fprintf(w, "Cleanup: %d attempted, %d deleted, %d failed\n",
			report.Cleanup.Attempted, report.Cleanup.Deleted, report.Cleanup.Failed)
	}
	return nil
}

func writeBucket(w io.Writer, title string, results []domain.TestResult) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(results))
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s (%dms)\n", r.Priority, r.Name, r.DurationMs)
		if r.Error != "" {
			fmt.Fprintf(w, "      error: %s\n", r.Error)
		}
		if r.Message != "" && r.Error == "" {
			fmt.Fprintf(w, "      %s\n", r.Message)
		}
		if r.Expected != "" {
			fmt.Fprintf(w, "      expected: %s\n      actual: %s\n", r.Expected, r.Actual)
		}
		if r.RootCause != "" {
			fmt.Fprintf(w, "      root cause: %s\n", r.RootCause)
		}
		if r.SuggestedFix != "" {
			fmt.Fprintf(w, "      fix: %s\n", r.SuggestedFix)
		}
	}
	fmt.Fprintf(w, "\n")
}

func upDown(ok bool) string {
	if ok {
		return "up"
	}
	return "DOWN"
}
