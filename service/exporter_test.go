package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/facturio/qascan/domain"
)

func sampleReport() *domain.TestReport {
	results := []domain.TestResult{
		{ID: "t1", Name: "Health endpoint", Status: domain.StatusPassed, Priority: domain.PriorityP0},
		{ID: "t2", Name: "Invoice PDF render", Status: domain.StatusFailed, Priority: domain.PriorityP1,
			Error: "expected status 200, got 500", SuggestedFix: "check the PDF worker logs"},
		{ID: "t3", Name: "Template preview", Status: domain.StatusMissing, Priority: domain.PriorityP2,
			Message: "endpoint not implemented"},
		{ID: "t4", Name: "Invoice email delivery", Status: domain.StatusFailed, Priority: domain.PriorityP0,
			System: domain.SystemInvoices, Service: "notifications", CrossSystem: true,
			Error: "timed out after 15s"},
	}
	suite := BuildSuite("full", results, time.Now(), time.Now())
	report := BuildReport([]domain.TestSuite{suite}, len(results), domain.RunOptions{})
	return &report
}

func TestWriteDigestGroupsFailureClasses(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter().WriteDigest(sampleReport(), &buf); err != nil {
		t.Fatalf("WriteDigest: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "verdict FAIL") {
		t.Errorf("digest should name the verdict:\n%s", out)
	}
	for _, section := range []string{"Errors (1):", "Missing features (1):", "Cross-system breaks (1):"} {
		if !strings.Contains(out, section) {
			t.Errorf("digest missing section %q:\n%s", section, out)
		}
	}
	if !strings.Contains(out, "[P1] Invoice PDF render: expected status 200, got 500") {
		t.Errorf("digest missing failure line:\n%s", out)
	}
	if !strings.Contains(out, "fix: check the PDF worker logs") {
		t.Errorf("digest missing suggested fix:\n%s", out)
	}
	// Working checks are excluded on purpose
	if strings.Contains(out, "Health endpoint") {
		t.Errorf("digest must not list passing checks:\n%s", out)
	}
}

func TestWriteDigestAllGreen(t *testing.T) {
	results := []domain.TestResult{
		{ID: "t1", Name: "a", Status: domain.StatusPassed, Priority: domain.PriorityP0},
	}
	suite := BuildSuite("full", results, time.Now(), time.Now())
	report := BuildReport([]domain.TestSuite{suite}, 1, domain.RunOptions{})

	var buf bytes.Buffer
	if err := NewExporter().WriteDigest(&report, &buf); err != nil {
		t.Fatalf("WriteDigest: %v", err)
	}
	if !strings.Contains(buf.String(), "No failures to report.") {
		t.Errorf("all-green digest should say so:\n%s", buf.String())
	}
}

func TestWriteJSONSnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter().WriteJSON(sampleReport(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var snapshot ReportSnapshotJSON
	if err := json.Unmarshal(buf.Bytes(), &snapshot); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if snapshot.Report == nil {
		t.Fatal("snapshot has no report")
	}
	if snapshot.Report.Verdict != domain.VerdictFail {
		t.Errorf("Verdict = %s, want FAIL", snapshot.Report.Verdict)
	}
	if snapshot.Report.Health.Total() != 4 {
		t.Errorf("health total = %d, want 4", snapshot.Report.Health.Total())
	}
	if snapshot.GeneratedAt == "" {
		t.Error("snapshot should carry a generation timestamp")
	}
}

func TestExportFileNaming(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	path, err := NewExporter().ExportFile(report, dir)
	if err != nil {
		t.Fatalf("ExportFile: %v", err)
	}

	wantName := "qa-report-" + report.GeneratedAt.Format("2006-01-02") + ".json"
	if filepath.Base(path) != wantName {
		t.Errorf("file name = %q, want %q", filepath.Base(path), wantName)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file not written: %v", err)
	}
}

func TestExportFileBadDirectory(t *testing.T) {
	_, err := NewExporter().ExportFile(sampleReport(), "/nonexistent/deeply/nested")
	if err == nil {
		t.Fatal("expected an error for an unwritable directory")
	}
	var derr domain.DomainError
	if !errors.As(err, &derr) || derr.Code != domain.ErrCodeExport {
		t.Errorf("error should be an EXPORT_ERROR DomainError, got %v", err)
	}
}
