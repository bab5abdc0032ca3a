package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/facturio/qascan/domain"
)

const verifyManifest = `routes:
  - /dashboard
  - /invoices
pages:
  - page_url: /dashboard
    frontend_file: pages/dashboard.js
  - page_url: /invoices
    frontend_file: pages/invoices.js
    dependencies:
      - path: chunks/missing.js
        type: component
        required: true
`

func writeVerifyFixture(t *testing.T) (manifestPath, distDir string) {
	t.Helper()
	manifestPath = filepath.Join(t.TempDir(), "qa-manifest.yaml")
	if err := os.WriteFile(manifestPath, []byte(verifyManifest), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	distDir = t.TempDir()
	pagesDir := filepath.Join(distDir, "pages")
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"dashboard.js", "invoices.js"} {
		if err := os.WriteFile(filepath.Join(pagesDir, name), []byte("export {}\n"), 0644); err != nil {
			t.Fatalf("write page: %v", err)
		}
	}
	return manifestPath, distDir
}

func TestVerifyUseCaseTextOutput(t *testing.T) {
	manifestPath, distDir := writeVerifyFixture(t)

	var buf bytes.Buffer
	report, err := NewVerifyUseCase().Execute(context.Background(), VerifyConfig{
		ManifestPath: manifestPath,
		DistDir:      distDir,
		OutputWriter: &buf,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if report.Summary.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", report.Summary.TotalPages)
	}
	if report.Summary.PassedPages != 1 || report.Summary.FailedPages != 1 {
		t.Errorf("Summary = %+v, want 1 passed, 1 failed", report.Summary)
	}

	out := buf.String()
	if !strings.Contains(out, "[PASS] /dashboard") {
		t.Errorf("text output missing pass line:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] /invoices") {
		t.Errorf("text output missing fail line:\n%s", out)
	}
	if !strings.Contains(out, "chunks/missing.js") {
		t.Errorf("text output missing the unresolved dependency:\n%s", out)
	}
}

func TestVerifyUseCaseJSONOutput(t *testing.T) {
	manifestPath, distDir := writeVerifyFixture(t)

	var buf bytes.Buffer
	_, err := NewVerifyUseCase().Execute(context.Background(), VerifyConfig{
		ManifestPath: manifestPath,
		DistDir:      distDir,
		JSONOutput:   true,
		OutputWriter: &buf,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var decoded domain.VerifyReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output not parseable: %v", err)
	}
	if len(decoded.Pages) != 2 {
		t.Errorf("decoded %d pages, want 2", len(decoded.Pages))
	}
}

func TestVerifyUseCaseMissingManifest(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewVerifyUseCase().Execute(context.Background(), VerifyConfig{
		ManifestPath: filepath.Join(t.TempDir(), "absent.yaml"),
		DistDir:      t.TempDir(),
		OutputWriter: &buf,
	})
	if err == nil {
		t.Fatal("expected a manifest error")
	}
	var derr domain.DomainError
	if !errors.As(err, &derr) || derr.Code != domain.ErrCodeManifest {
		t.Errorf("error = %v, want MANIFEST_ERROR", err)
	}
}
