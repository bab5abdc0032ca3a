package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/manifest"
)

// writeDistFiles creates a fake build output with the given relative paths
func writeDistFiles(t *testing.T, paths ...string) string {
	t.Helper()
	dist := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(dist, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("export {}\n"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dist
}

func requiredDeps(paths ...string) []domain.FileDependency {
	deps := make([]domain.FileDependency, 0, len(paths))
	for _, p := range paths {
		deps = append(deps, domain.FileDependency{Path: p, Type: domain.DependencyComponent, Required: true})
	}
	return deps
}

func TestVerifyPassRateBoundaries(t *testing.T) {
	// 5 required dependencies; vary how many exist in the build output
	tests := []struct {
		name     string
		present  int
		wantRate float64
		want     domain.VerifyStatus
	}{
		{"all five verified", 5, 100, domain.VerifyPassed},
		{"four of five is exactly the threshold", 4, 80, domain.VerifyPartial},
		{"three of five is below the threshold", 3, 60, domain.VerifyFailed},
	}

	allDeps := []string{"chunks/a.js", "chunks/b.js", "chunks/c.js", "chunks/d.js", "chunks/e.js"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := append([]string{"pages/invoices.js"}, allDeps[:tt.present]...)
			dist := writeDistFiles(t, files...)

			m := &manifest.Manifest{
				Routes: []string{"/invoices"},
				Pages: []domain.PageDependency{{
					PageURL:      "/invoices",
					FrontendFile: "pages/invoices.js",
					Dependencies: requiredDeps(allDeps...),
				}},
			}

			report := NewVerifier(dist, "").Verify(context.Background(), m)

			page := report.Pages[0]
			if page.Status != tt.want {
				t.Errorf("Status = %s, want %s", page.Status, tt.want)
			}
			if page.PassRate != tt.wantRate {
				t.Errorf("PassRate = %v, want %v", page.PassRate, tt.wantRate)
			}
			if page.VerifiedCount != tt.present {
				t.Errorf("VerifiedCount = %d, want %d", page.VerifiedCount, tt.present)
			}
			if page.TotalChecks != 5 {
				t.Errorf("TotalChecks = %d, want 5", page.TotalChecks)
			}
		})
	}
}

func TestVerifyZeroDependencyPagePasses(t *testing.T) {
	dist := writeDistFiles(t, "pages/about.js")
	m := &manifest.Manifest{
		Routes: []string{"/about"},
		Pages: []domain.PageDependency{{
			PageURL:      "/about",
			FrontendFile: "pages/about.js",
		}},
	}

	report := NewVerifier(dist, "").Verify(context.Background(), m)

	page := report.Pages[0]
	if page.Status != domain.VerifyPassed {
		t.Errorf("Status = %s, want passed", page.Status)
	}
	if page.PassRate != 100 {
		t.Errorf("PassRate = %v, want 100 for a dependency-free page", page.PassRate)
	}
}

func TestVerifyMissingPageModuleFails(t *testing.T) {
	dist := writeDistFiles(t, "chunks/a.js")
	m := &manifest.Manifest{
		Routes: []string{"*"},
		Pages: []domain.PageDependency{{
			PageURL:      "/payments",
			FrontendFile: "pages/payments.js",
			Dependencies: requiredDeps("chunks/a.js"),
		}},
	}

	report := NewVerifier(dist, "").Verify(context.Background(), m)

	page := report.Pages[0]
	if page.Status != domain.VerifyFailed {
		t.Errorf("Status = %s, want failed when the page module itself is gone", page.Status)
	}
	if len(page.Missing) != 1 || page.Missing[0].Path != "pages/payments.js" {
		t.Errorf("Missing = %v, want the page module", page.Missing)
	}
}

func TestVerifyOptionalMissingDoesNotFail(t *testing.T) {
	dist := writeDistFiles(t, "pages/clients.js", "chunks/list.js")
	m := &manifest.Manifest{
		Routes: []string{"/clients"},
		Pages: []domain.PageDependency{{
			PageURL:      "/clients",
			FrontendFile: "pages/clients.js",
			Dependencies: []domain.FileDependency{
				{Path: "chunks/list.js", Type: domain.DependencyComponent, Required: true},
				{Path: "styles/print.css", Type: domain.DependencyStyle, Required: false},
			},
		}},
	}

	report := NewVerifier(dist, "").Verify(context.Background(), m)

	page := report.Pages[0]
	if page.Status != domain.VerifyPassed {
		t.Errorf("Status = %s, want passed when only optional dependencies are missing", page.Status)
	}
	if len(page.Missing) != 1 {
		t.Errorf("optional miss should still be reported: Missing = %v", page.Missing)
	}
}

func TestVerifyRouteMismatchReported(t *testing.T) {
	dist := writeDistFiles(t, "pages/orphan.js")
	m := &manifest.Manifest{
		Routes: []string{"/invoices", "/clients/*"},
		Pages: []domain.PageDependency{{
			PageURL:      "/orphan",
			FrontendFile: "pages/orphan.js",
		}},
	}

	report := NewVerifier(dist, "").Verify(context.Background(), m)

	if report.Pages[0].RouteMatched {
		t.Error("RouteMatched should be false for an unregistered page URL")
	}
	// Route mismatch is advisory, the page itself still passes
	if report.Pages[0].Status != domain.VerifyPassed {
		t.Errorf("Status = %s, want passed", report.Pages[0].Status)
	}
}

func TestVerifyIgnorePatterns(t *testing.T) {
	dist := writeDistFiles(t, "pages/reports.js")
	ignoreFile := filepath.Join(t.TempDir(), ".qascanignore")
	if err := os.WriteFile(ignoreFile, []byte("*.map\n"), 0644); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}

	m := &manifest.Manifest{
		Routes: []string{"/reports"},
		Pages: []domain.PageDependency{{
			PageURL:      "/reports",
			FrontendFile: "pages/reports.js",
			Dependencies: requiredDeps("chunks/reports.js.map"),
		}},
	}

	report := NewVerifier(dist, ignoreFile).Verify(context.Background(), m)

	page := report.Pages[0]
	if page.Status != domain.VerifyPassed {
		t.Errorf("Status = %s, want passed; ignored artifacts count as resolved", page.Status)
	}
	if page.VerifiedCount != 1 {
		t.Errorf("VerifiedCount = %d, want 1", page.VerifiedCount)
	}
}

func TestVerifyPreservesManifestOrder(t *testing.T) {
	dist := writeDistFiles(t, "pages/a.js", "pages/b.js", "pages/c.js", "pages/d.js")
	m := &manifest.Manifest{Routes: []string{"*"}}
	for _, url := range []string{"/a", "/b", "/c", "/d"} {
		m.Pages = append(m.Pages, domain.PageDependency{
			PageURL:      url,
			FrontendFile: "pages" + url + ".js",
		})
	}

	v := NewVerifier(dist, "")
	v.SetMaxConcurrency(2)
	report := v.Verify(context.Background(), m)

	for i, url := range []string{"/a", "/b", "/c", "/d"} {
		if report.Pages[i].PageURL != url {
			t.Errorf("Pages[%d] = %s, want %s", i, report.Pages[i].PageURL, url)
		}
	}
	if report.Summary.TotalPages != 4 || report.Summary.PassedPages != 4 {
		t.Errorf("Summary = %+v, want 4 total, 4 passed", report.Summary)
	}
}
