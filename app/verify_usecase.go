package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/manifest"
	"github.com/facturio/qascan/service"
)

// VerifyConfig holds configuration for the verify use case
type VerifyConfig struct {
	ManifestPath string
	DistDir      string
	IgnoreFile   string
	Concurrency  int

	// ExtraRoutes adds route patterns on top of the manifest's table, for
	// routes registered outside the frontend build (e.g. server redirects)
	ExtraRoutes []string

	JSONOutput   bool
	OutputWriter io.Writer
	ShowProgress bool
}

// VerifyUseCase runs the dependency verifier over the page manifest
type VerifyUseCase struct{}

// NewVerifyUseCase creates a verify use case
func NewVerifyUseCase() *VerifyUseCase {
	return &VerifyUseCase{}
}

// Execute loads the manifest, verifies every page concurrently and writes
// the report. The returned report lets callers derive an exit code.
func (uc *VerifyUseCase) Execute(ctx context.Context, cfg VerifyConfig) (*domain.VerifyReport, error) {
	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, domain.NewManifestError("failed to load page dependency manifest", err)
	}
	m.Routes = append(m.Routes, cfg.ExtraRoutes...)

	pm := service.NewProgressManager(cfg.ShowProgress && !cfg.JSONOutput)
	defer pm.Close()

	verifier := service.NewVerifierWithProgress(cfg.DistDir, cfg.IgnoreFile, pm)
	if cfg.Concurrency > 0 {
		verifier.SetMaxConcurrency(cfg.Concurrency)
	}

	report := verifier.Verify(ctx, m)

	if cfg.JSONOutput {
		encoder := json.NewEncoder(cfg.OutputWriter)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return nil, domain.NewExportError("failed to encode verify report", err)
		}
		return report, nil
	}

	uc.writeText(report, cfg.OutputWriter)
	return report, nil
}

func (uc *VerifyUseCase) writeText(report *domain.VerifyReport, w io.Writer) {
	fmt.Fprintf(w, "\n=== Page Dependency Verification ===\n\n")
	fmt.Fprintf(w, "Generated: %s\n", report.GeneratedAt)
	fmt.Fprintf(w, "Duration: %dms\n\n", report.DurationMs)

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Pages: %d (passed %d, partial %d, failed %d)\n\n",
		report.Summary.TotalPages, report.Summary.PassedPages,
		report.Summary.PartialPages, report.Summary.FailedPages)

	for _, page := range report.Pages {
		marker := "PASS"
		switch page.Status {
		case domain.VerifyPartial:
			marker = "PARTIAL"
		case domain.VerifyFailed:
			marker = "FAIL"
		}
		fmt.Fprintf(w, "  [%s] %s (%.0f%%, %d/%d verified)\n",
			marker, page.PageURL, page.PassRate, page.VerifiedCount, page.TotalChecks)
		if !page.RouteMatched {
			fmt.Fprintf(w, "         route: no registered pattern matches\n")
		}
		for _, missing := range page.Missing {
			requiredMark := ""
			if missing.Required {
				requiredMark = " (required)"
			}
			fmt.Fprintf(w, "         missing%s: %s (%s)\n", requiredMark, missing.Path, missing.Reason)
		}
	}
}
