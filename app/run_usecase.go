package app

import (
	"context"
	"io"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/catalog"
	"github.com/facturio/qascan/service"
)

// RunConfig holds configuration for the run use case
type RunConfig struct {
	Options domain.RunOptions

	// OutputFormat selects text, json or digest
	OutputFormat domain.OutputFormat
	OutputWriter io.Writer

	// ExportDir, when non-empty, additionally writes the date-named JSON
	// snapshot there
	ExportDir string

	ShowProgress bool
}

// DefaultRunConfig returns default configuration
func DefaultRunConfig() RunConfig {
	return RunConfig{
		OutputFormat: domain.OutputFormatText,
		ShowProgress: true,
	}
}

// RunResult holds everything one run produced, including the tracker so
// callers can retry cleanup when it partially failed
type RunResult struct {
	Report  domain.TestReport
	Tracker *domain.Tracker
}

// RunUseCase orchestrates a full verification run: filter the catalog,
// execute sequentially, categorize, aggregate, export, clean up.
type RunUseCase struct {
	catalog  *catalog.Catalog
	token    string
	cleaner  *service.CleanerImpl
	exporter *service.ExporterImpl
}

// NewRunUseCase creates a run use case over the given catalog. The token
// may be empty; Execute refuses to start in that case.
func NewRunUseCase(cat *catalog.Catalog, token string, cleaner *service.CleanerImpl) *RunUseCase {
	return &RunUseCase{
		catalog:  cat,
		token:    token,
		cleaner:  cleaner,
		exporter: service.NewExporter(),
	}
}

// Execute performs the run and writes output per config. It returns the
// report alongside the tracker. A missing session token aborts before any
// test executes; the caller redirects to re-authentication.
func (uc *RunUseCase) Execute(ctx context.Context, cfg RunConfig) (*RunResult, error) {
	if uc.token == "" {
		return nil, domain.NewSessionError("no session token; sign in before running checks", nil)
	}

	defs := uc.catalog.Filter(cfg.Options.System)

	pm := service.NewProgressManager(cfg.ShowProgress && cfg.OutputFormat == domain.OutputFormatText)
	defer pm.Close()

	tracker := domain.NewTracker()
	tracker.Clear()
	rc := &domain.RunContext{
		Token:   uc.token,
		Options: cfg.Options,
		Tracker: tracker,
	}

	executor := service.NewExecutorWithProgress(pm)
	start := time.Now()
	results := executor.Execute(ctx, defs, rc)
	end := time.Now()

	suite := service.BuildSuite(suiteName(cfg.Options.System), results, start, end)
	report := service.BuildReport([]domain.TestSuite{suite}, len(defs), cfg.Options)

	if !cfg.Options.KeepData && tracker.Count() > 0 {
		status := uc.cleaner.Cleanup(ctx, tracker)
		report.Cleanup = &status
	}

	if err := uc.writeOutput(&report, cfg); err != nil {
		return nil, err
	}

	if cfg.ExportDir != "" {
		if _, err := uc.exporter.ExportFile(&report, cfg.ExportDir); err != nil {
			return nil, err
		}
	}

	return &RunResult{Report: report, Tracker: tracker}, nil
}

func (uc *RunUseCase) writeOutput(report *domain.TestReport, cfg RunConfig) error {
	switch cfg.OutputFormat {
	case domain.OutputFormatJSON:
		return uc.exporter.WriteJSON(report, cfg.OutputWriter)
	case domain.OutputFormatDigest:
		return uc.exporter.WriteDigest(report, cfg.OutputWriter)
	default:
		return uc.exporter.WriteText(report, cfg.OutputWriter)
	}
}

func suiteName(system domain.System) string {
	if system == "" {
		return "full catalog"
	}
	return string(system)
}
