package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/facturio/qascan/app"
	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/catalog"
	"github.com/facturio/qascan/internal/config"
	"github.com/facturio/qascan/internal/probe"
	"github.com/facturio/qascan/internal/session"
	"github.com/facturio/qascan/service"
)

var (
	runSystem     string
	runLiveNotify bool
	runKeepData   bool
	runAdminMode  bool
	runFormat     string
	runExportDir  string
	runNoProgress bool
	runConfigPath string
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the QA catalog against the configured backend",
		Long: `Run the declarative QA catalog and report system health.

Exit codes:
  0 - Verdict PASS or PARTIAL
  1 - Verdict FAIL
  2 - Run could not start (config, session, export error)

Examples:
  # Run everything
  qascan run

  # One subsystem only (shared checks always included)
  qascan run --system invoices

  # Live notification mode (sends real email/SMS, consumes credits)
  qascan run --live-notifications

  # Machine-readable output plus a date-named report file
  qascan run --format json --output ./reports

  # Failure digest for pasting into a bug report
  qascan run --format digest`,
		RunE:          runRun,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().StringVarP(&runSystem, "system", "s", "",
		"Restrict the catalog to one subsystem (shared checks always run)")
	cmd.Flags().BoolVar(&runLiveNotify, "live-notifications", false,
		"Send real email/SMS instead of mock mode")
	cmd.Flags().BoolVar(&runKeepData, "keep-data", false,
		"Skip post-run cleanup of entities created by the run")
	cmd.Flags().BoolVar(&runAdminMode, "admin", false,
		"Include admin-scoped checks")
	cmd.Flags().StringVarP(&runFormat, "format", "f", "",
		"Output format: text, json, digest")
	cmd.Flags().StringVarP(&runExportDir, "output", "o", "",
		"Additionally write the date-named JSON report into this directory")
	cmd.Flags().BoolVar(&runNoProgress, "no-progress", false,
		"Disable the progress bar")
	cmd.Flags().StringVarP(&runConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(runConfigPath)
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	// CLI flags win over config file values
	system := cfg.Run.System
	if cmd.Flags().Changed("system") {
		system = runSystem
	}
	live := cfg.Run.LiveNotifications || runLiveNotify
	keep := cfg.Run.KeepData || runKeepData
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = runFormat
	}

	store := session.NewStore(cfg.Session.StorePath)
	token, err := store.Token()
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("failed to read session store: %v", err)}
	}
	if token == "" {
		return &ExitError{Code: 2, Message: "no session token found; sign in first (the console writes ~/.qascan/session.json)"}
	}

	client := probe.NewClient(cfg.API.BaseURL, token)
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	cat := catalog.New(client, timeout)
	if err := cat.Validate(); err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("catalog is invalid: %v", err)}
	}
	if system != "" && !knownSystem(cat, domain.System(system)) {
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown system %q (try 'qascan catalog' for the full list)", system)}
	}

	uc := app.NewRunUseCase(cat, token, service.NewCleaner(client))
	runCfg := app.RunConfig{
		Options: domain.RunOptions{
			System:            domain.System(system),
			LiveNotifications: live,
			KeepData:          keep,
			AdminMode:         runAdminMode,
		},
		OutputFormat: domain.OutputFormat(format),
		OutputWriter: os.Stdout,
		ExportDir:    runExportDir,
		ShowProgress: cfg.Run.ShowProgress && !runNoProgress,
	}

	result, err := uc.Execute(context.Background(), runCfg)
	if err != nil {
		var derr domain.DomainError
		if errors.As(err, &derr) && derr.Code == domain.ErrCodeSession {
			return &ExitError{Code: 2, Message: derr.Message}
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if result.Report.Verdict == domain.VerdictFail {
		return &ExitError{Code: 1, Message: ""}
	}
	return nil
}

func knownSystem(cat *catalog.Catalog, system domain.System) bool {
	for _, sys := range cat.Systems() {
		if sys == system {
			return true
		}
	}
	return false
}
