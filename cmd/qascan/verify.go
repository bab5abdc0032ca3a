package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facturio/qascan/app"
	"github.com/facturio/qascan/internal/config"
)

var (
	verifyManifest    string
	verifyDist        string
	verifyRoutes      []string
	verifyConcurrency int
	verifyJSON        bool
	verifyConfigPath  string
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify frontend page dependencies against the build manifest",
		Long: `Check every page in the build-time dependency manifest against the
compiled frontend output and the registered route table.

Exit codes:
  0 - No page failed (partial pages allowed)
  1 - At least one page failed verification
  2 - Manifest or configuration error

Examples:
  # Verify with config defaults
  qascan verify

  # Explicit manifest and build output
  qascan verify --manifest qa-manifest.yaml --dist dist/

  # JSON output for CI
  qascan verify --json`,
		RunE:          runVerify,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&verifyManifest, "manifest", "m", "",
		"Path to the page dependency manifest")
	cmd.Flags().StringVarP(&verifyDist, "dist", "d", "",
		"Path to the compiled frontend output")
	cmd.Flags().StringSliceVar(&verifyRoutes, "routes", nil,
		"Extra route patterns on top of the manifest's table")
	cmd.Flags().IntVar(&verifyConcurrency, "concurrency", 0,
		"Maximum concurrently verified pages")
	cmd.Flags().BoolVar(&verifyJSON, "json", false,
		"Output the report as JSON")
	cmd.Flags().StringVarP(&verifyConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(verifyConfigPath)
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	manifestPath := cfg.Verify.ManifestPath
	if cmd.Flags().Changed("manifest") {
		manifestPath = verifyManifest
	}
	distDir := cfg.Verify.DistDir
	if cmd.Flags().Changed("dist") {
		distDir = verifyDist
	}
	concurrency := cfg.Verify.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = verifyConcurrency
	}

	uc := app.NewVerifyUseCase()
	report, err := uc.Execute(context.Background(), app.VerifyConfig{
		ManifestPath: manifestPath,
		DistDir:      distDir,
		IgnoreFile:   cfg.Verify.IgnoreFile,
		Concurrency:  concurrency,
		ExtraRoutes:  verifyRoutes,
		JSONOutput:   verifyJSON,
		OutputWriter: os.Stdout,
		ShowProgress: cfg.Run.ShowProgress,
	})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if report.Summary.FailedPages > 0 {
		return &ExitError{Code: 1, Message: ""}
	}
	return nil
}
