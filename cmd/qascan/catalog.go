package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/catalog"
	"github.com/facturio/qascan/internal/probe"
)

var (
	catalogSystem string
	catalogJSON   bool
)

// catalogEntry is the serializable view of a test definition. Run funcs
// are not representable, everything else is.
type catalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	System      string `json:"system"`
	Component   string `json:"component"`
	Priority    string `json:"priority"`
	Service     string `json:"service,omitempty"`
	CrossSystem bool   `json:"cross_system,omitempty"`
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the QA check catalog without running it",
		Long: `List every check in the catalog, grouped by subsystem.

Useful for discovering valid --system values and for auditing what a
run would cover.

Examples:
  # Full catalog
  qascan catalog

  # One subsystem (shared checks always included)
  qascan catalog --system invoices

  # Machine-readable listing
  qascan catalog --json`,
		RunE:          runCatalog,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&catalogSystem, "system", "s", "",
		"Restrict the listing to one subsystem")
	cmd.Flags().BoolVar(&catalogJSON, "json", false,
		"Output the catalog as JSON")

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	// Listing never probes the backend, so no base URL or token is needed
	cat := catalog.New(probe.NewClient("", ""), 0)
	if err := cat.Validate(); err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("catalog is invalid: %v", err)}
	}

	if catalogSystem != "" && !knownSystem(cat, domain.System(catalogSystem)) {
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown system %q (try 'qascan catalog' for the full list)", catalogSystem)}
	}
	defs := cat.Filter(domain.System(catalogSystem))

	if catalogJSON {
		entries := make([]catalogEntry, 0, len(defs))
		for _, def := range defs {
			entries = append(entries, catalogEntry{
				ID:          def.ID,
				Name:        def.Name,
				System:      string(def.System),
				Component:   string(def.Component),
				Priority:    string(def.Priority),
				Service:     def.Service,
				CrossSystem: def.CrossSystem,
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	var currentSystem domain.System
	for _, def := range defs {
		if def.System != currentSystem {
			if currentSystem != "" {
				fmt.Println()
			}
			currentSystem = def.System
			fmt.Printf("%s:\n", currentSystem)
		}
		line := fmt.Sprintf("  [%s] %-28s %s", def.Priority, def.ID, def.Name)
		if def.CrossSystem {
			line += fmt.Sprintf(" (cross-system via %s)", def.Service)
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d checks across %d systems\n", len(defs), len(cat.Systems()))

	return nil
}
