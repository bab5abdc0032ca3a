package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func testCatalog() *Catalog {
	// Unreachable base URL; definitions that probe will fail, definitions
	// that never touch the network are unaffected
	return New(probe.NewClient("http://127.0.0.1:1", "test-token"), time.Second)
}

func TestCatalogValidates(t *testing.T) {
	if err := testCatalog().Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func TestCatalogCoversEverySystem(t *testing.T) {
	cat := testCatalog()

	want := map[domain.System]bool{
		domain.SystemShared:        false,
		domain.SystemAuth:          false,
		domain.SystemClients:       false,
		domain.SystemProducts:      false,
		domain.SystemInvoices:      false,
		domain.SystemPayments:      false,
		domain.SystemTemplates:     false,
		domain.SystemNotifications: false,
		domain.SystemStorage:       false,
		domain.SystemAdmin:         false,
	}
	for _, sys := range cat.Systems() {
		if _, ok := want[sys]; !ok {
			t.Errorf("unexpected system %q in catalog", sys)
			continue
		}
		want[sys] = true
	}
	for sys, covered := range want {
		if !covered {
			t.Errorf("system %q has no definitions", sys)
		}
	}
}

func TestFilterBySystem(t *testing.T) {
	cat := testCatalog()

	defs := cat.Filter(domain.SystemInvoices)
	if len(defs) == 0 {
		t.Fatal("invoices filter returned nothing")
	}
	for _, def := range defs {
		if def.System != domain.SystemInvoices && def.System != domain.SystemShared {
			t.Errorf("definition %q has system %s, want invoices or shared", def.ID, def.System)
		}
	}

	// Shared checks must ride along with any filter
	sharedSeen := false
	for _, def := range defs {
		if def.System == domain.SystemShared {
			sharedSeen = true
			break
		}
	}
	if !sharedSeen {
		t.Error("filtered selection must include shared definitions")
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	cat := testCatalog()
	if got := len(cat.Filter("")); got != cat.Size() {
		t.Errorf("Filter(\"\") returned %d, want %d", got, cat.Size())
	}
}

func TestFilterUnknownSystemReturnsSharedOnly(t *testing.T) {
	cat := testCatalog()
	for _, def := range cat.Filter("nonexistent") {
		if def.System != domain.SystemShared {
			t.Errorf("unknown system filter returned %q (%s)", def.ID, def.System)
		}
	}
}

// Missing-feature definitions must resolve without network access so they
// are distinguishable from infrastructure errors even when the backend is
// down.
func TestMissingDefinitionsNeverTouchNetwork(t *testing.T) {
	cat := testCatalog()
	rc := &domain.RunContext{
		Token:   "test-token",
		Tracker: domain.NewTracker(),
	}

	missingIDs := []string{
		"auth-password-policy",
		"products-archive",
		"payments-reconciliation",
		"templates-preview",
		"notifications-webhooks",
		"admin-audit-log",
	}

	byID := make(map[string]domain.TestDefinition)
	for _, def := range cat.All() {
		byID[def.ID] = def
	}

	for _, id := range missingIDs {
		def, ok := byID[id]
		if !ok {
			t.Errorf("definition %q not found", id)
			continue
		}
		start := time.Now()
		r := def.Run(context.Background(), rc)
		if r.Status != domain.StatusMissing {
			t.Errorf("%s: Status = %s, want missing (backend is unreachable)", id, r.Status)
		}
		// A network attempt against an unreachable host would block far
		// longer than an in-memory return
		if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
			t.Errorf("%s: took %s, looks like it touched the network", id, elapsed)
		}
	}
}

func TestAdminDefinitionsSkipWithoutAdminMode(t *testing.T) {
	cat := testCatalog()
	rc := &domain.RunContext{
		Token:   "test-token",
		Tracker: domain.NewTracker(),
		Options: domain.RunOptions{AdminMode: false},
	}

	for _, def := range cat.All() {
		if def.System != domain.SystemAdmin || def.ID == "admin-audit-log" {
			continue
		}
		r := def.Run(context.Background(), rc)
		if r.Status != domain.StatusSkipped {
			t.Errorf("%s: Status = %s, want skipped without admin mode", def.ID, r.Status)
		}
	}
}

func TestP0DefinitionsExist(t *testing.T) {
	cat := testCatalog()

	p0 := 0
	for _, def := range cat.All() {
		if def.Priority == domain.PriorityP0 {
			p0++
		}
	}
	if p0 == 0 {
		t.Error("catalog must declare P0 checks")
	}
}

func TestCrossSystemDefinitionsDeclareService(t *testing.T) {
	cat := testCatalog()
	for _, def := range cat.All() {
		if def.CrossSystem && def.Service == "" {
			t.Errorf("%s: cross-system definition must name its service", def.ID)
		}
	}
}
