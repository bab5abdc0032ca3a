package service

import (
	"context"
	"testing"

	"github.com/facturio/qascan/domain"
)

func staticDef(id string, system domain.System, status domain.Status) domain.TestDefinition {
	return domain.TestDefinition{
		ID:       id,
		Name:     id,
		System:   system,
		Priority: domain.PriorityP1,
		Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
			return domain.TestResult{Status: status}
		},
	}
}

func TestExecutorRunsInOrder(t *testing.T) {
	defs := []domain.TestDefinition{
		staticDef("first", domain.SystemShared, domain.StatusPassed),
		staticDef("second", domain.SystemAuth, domain.StatusFailed),
		staticDef("third", domain.SystemInvoices, domain.StatusPassed),
	}
	rc := &domain.RunContext{Tracker: domain.NewTracker()}

	e := NewExecutor()
	results := e.Execute(context.Background(), defs, rc)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"first", "second", "third"} {
		if results[i].ID != want {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].ID, want)
		}
	}
}

func TestExecutorStampsIdentity(t *testing.T) {
	def := domain.TestDefinition{
		ID:          "invoices-email-delivery",
		Name:        "Invoice email delivery",
		System:      domain.SystemInvoices,
		Component:   domain.ComponentAPI,
		Priority:    domain.PriorityP0,
		Service:     "notifications",
		CrossSystem: true,
		Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
			return domain.TestResult{Status: domain.StatusPassed, Message: "delivered"}
		},
	}
	rc := &domain.RunContext{Tracker: domain.NewTracker()}

	results := NewExecutor().Execute(context.Background(), []domain.TestDefinition{def}, rc)

	r := results[0]
	if r.ID != def.ID || r.Name != def.Name {
		t.Errorf("identity not stamped: %q / %q", r.ID, r.Name)
	}
	if r.System != domain.SystemInvoices || r.Priority != domain.PriorityP0 {
		t.Errorf("routing metadata not stamped: %s / %s", r.System, r.Priority)
	}
	if r.Service != "notifications" || !r.CrossSystem {
		t.Error("cross-system metadata not stamped")
	}
	if r.Category != string(domain.ComponentAPI) {
		t.Errorf("Category = %q, want %q", r.Category, domain.ComponentAPI)
	}
	if r.Message != "delivered" {
		t.Errorf("check outcome overwritten: %q", r.Message)
	}
	if r.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestExecutorRecoversFromPanic(t *testing.T) {
	defs := []domain.TestDefinition{
		staticDef("ok-before", domain.SystemShared, domain.StatusPassed),
		{
			ID:       "broken",
			Name:     "broken",
			System:   domain.SystemShared,
			Priority: domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				panic("nil map write")
			},
		},
		staticDef("ok-after", domain.SystemShared, domain.StatusPassed),
	}
	rc := &domain.RunContext{Tracker: domain.NewTracker()}

	results := NewExecutor().Execute(context.Background(), defs, rc)

	if len(results) != 3 {
		t.Fatalf("panic aborted the run: got %d results, want 3", len(results))
	}
	broken := results[1]
	if broken.Status != domain.StatusFailed {
		t.Errorf("panicked check Status = %s, want failed", broken.Status)
	}
	if broken.ID != "broken" {
		t.Errorf("panicked check not stamped: ID = %q", broken.ID)
	}
	if broken.Error == "" {
		t.Error("panicked check should carry the panic message")
	}
	if results[2].Status != domain.StatusPassed {
		t.Error("check after the panic should still run")
	}
}

func TestExecutorStateAndProgress(t *testing.T) {
	e := NewExecutor()
	if e.State() != ExecutorIdle {
		t.Errorf("initial State() = %s, want idle", e.State())
	}
	if e.Progress() != 0 {
		t.Errorf("initial Progress() = %d, want 0", e.Progress())
	}

	defs := []domain.TestDefinition{
		staticDef("a", domain.SystemShared, domain.StatusPassed),
		staticDef("b", domain.SystemShared, domain.StatusPassed),
	}
	rc := &domain.RunContext{Tracker: domain.NewTracker()}
	e.Execute(context.Background(), defs, rc)

	if e.State() != ExecutorComplete {
		t.Errorf("State() after run = %s, want complete", e.State())
	}
	if e.Progress() != 100 {
		t.Errorf("Progress() after run = %d, want 100", e.Progress())
	}
}

func TestExecutorEmptySelection(t *testing.T) {
	e := NewExecutor()
	rc := &domain.RunContext{Tracker: domain.NewTracker()}

	results := e.Execute(context.Background(), nil, rc)

	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if e.State() != ExecutorComplete {
		t.Errorf("State() = %s, want complete", e.State())
	}
	if e.Progress() != 0 {
		t.Errorf("Progress() = %d, want 0 for empty selection", e.Progress())
	}
}
