package domain

import "context"

// System identifies the backend subsystem a check belongs to
type System string

const (
	SystemAuth          System = "auth"
	SystemClients       System = "clients"
	SystemProducts      System = "products"
	SystemInvoices      System = "invoices"
	SystemPayments      System = "payments"
	SystemTemplates     System = "templates"
	SystemNotifications System = "notifications"
	SystemStorage       System = "storage"
	SystemAdmin         System = "admin"

	// SystemShared marks checks that cut across subsystems and match
	// every system filter.
	SystemShared System = "shared"
)

// Component identifies which layer of the stack a check exercises
type Component string

const (
	ComponentUI    Component = "ui"
	ComponentAPI   Component = "api"
	ComponentDB    Component = "db"
	ComponentLogic Component = "logic"
)

// RunOptions carries per-run switches selected on the console
type RunOptions struct {
	// System filters the catalog; empty means the whole catalog
	System System `json:"system,omitempty" yaml:"system,omitempty"`

	// LiveNotifications sends real email/SMS instead of mock mode.
	// Mock mode never consumes credits.
	LiveNotifications bool `json:"live_notifications" yaml:"live_notifications"`

	// KeepData skips post-run cleanup of tracked entities
	KeepData bool `json:"keep_data" yaml:"keep_data"`

	// AdminMode enables checks against admin-scoped routes
	AdminMode bool `json:"admin_mode" yaml:"admin_mode"`
}

// RunContext is the explicit per-run state handed to every definition's
// Run function: the session token, the selected options and the tracker
// that records entities created as side effects.
type RunContext struct {
	Token   string
	Options RunOptions
	Tracker *Tracker
}

// RunFunc executes one check and returns exactly one result. It must never
// panic: any fault is captured and returned as a failed result.
type RunFunc func(ctx context.Context, rc *RunContext) TestResult

// TestDefinition is an immutable catalog entry binding a check to its
// probe function. ID is globally unique within a catalog snapshot.
type TestDefinition struct {
	ID        string
	Name      string
	System    System
	Component Component
	Priority  Priority

	// Service names the backend module that owns the endpoint, used for
	// reporting. It does not by itself route failures to the cross-system
	// bucket; that requires the explicit CrossSystem flag.
	Service string

	// CrossSystem marks integration checks spanning two named subsystems
	// (e.g. invoice -> SMS -> credits). Failures route to the crossSystem
	// bucket instead of errors.
	CrossSystem bool

	Run RunFunc
}
