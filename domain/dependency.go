package domain

// VerifyStatus is the per-page verdict of the dependency verifier
type VerifyStatus string

const (
	VerifyPassed  VerifyStatus = "passed"
	VerifyPartial VerifyStatus = "partial"
	VerifyFailed  VerifyStatus = "failed"
)

// DependencyType classifies a frontend file dependency
type DependencyType string

const (
	DependencyComponent DependencyType = "component"
	DependencyService   DependencyType = "service"
	DependencyStyle     DependencyType = "style"
	DependencyAsset     DependencyType = "asset"
)

// FileDependency is one file a page needs from the built frontend output
type FileDependency struct {
	Path     string         `json:"path" yaml:"path"`
	Type     DependencyType `json:"type" yaml:"type"`
	Required bool           `json:"required" yaml:"required"`
}

// PageDependency describes one frontend page and everything it depends on.
// Backend and database identifiers are reported but never enforced.
type PageDependency struct {
	PageURL      string           `json:"page_url" yaml:"page_url"`
	FrontendFile string           `json:"frontend_file" yaml:"frontend_file"`
	Dependencies []FileDependency `json:"dependencies" yaml:"dependencies"`
	APIEndpoints []string         `json:"api_endpoints,omitempty" yaml:"api_endpoints,omitempty"`
	BackendFile  string           `json:"backend_file,omitempty" yaml:"backend_file,omitempty"`
	DBTables     []string         `json:"db_tables,omitempty" yaml:"db_tables,omitempty"`
}

// MissingDependency records one unresolved dependency of a page
type MissingDependency struct {
	Path     string `json:"path" yaml:"path"`
	Required bool   `json:"required" yaml:"required"`
	Reason   string `json:"reason" yaml:"reason"`
}

// PageVerification is the per-page result of the dependency verifier
type PageVerification struct {
	PageURL       string              `json:"page_url" yaml:"page_url"`
	Status        VerifyStatus        `json:"status" yaml:"status"`
	PassRate      float64             `json:"pass_rate" yaml:"pass_rate"`
	TotalChecks   int                 `json:"total_checks" yaml:"total_checks"`
	VerifiedCount int                 `json:"verified_count" yaml:"verified_count"`
	RouteMatched  bool                `json:"route_matched" yaml:"route_matched"`
	Missing       []MissingDependency `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// VerifySummary aggregates the per-page verifications
type VerifySummary struct {
	TotalPages   int `json:"total_pages" yaml:"total_pages"`
	PassedPages  int `json:"passed_pages" yaml:"passed_pages"`
	PartialPages int `json:"partial_pages" yaml:"partial_pages"`
	FailedPages  int `json:"failed_pages" yaml:"failed_pages"`
}

// VerifyReport is the dependency verifier's top-level output, produced by
// a pass independent of the sequential test run
type VerifyReport struct {
	Pages       []PageVerification `json:"pages" yaml:"pages"`
	Summary     VerifySummary      `json:"summary" yaml:"summary"`
	GeneratedAt string             `json:"generated_at" yaml:"generated_at"`
	DurationMs  int64              `json:"duration_ms" yaml:"duration_ms"`
}
