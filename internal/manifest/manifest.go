// Package manifest loads the build-time page dependency table the
// dependency verifier checks against the compiled frontend output. The
// manifest is generated as part of the frontend build; verifying it against
// the build output preserves the "is this page wired up" guarantee without
// a live module loader.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/facturio/qascan/domain"
)

// Manifest is the full page dependency table plus the registered route
// patterns of the frontend router
type Manifest struct {
	// GeneratedAt is the frontend build timestamp
	GeneratedAt string `yaml:"generated_at"`

	// Routes is the static allow-list of registered route patterns.
	// A trailing * matches any suffix; a bare * matches everything.
	Routes []string `yaml:"routes"`

	// Pages lists every page and its declared dependencies
	Pages []domain.PageDependency `yaml:"pages"`
}

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks structural invariants of the manifest
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Pages))
	for i, page := range m.Pages {
		if page.PageURL == "" {
			return fmt.Errorf("page %d has no page_url", i)
		}
		if seen[page.PageURL] {
			return fmt.Errorf("duplicate page_url %q", page.PageURL)
		}
		seen[page.PageURL] = true
		if page.FrontendFile == "" {
			return fmt.Errorf("page %q has no frontend_file", page.PageURL)
		}
	}
	return nil
}

// MatchRoute reports whether a page URL matches any registered route
// pattern. Wildcard patterns always match their prefix; a bare "*"
// matches everything, so catch-all pages never fail the route check.
func (m *Manifest) MatchRoute(pageURL string) bool {
	for _, pattern := range m.Routes {
		if matchPattern(pattern, pageURL) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, pageURL string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(pageURL, strings.TrimSuffix(pattern, "*"))
	}
	if pattern == pageURL {
		return true
	}
	// Segment-wise match with :param placeholders (e.g. /invoices/:id)
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	urlParts := strings.Split(strings.Trim(pageURL, "/"), "/")
	if len(patternParts) != len(urlParts) {
		return false
	}
	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			continue
		}
		if part != urlParts[i] {
			return false
		}
	}
	return true
}
