package service

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/manifest"
)

// Default values for the dependency verifier
const (
	DefaultVerifierConcurrency = 4
	DefaultVerifierTimeout     = 2 * time.Minute

	// partialThreshold is the pass rate at or above which a page with
	// missing required dependencies is reported partial instead of failed
	partialThreshold = 80.0
)

// VerifierImpl checks the build-time page dependency manifest against the
// compiled frontend output. All checks are read-only, so pages are
// verified concurrently with bounded parallelism.
type VerifierImpl struct {
	distDir  string
	ignore   *gitignore.GitIgnore
	progress domain.ProgressManager

	mu             sync.RWMutex
	maxConcurrency int
	timeout        time.Duration
}

// NewVerifier creates a dependency verifier for the given build output
// directory. ignoreFile may name a gitignore-style pattern file for build
// artifacts that should not count as missing; a missing ignore file is
// not an error.
func NewVerifier(distDir, ignoreFile string) *VerifierImpl {
	v := &VerifierImpl{
		distDir:        distDir,
		maxConcurrency: DefaultVerifierConcurrency,
		timeout:        DefaultVerifierTimeout,
	}
	if ignoreFile != "" {
		if ign, err := gitignore.CompileIgnoreFile(ignoreFile); err == nil {
			v.ignore = ign
		}
	}
	return v
}

// NewVerifierWithProgress creates a verifier with progress tracking
func NewVerifierWithProgress(distDir, ignoreFile string, pm domain.ProgressManager) *VerifierImpl {
	v := NewVerifier(distDir, ignoreFile)
	v.progress = pm
	return v
}

// SetMaxConcurrency sets the maximum number of concurrently verified pages
func (v *VerifierImpl) SetMaxConcurrency(max int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if max > 0 {
		v.maxConcurrency = max
	}
}

// SetTimeout sets the overall timeout for a verification pass
func (v *VerifierImpl) SetTimeout(timeout time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if timeout > 0 {
		v.timeout = timeout
	}
}

// Verify checks every page in the manifest and returns the aggregate
// report. Page order in the report matches manifest order regardless of
// completion order.
func (v *VerifierImpl) Verify(ctx context.Context, m *manifest.Manifest) *domain.VerifyReport {
	start := time.Now()

	v.mu.RLock()
	maxConcurrency := v.maxConcurrency
	timeout := v.timeout
	v.mu.RUnlock()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if v.progress != nil {
		task = v.progress.StartTask("Verifying pages", len(m.Pages))
	}
	defer task.Complete()

	pages := make([]domain.PageVerification, len(m.Pages))

	g, gCtx := errgroup.WithContext(timeoutCtx)
	g.SetLimit(maxConcurrency)

	for i, page := range m.Pages {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				pages[i] = domain.PageVerification{
					PageURL: page.PageURL,
					Status:  domain.VerifyFailed,
					Missing: []domain.MissingDependency{{
						Path:     page.FrontendFile,
						Required: true,
						Reason:   gCtx.Err().Error(),
					}},
				}
			default:
				pages[i] = v.verifyPage(m, page)
			}
			task.Increment(1)
			return nil
		})
	}
	_ = g.Wait()

	report := &domain.VerifyReport{
		Pages:       pages,
		GeneratedAt: time.Now().Format(time.RFC3339),
		DurationMs:  time.Since(start).Milliseconds(),
	}
	for _, p := range pages {
		report.Summary.TotalPages++
		switch p.Status {
		case domain.VerifyPassed:
			report.Summary.PassedPages++
		case domain.VerifyPartial:
			report.Summary.PartialPages++
		case domain.VerifyFailed:
			report.Summary.FailedPages++
		}
	}
	return report
}

// verifyPage runs the two per-page checks: module existence against the
// build output, and route existence against the registered route
// patterns. Neither check can fail the pass itself; every problem becomes
// data on the page verification.
func (v *VerifierImpl) verifyPage(m *manifest.Manifest, page domain.PageDependency) domain.PageVerification {
	result := domain.PageVerification{
		PageURL:      page.PageURL,
		RouteMatched: m.MatchRoute(page.PageURL),
		TotalChecks:  len(page.Dependencies),
	}

	// A page whose own module is gone is structurally broken no matter
	// how its dependencies fare.
	if !v.resolves(page.FrontendFile) {
		result.Status = domain.VerifyFailed
		result.Missing = append(result.Missing, domain.MissingDependency{
			Path:     page.FrontendFile,
			Required: true,
			Reason:   "page module not present in build output",
		})
		result.PassRate = v.passRate(&result)
		return result
	}

	requiredMissing := false
	for _, dep := range page.Dependencies {
		if v.resolves(dep.Path) {
			result.VerifiedCount++
			continue
		}
		result.Missing = append(result.Missing, domain.MissingDependency{
			Path:     dep.Path,
			Required: dep.Required,
			Reason:   "not present in build output",
		})
		if dep.Required {
			requiredMissing = true
		}
	}

	result.PassRate = v.passRate(&result)
	switch {
	case !requiredMissing:
		result.Status = domain.VerifyPassed
	case result.PassRate >= partialThreshold:
		result.Status = domain.VerifyPartial
	default:
		result.Status = domain.VerifyFailed
	}
	return result
}

// passRate computes verified/total*100, with 100 for dependency-free pages
func (v *VerifierImpl) passRate(p *domain.PageVerification) float64 {
	if p.TotalChecks == 0 {
		return 100
	}
	rate := float64(p.VerifiedCount) / float64(p.TotalChecks) * 100
	return math.Round(rate*100) / 100
}

// resolves reports whether a manifest path exists in the build output.
// Ignored paths count as resolved so known build artifacts (sourcemaps,
// licence stubs) never show up as missing dependencies.
func (v *VerifierImpl) resolves(relPath string) bool {
	if relPath == "" {
		return false
	}
	if v.ignore != nil && v.ignore.MatchesPath(relPath) {
		return true
	}
	_, err := os.Stat(filepath.Join(v.distDir, relPath))
	return err == nil
}
