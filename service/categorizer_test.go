package service

import (
	"testing"

	"github.com/facturio/qascan/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name   string
		result domain.TestResult
		want   domain.Bucket
	}{
		{
			name:   "passed goes to working",
			result: domain.TestResult{Status: domain.StatusPassed},
			want:   domain.BucketWorking,
		},
		{
			name:   "warning goes to warnings",
			result: domain.TestResult{Status: domain.StatusWarning},
			want:   domain.BucketWarnings,
		},
		{
			name:   "missing goes to missing",
			result: domain.TestResult{Status: domain.StatusMissing},
			want:   domain.BucketMissing,
		},
		{
			name:   "plain failure goes to errors",
			result: domain.TestResult{Status: domain.StatusFailed, System: domain.SystemInvoices},
			want:   domain.BucketErrors,
		},
		{
			name: "cross-system failure goes to cross_system",
			result: domain.TestResult{
				Status:      domain.StatusFailed,
				System:      domain.SystemInvoices,
				Service:     "notifications",
				CrossSystem: true,
			},
			want: domain.BucketCrossSystem,
		},
		{
			name: "cross-system flag without service goes to errors",
			result: domain.TestResult{
				Status:      domain.StatusFailed,
				System:      domain.SystemInvoices,
				CrossSystem: true,
			},
			want: domain.BucketErrors,
		},
		{
			name: "cross-system flag on shared system goes to errors",
			result: domain.TestResult{
				Status:      domain.StatusFailed,
				System:      domain.SystemShared,
				Service:     "credits",
				CrossSystem: true,
			},
			want: domain.BucketErrors,
		},
		{
			name: "cross-system passed still goes to working",
			result: domain.TestResult{
				Status:      domain.StatusPassed,
				System:      domain.SystemInvoices,
				Service:     "notifications",
				CrossSystem: true,
			},
			want: domain.BucketWorking,
		},
		{
			name:   "skipped goes to errors bucket",
			result: domain.TestResult{Status: domain.StatusSkipped},
			want:   domain.BucketErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.result); got != tt.want {
				t.Errorf("Categorize() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildHealthPartition(t *testing.T) {
	results := []domain.TestResult{
		{ID: "a", Status: domain.StatusPassed},
		{ID: "b", Status: domain.StatusFailed, System: domain.SystemAuth},
		{ID: "c", Status: domain.StatusWarning},
		{ID: "d", Status: domain.StatusMissing},
		{ID: "e", Status: domain.StatusFailed, System: domain.SystemInvoices, Service: "notifications", CrossSystem: true},
		{ID: "f", Status: domain.StatusPassed},
	}

	health := BuildHealth(results)

	// Every result lands in exactly one bucket
	if health.Total() != len(results) {
		t.Errorf("Total() = %d, want %d", health.Total(), len(results))
	}

	if len(health.Working) != 2 {
		t.Errorf("Working = %d, want 2", len(health.Working))
	}
	if len(health.Errors) != 1 || health.Errors[0].ID != "b" {
		t.Errorf("Errors = %v, want [b]", health.Errors)
	}
	if len(health.Warnings) != 1 || health.Warnings[0].ID != "c" {
		t.Errorf("Warnings = %v, want [c]", health.Warnings)
	}
	if len(health.Missing) != 1 || health.Missing[0].ID != "d" {
		t.Errorf("Missing = %v, want [d]", health.Missing)
	}
	if len(health.CrossSystem) != 1 || health.CrossSystem[0].ID != "e" {
		t.Errorf("CrossSystem = %v, want [e]", health.CrossSystem)
	}

	// Insertion order within a bucket matches run order
	if health.Working[0].ID != "a" || health.Working[1].ID != "f" {
		t.Errorf("Working order = %v, want [a f]", health.Working)
	}
}

func TestBuildHealthEmpty(t *testing.T) {
	health := BuildHealth(nil)
	if health.Total() != 0 {
		t.Errorf("Total() = %d, want 0", health.Total())
	}
}
