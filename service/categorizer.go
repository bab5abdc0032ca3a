package service

import "github.com/facturio/qascan/domain"

// Categorize maps one terminal result into its health bucket. It is a pure
// function of the result's status, severity and routing metadata:
//
//   - passed  -> working
//   - warning -> warnings
//   - missing -> missing
//   - failed (or error severity) on an explicit cross-system check with a
//     declared service and a non-shared system -> crossSystem
//   - any other failed, skipped or unfinished result -> errors
//
// Failures in a named integration between two subsystems indicate a broken
// contract rather than a broken component and are triaged separately.
func Categorize(r domain.TestResult) domain.Bucket {
	switch r.Status {
	case domain.StatusPassed:
		return domain.BucketWorking
	case domain.StatusWarning:
		return domain.BucketWarnings
	case domain.StatusMissing:
		return domain.BucketMissing
	}

	if isCrossSystem(r) {
		return domain.BucketCrossSystem
	}
	return domain.BucketErrors
}

func isCrossSystem(r domain.TestResult) bool {
	if !r.CrossSystem {
		return false
	}
	return r.Service != "" && r.System != domain.SystemShared
}

// BuildHealth distributes a run's results across the five buckets. Every
// result lands in exactly one bucket; within a bucket the run's order is
// preserved.
func BuildHealth(results []domain.TestResult) domain.SystemHealth {
	var health domain.SystemHealth
	for _, r := range results {
		health.Append(Categorize(r), r)
	}
	return health
}
