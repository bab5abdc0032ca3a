package catalog

import (
	"fmt"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

// Result constructors. Definitions only fill outcome fields; the executor
// stamps identity, priority, duration and timestamp from the definition.

func passed(message string) domain.TestResult {
	return domain.TestResult{
		Status:  domain.StatusPassed,
		Message: message,
	}
}

func failed(errMsg, rootCause, fix string) domain.TestResult {
	return domain.TestResult{
		Status:       domain.StatusFailed,
		Severity:     domain.SeverityError,
		Error:        errMsg,
		RootCause:    rootCause,
		SuggestedFix: fix,
	}
}

// warning marks a contract violation: the endpoint is reachable but the
// response is not shaped the way the frontend expects
func warning(message, expected, actual string) domain.TestResult {
	return domain.TestResult{
		Status:   domain.StatusWarning,
		Severity: domain.SeverityWarning,
		Message:  message,
		Expected: expected,
		Actual:   actual,
	}
}

// missing marks a known-unbuilt capability. It never touches the network
// so it is distinguishable from an infrastructure error.
func missing(message, fix string) domain.TestResult {
	return domain.TestResult{
		Status:       domain.StatusMissing,
		Message:      message,
		SuggestedFix: fix,
	}
}

func skipped(message string) domain.TestResult {
	return domain.TestResult{
		Status:  domain.StatusSkipped,
		Message: message,
	}
}

// infraFailure folds a non-successful probe outcome into a failed result,
// preserving the raw error for diagnostics
func infraFailure(o probe.Outcome, rootCause, fix string) domain.TestResult {
	r := failed(o.Err, rootCause, fix)
	if o.StatusCode > 0 {
		r.Actual = fmt.Sprintf("HTTP %d", o.StatusCode)
	}
	return r
}

// requireField extracts a top-level field from the outcome body. When the
// call succeeded but the field is absent, the second return is a warning
// result the caller should return as-is.
func requireField(o probe.Outcome, name string) (any, *domain.TestResult) {
	if v, ok := o.Field(name); ok {
		return v, nil
	}
	w := warning(
		fmt.Sprintf("response is missing the %q field", name),
		fmt.Sprintf("JSON object with %q", name),
		bodyShape(o),
	)
	return nil, &w
}

func bodyShape(o probe.Outcome) string {
	switch {
	case o.Data != nil:
		keys := make([]string, 0, len(o.Data))
		for k := range o.Data {
			keys = append(keys, k)
		}
		return fmt.Sprintf("object with fields %v", keys)
	case o.Raw != "":
		return "non-object body"
	default:
		return "empty body"
	}
}

// stringField returns a string-typed field or "" when absent or mistyped
func stringField(o probe.Outcome, name string) string {
	if v, ok := o.Field(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
