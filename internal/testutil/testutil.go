// Package testutil provides helper functions for testing qascan components
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/facturio/qascan/domain"
)

// Result builds a minimal terminal test result for table-driven tests
func Result(id string, status domain.Status) domain.TestResult {
	return domain.TestResult{
		ID:     id,
		Name:   id,
		Status: status,
	}
}

// StubServer starts an httptest server whose routes map paths to canned
// JSON responses. Unknown paths return 404.
func StubServer(t *testing.T, routes map[string]StubResponse) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if resp.Body != "" {
			_, _ = w.Write([]byte(resp.Body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// StubResponse is a canned response served by StubServer
type StubResponse struct {
	Status int
	Body   string
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}
