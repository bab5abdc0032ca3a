// Package probe issues single normalized HTTP checks against the backend
// API. A probe never returns a Go error: network faults, timeouts, decode
// problems and unexpected statuses are all folded into the Outcome so that
// callers interpret data instead of handling exceptions.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the per-probe timeout when Options.Timeout is zero
const DefaultTimeout = 15 * time.Second

// Options controls a single probe call
type Options struct {
	// RequiresAuth attaches the bearer token when one is present.
	// A missing token is not a probe error.
	RequiresAuth bool

	// Body is JSON-encoded into the request when non-nil
	Body any

	// ExpectedStatus is the status treated as success; 0 means 200
	ExpectedStatus int

	// Timeout overrides DefaultTimeout when positive
	Timeout time.Duration
}

// Outcome is the normalized result of one probe call
type Outcome struct {
	Success    bool
	StatusCode int

	// Data holds the decoded JSON object body when the response carried one
	Data map[string]any

	// Raw holds the undecoded body for non-object responses
	Raw string

	Err      string
	Duration time.Duration
}

// Field returns a top-level field of the decoded body and whether it exists
func (o Outcome) Field(name string) (any, bool) {
	if o.Data == nil {
		return nil, false
	}
	v, ok := o.Data[name]
	return v, ok
}

// Client issues probes against a fixed base URL
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a probe client. The token may be empty; it is only
// attached when a call asks for auth.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{},
	}
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether a session token is available for auth calls
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Do issues one HTTP call and normalizes whatever happens into an Outcome
func (c *Client) Do(ctx context.Context, method, path string, opts Options) Outcome {
	start := time.Now()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return Outcome{
				Err:      fmt.Sprintf("encode request body: %v", err),
				Duration: time.Since(start),
			}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+path, body)
	if err != nil {
		return Outcome{
			Err:      fmt.Sprintf("build request: %v", err),
			Duration: time.Since(start),
		}
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.RequiresAuth && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		msg := err.Error()
		if callCtx.Err() == context.DeadlineExceeded {
			msg = fmt.Sprintf("request timed out after %s", timeout)
		}
		return Outcome{Err: msg, Duration: time.Since(start)}
	}
	defer resp.Body.Close()

	outcome := Outcome{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome.Err = fmt.Sprintf("read response body: %v", err)
		outcome.Duration = time.Since(start)
		return outcome
	}

	if len(raw) > 0 {
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err == nil {
			outcome.Data = data
		} else {
			outcome.Raw = string(raw)
		}
	}

	expected := opts.ExpectedStatus
	if expected == 0 {
		expected = http.StatusOK
	}
	if resp.StatusCode != expected {
		outcome.Err = fmt.Sprintf("expected status %d, got %d", expected, resp.StatusCode)
	} else {
		outcome.Success = true
	}
	outcome.Duration = time.Since(start)
	return outcome
}

// Get issues a GET probe
func (c *Client) Get(ctx context.Context, path string, opts Options) Outcome {
	return c.Do(ctx, http.MethodGet, path, opts)
}

// Post issues a POST probe
func (c *Client) Post(ctx context.Context, path string, opts Options) Outcome {
	return c.Do(ctx, http.MethodPost, path, opts)
}

// Delete issues a DELETE probe
func (c *Client) Delete(ctx context.Context, path string, opts Options) Outcome {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

// Head issues a HEAD probe for reachability-only checks
func (c *Client) Head(ctx context.Context, path string, opts Options) Outcome {
	return c.Do(ctx, http.MethodHead, path, opts)
}
