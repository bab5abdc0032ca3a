package catalog

import (
	"context"
	"net/http"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func authDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "auth-session-valid",
			Name:      "Session token accepted",
			System:    domain.SystemAuth,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/auth/me", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"current session token is rejected",
						"sign in again to refresh the session")
				}
				if _, warn := requireField(o, "user"); warn != nil {
					return *warn
				}
				return passed("session accepted, user profile returned")
			},
		},
		{
			ID:        "auth-token-refresh",
			Name:      "Token refresh issues a new token",
			System:    domain.SystemAuth,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Post(ctx, "/api/auth/refresh", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"refresh endpoint failed",
						"check token refresh handler and session TTLs")
				}
				if tok := stringField(o, "token"); tok == "" {
					return warning("refresh succeeded but returned no token",
						`JSON object with non-empty "token"`, bodyShape(o))
				}
				return passed("refresh returned a new token")
			},
		},
		{
			ID:        "auth-reject-anonymous",
			Name:      "Protected routes reject anonymous calls",
			System:    domain.SystemAuth,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				// Deliberately unauthenticated; a 401 is the pass condition.
				o := client.Get(ctx, "/api/invoices", probe.Options{
					ExpectedStatus: http.StatusUnauthorized,
					Timeout:        timeout,
				})
				if !o.Success {
					return failed(o.Err,
						"protected route answered an anonymous request",
						"verify the auth middleware covers /api/invoices")
				}
				return passed("anonymous request rejected with 401")
			},
		},
		{
			ID:        "auth-password-policy",
			Name:      "Password policy enforcement",
			System:    domain.SystemAuth,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				return missing("password policy endpoint is not built yet",
					"expose POST /api/auth/validate-password and enforce the tenant policy server-side")
			},
		},
	}
}
