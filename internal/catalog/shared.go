package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

// sharedDefinitions covers checks that cut across subsystems: API and
// database reachability. Shared definitions match every system filter.
func sharedDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "api-health",
			Name:      "API reachable",
			System:    domain.SystemShared,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/health", probe.Options{Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"API is unreachable or unhealthy",
						"check backend deployment and network path")
				}
				return passed("health endpoint responded")
			},
		},
		{
			ID:        "db-health",
			Name:      "Database connectivity",
			System:    domain.SystemShared,
			Component: domain.ComponentDB,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/health/db", probe.Options{Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"database health endpoint failed",
						"check database availability and connection pool")
				}
				connected, warn := requireField(o, "connected")
				if warn != nil {
					return *warn
				}
				if ok, _ := connected.(bool); !ok {
					return failed(
						fmt.Sprintf("database reports connected=%v", connected),
						"backend cannot reach its database",
						"check database availability and credentials")
				}
				return passed("database connected")
			},
		},
	}
}
