package catalog

import (
	"context"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func storageDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "storage-upload-url",
			Name:      "Logo upload URL issuance",
			System:    domain.SystemStorage,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/storage/upload-url?kind=logo", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"upload URL issuance failed",
						"check object storage credentials and bucket policy")
				}
				if url := stringField(o, "url"); url == "" {
					return warning("issuance succeeded but returned no URL",
						`JSON object with non-empty "url"`, bodyShape(o))
				}
				return passed("upload URL issued")
			},
		},
		{
			ID:        "storage-quota",
			Name:      "Tenant storage quota",
			System:    domain.SystemStorage,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/storage/quota", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"quota endpoint failed",
						"check the storage accounting job")
				}
				if _, warn := requireField(o, "used_bytes"); warn != nil {
					return *warn
				}
				return passed("quota reported")
			},
		},
	}
}

func adminDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "admin-tenant-list",
			Name:      "Admin tenant overview",
			System:    domain.SystemAdmin,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				if !rc.Options.AdminMode {
					return skipped("admin mode is off; admin-scoped routes not probed")
				}
				o := client.Get(ctx, "/api/admin/tenants", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"admin tenant overview failed",
						"check admin role on the session and the admin router")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				return passed("tenant overview returned items")
			},
		},
		{
			ID:        "admin-usage-metrics",
			Name:      "Admin usage metrics",
			System:    domain.SystemAdmin,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				if !rc.Options.AdminMode {
					return skipped("admin mode is off; admin-scoped routes not probed")
				}
				o := client.Get(ctx, "/api/admin/usage", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"usage metrics endpoint failed",
						"check the usage aggregation job")
				}
				if _, warn := requireField(o, "tenants"); warn != nil {
					return *warn
				}
				return passed("usage metrics reported")
			},
		},
		{
			ID:        "admin-audit-log",
			Name:      "Admin audit log",
			System:    domain.SystemAdmin,
			Component: domain.ComponentDB,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				return missing("admin audit log is not built yet",
					"record admin actions to an append-only audit table and expose GET /api/admin/audit")
			},
		},
	}
}
