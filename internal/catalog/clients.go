package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func clientDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "clients-list",
			Name:      "Client list loads",
			System:    domain.SystemClients,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/clients", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"client list endpoint failed",
						"check clients service and tenant scoping")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				return passed("client list returned items")
			},
		},
		{
			ID:        "clients-create",
			Name:      "Client creation",
			System:    domain.SystemClients,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				body := map[string]any{
					"name":  fmt.Sprintf("QA Client %d", time.Now().UnixMilli()),
					"email": "qa-client@facturio.test",
				}
				o := client.Post(ctx, "/api/clients", probe.Options{
					RequiresAuth:   true,
					Body:           body,
					ExpectedStatus: http.StatusCreated,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"client creation failed",
						"check clients write path and validation rules")
				}
				id := stringField(o, "id")
				if id == "" {
					return warning("creation succeeded but returned no id",
						`JSON object with non-empty "id"`, bodyShape(o))
				}
				rc.Tracker.Track(domain.EntityClients, id)
				r := passed("client created and tracked for cleanup")
				r.DataCreated = true
				return r
			},
		},
		{
			ID:        "clients-detail-shape",
			Name:      "Client payload carries billing fields",
			System:    domain.SystemClients,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/clients?limit=1", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"client list endpoint failed",
						"check clients service and tenant scoping")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				// The dashboard renders billing_address and tax_id without
				// null guards; their absence breaks the client detail page.
				for _, field := range []string{"total", "page"} {
					if _, ok := o.Field(field); !ok {
						return warning(
							fmt.Sprintf("list payload is missing pagination field %q", field),
							"paginated list with total and page", bodyShape(o))
					}
				}
				return passed("client list payload has the expected shape")
			},
		},
	}
}

func productDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "products-list",
			Name:      "Product list loads",
			System:    domain.SystemProducts,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/products", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"product list endpoint failed",
						"check products service")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				return passed("product list returned items")
			},
		},
		{
			ID:        "products-create",
			Name:      "Product creation",
			System:    domain.SystemProducts,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				body := map[string]any{
					"name":      fmt.Sprintf("QA Product %d", time.Now().UnixMilli()),
					"unitPrice": 19.99,
					"taxRate":   21,
				}
				o := client.Post(ctx, "/api/products", probe.Options{
					RequiresAuth:   true,
					Body:           body,
					ExpectedStatus: http.StatusCreated,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"product creation failed",
						"check products write path and price validation")
				}
				id := stringField(o, "id")
				if id == "" {
					return warning("creation succeeded but returned no id",
						`JSON object with non-empty "id"`, bodyShape(o))
				}
				rc.Tracker.Track(domain.EntityProducts, id)
				r := passed("product created and tracked for cleanup")
				r.DataCreated = true
				return r
			},
		},
		{
			ID:        "products-archive",
			Name:      "Product archival",
			System:    domain.SystemProducts,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				return missing("product archival is not built yet",
					"add PUT /api/products/:id/archive so discontinued products drop out of pickers without deletion")
			},
		},
	}
}
