package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func templateDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "templates-list",
			Name:      "Template list loads",
			System:    domain.SystemTemplates,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/templates", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"template list endpoint failed",
						"check templates service")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				return passed("template list returned items")
			},
		},
		{
			ID:        "templates-default-exists",
			Name:      "Default template resolves",
			System:    domain.SystemTemplates,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				// Every tenant must resolve a default template or invoice
				// creation falls over.
				o := client.Get(ctx, "/api/templates/default", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"no default template resolves for this tenant",
						"seed the tenant with the system default template")
				}
				if id := stringField(o, "id"); id == "" {
					return warning("default template payload has no id",
						`JSON object with non-empty "id"`, bodyShape(o))
				}
				return passed("default template resolves")
			},
		},
		{
			ID:        "templates-create",
			Name:      "Template creation",
			System:    domain.SystemTemplates,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				body := map[string]any{
					"name": fmt.Sprintf("QA Template %d", time.Now().UnixMilli()),
					"base": "default",
				}
				o := client.Post(ctx, "/api/templates", probe.Options{
					RequiresAuth:   true,
					Body:           body,
					ExpectedStatus: http.StatusCreated,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"template creation failed",
						"check templates write path")
				}
				id := stringField(o, "id")
				if id == "" {
					return warning("creation succeeded but returned no id",
						`JSON object with non-empty "id"`, bodyShape(o))
				}
				rc.Tracker.Track(domain.EntityTemplates, id)
				r := passed("template created and tracked for cleanup")
				r.DataCreated = true
				return r
			},
		},
		{
			ID:        "templates-preview",
			Name:      "Template live preview",
			System:    domain.SystemTemplates,
			Component: domain.ComponentUI,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				return missing("template live preview is not built yet",
					"render a sample invoice through GET /api/templates/:id/preview for the editor pane")
			},
		},
	}
}
