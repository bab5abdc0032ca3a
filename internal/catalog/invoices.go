package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func invoiceDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "invoices-list",
			Name:      "Invoice list loads",
			System:    domain.SystemInvoices,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/invoices", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"invoice list endpoint failed",
						"check invoices service and tenant scoping")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				return passed("invoice list returned items")
			},
		},
		{
			ID:        "invoices-create-draft",
			Name:      "Draft invoice creation",
			System:    domain.SystemInvoices,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				body := map[string]any{
					"status": "draft",
					"lines": []map[string]any{
						{"description": "QA line item", "quantity": 1, "unitPrice": 100},
					},
				}
				o := client.Post(ctx, "/api/invoices", probe.Options{
					RequiresAuth:   true,
					Body:           body,
					ExpectedStatus: http.StatusCreated,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"draft invoice creation failed",
						"check invoices write path and line item validation")
				}
				id := stringField(o, "id")
				if id == "" {
					return warning("creation succeeded but returned no id",
						`JSON object with non-empty "id"`, bodyShape(o))
				}
				rc.Tracker.Track(domain.EntityInvoices, id)
				r := passed("draft invoice created and tracked for cleanup")
				r.DataCreated = true
				return r
			},
		},
		{
			ID:        "invoices-next-number",
			Name:      "Invoice numbering sequence",
			System:    domain.SystemInvoices,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/invoices/next-number", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"numbering endpoint failed",
						"check the per-tenant sequence generator")
				}
				if next := stringField(o, "next"); next == "" {
					return warning("numbering endpoint returned no sequence value",
						`JSON object with non-empty "next"`, bodyShape(o))
				}
				return passed("numbering sequence is available")
			},
		},
		{
			ID:        "invoices-pdf-render",
			Name:      "Invoice PDF rendering",
			System:    domain.SystemInvoices,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				// Reachability only; rendering the sample is enough to prove
				// the PDF pipeline is wired.
				o := client.Head(ctx, "/api/invoices/sample/pdf", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"PDF rendering pipeline failed",
						"check the renderer service and template assets")
				}
				return passed("PDF pipeline responded")
			},
		},
		{
			ID:          "invoices-email-delivery",
			Name:        "Invoice delivery via email",
			System:      domain.SystemInvoices,
			Component:   domain.ComponentAPI,
			Priority:    domain.PriorityP0,
			Service:     "notifications",
			CrossSystem: true,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				body := map[string]any{"mode": "mock"}
				if rc.Options.LiveNotifications {
					body["mode"] = "live"
				}
				o := client.Post(ctx, "/api/invoices/send-test", probe.Options{
					RequiresAuth:   true,
					Body:           body,
					ExpectedStatus: http.StatusAccepted,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"invoice email hand-off to notifications failed",
						"check the invoices -> notifications contract and email credits")
				}
				return passed(fmt.Sprintf("invoice delivery accepted in %s mode", body["mode"]))
			},
		},
	}
}

func paymentDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "payments-list",
			Name:      "Payment list loads",
			System:    domain.SystemPayments,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/payments", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"payment list endpoint failed",
						"check payments service")
				}
				if _, warn := requireField(o, "items"); warn != nil {
					return *warn
				}
				return passed("payment list returned items")
			},
		},
		{
			ID:        "payments-record",
			Name:      "Manual payment recording",
			System:    domain.SystemPayments,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				body := map[string]any{
					"amount": 50,
					"method": "bank_transfer",
					"note":   "QA probe payment",
				}
				o := client.Post(ctx, "/api/payments", probe.Options{
					RequiresAuth:   true,
					Body:           body,
					ExpectedStatus: http.StatusCreated,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"payment recording failed",
						"check payments write path")
				}
				id := stringField(o, "id")
				if id == "" {
					return warning("recording succeeded but returned no id",
						`JSON object with non-empty "id"`, bodyShape(o))
				}
				rc.Tracker.Track(domain.EntityPayments, id)
				r := passed("payment recorded and tracked for cleanup")
				r.DataCreated = true
				return r
			},
		},
		{
			ID:        "payments-reconciliation",
			Name:      "Bank reconciliation",
			System:    domain.SystemPayments,
			Component: domain.ComponentLogic,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				return missing("bank reconciliation is not built yet",
					"import bank statements via POST /api/payments/reconcile and match against open invoices")
			},
		},
	}
}
