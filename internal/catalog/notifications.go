package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

func notificationDefinitions(client *probe.Client, timeout time.Duration) []domain.TestDefinition {
	return []domain.TestDefinition{
		{
			ID:        "email-credits-sufficient",
			Name:      "Email credit balance",
			System:    domain.SystemNotifications,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP0,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/notifications/credits/email", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"email credits endpoint failed",
						"check the credits service")
				}
				sufficient, warn := requireField(o, "sufficient")
				if warn != nil {
					return *warn
				}
				if ok, _ := sufficient.(bool); !ok {
					return failed(
						"email credits are exhausted",
						"tenant has no email credits left",
						"top up email credits or disable invoice email delivery")
				}
				return passed("email credits sufficient")
			},
		},
		{
			ID:        "sms-credits-sufficient",
			Name:      "SMS credit balance",
			System:    domain.SystemNotifications,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				o := client.Get(ctx, "/api/notifications/credits/sms", probe.Options{RequiresAuth: true, Timeout: timeout})
				if !o.Success {
					return infraFailure(o,
						"SMS credits endpoint failed",
						"check the credits service")
				}
				sufficient, warn := requireField(o, "sufficient")
				if warn != nil {
					return *warn
				}
				if ok, _ := sufficient.(bool); !ok {
					return failed(
						"SMS credits are exhausted",
						"tenant has no SMS credits left",
						"top up SMS credits or disable SMS reminders")
				}
				return passed("SMS credits sufficient")
			},
		},
		{
			ID:        "email-send-test",
			Name:      "Test email dispatch",
			System:    domain.SystemNotifications,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP1,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				mode := "mock"
				if rc.Options.LiveNotifications {
					mode = "live"
				}
				o := client.Post(ctx, "/api/notifications/email/test", probe.Options{
					RequiresAuth:   true,
					Body:           map[string]any{"mode": mode},
					ExpectedStatus: http.StatusAccepted,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"test email dispatch failed",
						"check the email provider integration")
				}
				return passed(fmt.Sprintf("test email accepted in %s mode", mode))
			},
		},
		{
			ID:          "sms-invoice-reminder",
			Name:        "Invoice reminder via SMS",
			System:      domain.SystemNotifications,
			Component:   domain.ComponentAPI,
			Priority:    domain.PriorityP1,
			Service:     "credits",
			CrossSystem: true,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				mode := "mock"
				if rc.Options.LiveNotifications {
					mode = "live"
				}
				o := client.Post(ctx, "/api/notifications/sms/test", probe.Options{
					RequiresAuth:   true,
					Body:           map[string]any{"mode": mode, "kind": "invoice_reminder"},
					ExpectedStatus: http.StatusAccepted,
					Timeout:        timeout,
				})
				if !o.Success {
					return infraFailure(o,
						"invoice reminder hand-off through SMS and credits failed",
						"check the notifications -> credits contract")
				}
				return passed(fmt.Sprintf("SMS reminder accepted in %s mode", mode))
			},
		},
		{
			ID:        "notifications-webhooks",
			Name:      "Delivery status webhooks",
			System:    domain.SystemNotifications,
			Component: domain.ComponentAPI,
			Priority:  domain.PriorityP2,
			Run: func(ctx context.Context, rc *domain.RunContext) domain.TestResult {
				return missing("delivery status webhooks are not built yet",
					"accept provider callbacks on POST /api/notifications/webhooks and surface bounce state per invoice")
			},
		},
	}
}
