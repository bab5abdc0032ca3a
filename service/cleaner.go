package service

import (
	"context"
	"fmt"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

// deletePaths maps each tracked entity kind to its DELETE route
var deletePaths = map[domain.EntityKind]string{
	domain.EntityClients:   "/api/clients",
	domain.EntityProducts:  "/api/products",
	domain.EntityInvoices:  "/api/invoices",
	domain.EntityPayments:  "/api/payments",
	domain.EntityTemplates: "/api/templates",
}

// CleanerImpl deletes entities created as test side effects. It walks the
// tracker in cleanup order (dependents before their owners, so payments
// go before invoices and invoices before clients).
type CleanerImpl struct {
	client *probe.Client
}

// NewCleaner creates a cleaner issuing deletes through the given client
func NewCleaner(client *probe.Client) *CleanerImpl {
	return &CleanerImpl{client: client}
}

// Cleanup deletes everything the tracker knows about and reports counts.
// The tracker is cleared only when every delete succeeded, so a partial
// failure keeps the remaining identifiers for a retry.
func (c *CleanerImpl) Cleanup(ctx context.Context, tracker *domain.Tracker) domain.CleanupStatus {
	var status domain.CleanupStatus

	for _, kind := range domain.EntityKinds {
		base, ok := deletePaths[kind]
		if !ok {
			continue
		}
		for _, id := range tracker.IDs(kind) {
			status.Attempted++
			o := c.client.Delete(ctx, fmt.Sprintf("%s/%s", base, id), probe.Options{
				RequiresAuth:   true,
				ExpectedStatus: 204,
			})
			if o.Success {
				status.Deleted++
			} else {
				status.Failed++
			}
		}
	}

	if status.Failed == 0 {
		tracker.Clear()
	}
	return status
}
