// Package catalog declares the fixed table of QA checks available to a
// run. Every definition binds one check to a probe function that performs
// zero or one HTTP calls and interprets the response against
// domain-specific success criteria.
package catalog

import (
	"fmt"
	"time"

	"github.com/facturio/qascan/domain"
	"github.com/facturio/qascan/internal/probe"
)

// Catalog is an order-stable list of test definitions
type Catalog struct {
	defs []domain.TestDefinition
}

// New builds the full catalog against the given probe client. The probe
// timeout applies to every call a definition makes.
func New(client *probe.Client, timeout time.Duration) *Catalog {
	c := &Catalog{}
	c.defs = append(c.defs, sharedDefinitions(client, timeout)...)
	c.defs = append(c.defs, authDefinitions(client, timeout)...)
	c.defs = append(c.defs, clientDefinitions(client, timeout)...)
	c.defs = append(c.defs, productDefinitions(client, timeout)...)
	c.defs = append(c.defs, invoiceDefinitions(client, timeout)...)
	c.defs = append(c.defs, paymentDefinitions(client, timeout)...)
	c.defs = append(c.defs, templateDefinitions(client, timeout)...)
	c.defs = append(c.defs, notificationDefinitions(client, timeout)...)
	c.defs = append(c.defs, storageDefinitions(client, timeout)...)
	c.defs = append(c.defs, adminDefinitions(client, timeout)...)
	return c
}

// All returns every definition in declaration order
func (c *Catalog) All() []domain.TestDefinition {
	out := make([]domain.TestDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Size returns the number of definitions in the catalog
func (c *Catalog) Size() int {
	return len(c.defs)
}

// Filter returns definitions matching the given system, plus every shared
// definition. An empty system returns the whole catalog. Declaration order
// is preserved.
func (c *Catalog) Filter(system domain.System) []domain.TestDefinition {
	if system == "" {
		return c.All()
	}
	var out []domain.TestDefinition
	for _, def := range c.defs {
		if def.System == system || def.System == domain.SystemShared {
			out = append(out, def)
		}
	}
	return out
}

// Validate checks that definition IDs are globally unique within this
// catalog snapshot
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.defs))
	for _, def := range c.defs {
		if def.ID == "" {
			return fmt.Errorf("definition %q has no id", def.Name)
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate definition id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Run == nil {
			return fmt.Errorf("definition %q has no run function", def.ID)
		}
	}
	return nil
}

// Systems returns the distinct systems present in the catalog, in first
// occurrence order
func (c *Catalog) Systems() []domain.System {
	var out []domain.System
	seen := make(map[domain.System]bool)
	for _, def := range c.defs {
		if !seen[def.System] {
			seen[def.System] = true
			out = append(out, def.System)
		}
	}
	return out
}
