package domain

// EntityKind names a class of remote entities a check may create
type EntityKind string

const (
	EntityClients   EntityKind = "clients"
	EntityProducts  EntityKind = "products"
	EntityInvoices  EntityKind = "invoices"
	EntityPayments  EntityKind = "payments"
	EntityTemplates EntityKind = "templates"
)

// EntityKinds lists all tracked kinds in cleanup order
var EntityKinds = []EntityKind{
	EntityPayments,
	EntityInvoices,
	EntityTemplates,
	EntityProducts,
	EntityClients,
}

// Tracker records identifiers of entities created as test side effects so
// cleanup can delete them afterwards. It owns only the knowledge of which
// identifiers must be deleted, never the remote entities themselves.
//
// The tracker is an explicit per-run object carried in RunContext. The
// sequential executor is its only writer during a run, so no locking is
// needed.
type Tracker struct {
	created map[EntityKind][]string
}

// NewTracker creates an empty tracker with all kinds initialized
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Clear()
	return t
}

// Track appends an identifier under the given kind, preserving insertion order
func (t *Tracker) Track(kind EntityKind, id string) {
	t.created[kind] = append(t.created[kind], id)
}

// Tracked returns a copy of all tracked identifiers keyed by kind. Kinds
// with no entries are present with an empty slice.
func (t *Tracker) Tracked() map[EntityKind][]string {
	out := make(map[EntityKind][]string, len(EntityKinds))
	for _, kind := range EntityKinds {
		ids := make([]string, len(t.created[kind]))
		copy(ids, t.created[kind])
		out[kind] = ids
	}
	return out
}

// IDs returns the tracked identifiers for one kind in insertion order
func (t *Tracker) IDs(kind EntityKind) []string {
	ids := make([]string, len(t.created[kind]))
	copy(ids, t.created[kind])
	return ids
}

// Count returns the total number of tracked identifiers
func (t *Tracker) Count() int {
	n := 0
	for _, ids := range t.created {
		n += len(ids)
	}
	return n
}

// Clear resets every kind to an empty list. Called at the start of a
// tracked run and again after successful cleanup.
func (t *Tracker) Clear() {
	t.created = make(map[EntityKind][]string, len(EntityKinds))
	for _, kind := range EntityKinds {
		t.created[kind] = []string{}
	}
}
