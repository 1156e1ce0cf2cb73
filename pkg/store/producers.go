package store

import (
	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

// Op names the kind of change a mutation made.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpStatus  Op = "status"
	OpDeleted Op = "deleted"
)

// Change describes one committed mutation. For OpDeleted, Producer is the
// removed value.
type Change struct {
	Op       Op
	TenantID string
	Producer model.Producer
	Previous *model.Producer
}

// Check is a precondition evaluated against the stored producer inside the
// write transaction of a mutation. A non-nil error aborts the mutation and is
// returned unchanged by the mutator.
type Check func(model.Producer) error

// ProducerStore abstracts producer storage operations

type ProducerStore interface {
	// Create stores a new producer in the Created state with a fresh id and
	// timestamps. Invalid fields are rejected with model.ErrInvalidProducer.
	Create(tenantID string, fields model.ProducerFields) (model.Producer, error)

	// Get returns a producer of tenantID.
	Get(tenantID, id string) (model.Producer, bool)

	// List returns the tenant's producers in insertion order.
	List(tenantID string) []model.Producer

	// Update merges u into a producer and refreshes its update timestamp.
	// checks run in order against the committed state; the first failure
	// leaves the producer untouched.
	Update(tenantID, id string, u model.ProducerUpdate, checks ...Check) (model.Producer, bool, error)

	// SetStatus moves a producer to status. It is the only way to change the
	// lifecycle status.
	SetStatus(tenantID, id string, status model.Status, checks ...Check) (model.Producer, bool, error)

	// Delete removes a producer and reports whether it existed. A failed
	// check reports true with the check's error.
	Delete(tenantID, id string, checks ...Check) (bool, error)

	// Subscribe registers fn for committed changes and returns a function
	// that removes it. Changes are delivered in commit order; fn must not
	// mutate the store.
	Subscribe(fn func(Change)) func()
}
