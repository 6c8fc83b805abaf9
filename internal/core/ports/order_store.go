// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderStore is the concurrency-safe keyed storage for order records.
// It holds no business rules: it allocates identifiers and stores, returns and
// removes whole records. Implementations never share an *order.Order with callers;
// Put stores a copy and Get/List return copies.
type OrderStore interface {
	// NextID returns a fresh, strictly increasing identifier. Identifiers are never
	// reused, even after the record is removed.
	NextID() kernel.ID

	// Put inserts or overwrites the record at o.ID(). No validation is performed.
	Put(o *order.Order)

	// Get returns the record stored at id. The boolean is false when there is none;
	// absence is a normal outcome, not an error.
	Get(id kernel.ID) (*order.Order, bool)

	// List returns an independent snapshot of all records in no particular order.
	List() []*order.Order

	// Remove deletes the record at id. Removing an absent id is a no-op.
	Remove(id kernel.ID)

	// Update runs fn on a copy of the record at id while no other writer can touch
	// that record, and stores the copy only when fn succeeds. The boolean is false
	// when there is no record; fn is not called then.
	Update(id kernel.ID, fn func(o *order.Order) error) (*order.Order, bool, error)

	// RemoveIf deletes the record at id when check accepts a copy of it. An absent
	// id is a no-op; a check error leaves the record in place and is returned.
	RemoveIf(id kernel.ID, check func(o *order.Order) error) error

	// Len returns the number of stored records.
	Len() int
}
