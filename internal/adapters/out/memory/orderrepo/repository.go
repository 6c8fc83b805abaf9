// Package orderrepo provides the in-memory implementation of ports.OrderStore.
package orderrepo

import (
	"sync"
	"sync/atomic"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

var _ ports.OrderStore = (*MemoryOrderStore)(nil)

// MemoryOrderStore keeps orders in a map guarded by a RWMutex. Identifier allocation
// uses its own atomic counter so it never contends with readers.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[kernel.ID]*order.Order

	lastID atomic.Int64
}

// NewMemoryOrderStore creates an empty store whose first identifier is 1.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		orders: make(map[kernel.ID]*order.Order),
	}
}

// NextID allocates the next identifier.
func (s *MemoryOrderStore) NextID() kernel.ID {
	return kernel.ID(s.lastID.Add(1))
}

// Put stores a copy of o, replacing any previous record with the same id.
func (s *MemoryOrderStore) Put(o *order.Order) {
	snapshot := o.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[snapshot.ID()] = snapshot
}

// Get returns a copy of the record at id.
func (s *MemoryOrderStore) Get(id kernel.ID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// List returns copies of all records. Map iteration order applies.
func (s *MemoryOrderStore) List() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, o.Clone())
	}
	return result
}

// Remove deletes the record at id if present.
func (s *MemoryOrderStore) Remove(id kernel.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
}

// Update applies fn to a copy of the record under the write lock, so concurrent
// updates and removals of the same id are serialised.
func (s *MemoryOrderStore) Update(id kernel.ID, fn func(o *order.Order) error) (*order.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return nil, false, nil
	}

	candidate := current.Clone()
	if err := fn(candidate); err != nil {
		return nil, true, err
	}

	s.orders[id] = candidate.Clone()
	return candidate, true, nil
}

// RemoveIf deletes the record at id when check accepts it.
func (s *MemoryOrderStore) RemoveIf(id kernel.ID, check func(o *order.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return nil
	}
	if err := check(current.Clone()); err != nil {
		return err
	}

	delete(s.orders, id)
	return nil
}

// Len returns the number of stored records.
func (s *MemoryOrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
