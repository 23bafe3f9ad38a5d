package cart

import (
	"context"
	"sync"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

// MemoryStore is a mutex-serialized in-process store for tests and local
// development without Redis. Serializing every mutation behind one lock gives
// Increment the same no-lost-update guarantee the Redis hash provides.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

// NewMemoryStore initializes an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]domain.Cart)}
}

// Load returns a copy of the principal's cart, empty when absent.
func (s *MemoryStore) Load(_ context.Context, principalID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.carts[principalID]
	if !ok {
		return domain.NewCart(), nil
	}
	return current.Clone(), nil
}

// Increment adds one unit under the store lock.
func (s *MemoryStore) Increment(_ context.Context, principalID, itemID, size string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.carts[principalID]
	if !ok {
		current = domain.NewCart()
		s.carts[principalID] = current
	}
	return current.Increment(itemID, size), nil
}

// SetQuantity overwrites one entry under the store lock.
func (s *MemoryStore) SetQuantity(_ context.Context, principalID, itemID, size string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.carts[principalID]
	if !ok {
		current = domain.NewCart()
		s.carts[principalID] = current
	}
	current.SetQuantity(itemID, size, quantity)
	return nil
}
