// Package cartstore provides the in-process implementation of
// ports.CartStore. Carts live only as long as the process.
package cartstore

import (
	"context"
	"sync"
	"time"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/core/ports"
)

type entry struct {
	cart      *order.Cart
	touchedAt time.Time
}

// InMemoryCartStore keeps carts in a map guarded by a single mutex.
// Carts are copied on the way in and out so callers never share state
// with the store.
type InMemoryCartStore struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   ports.Clock
}

var _ ports.CartStore = (*InMemoryCartStore)(nil)

// NewInMemoryCartStore creates an empty store. A nil clock means time.Now.
func NewInMemoryCartStore(clock ports.Clock) *InMemoryCartStore {
	if clock == nil {
		clock = ports.ClockFunc(time.Now)
	}
	return &InMemoryCartStore{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get returns a copy of the session's cart.
func (s *InMemoryCartStore) Get(_ context.Context, sessionID kernel.SessionID) (*order.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID.String()]
	if !ok {
		return nil, false
	}
	return e.cart.Clone(), true
}

// Put stores a copy of cart for the session.
func (s *InMemoryCartStore) Put(_ context.Context, sessionID kernel.SessionID, cart *order.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID.String()] = entry{cart: cart.Clone(), touchedAt: s.clock.Now()}
}

// Merge merges cart into the session's cart, creating it when absent.
func (s *InMemoryCartStore) Merge(_ context.Context, sessionID kernel.SessionID, cart *order.Cart) *order.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionID.String()
	e, ok := s.entries[key]
	if !ok {
		e.cart = cart.Clone()
	} else {
		e.cart.Merge(cart)
	}
	e.touchedAt = s.clock.Now()
	s.entries[key] = e

	return e.cart.Clone()
}

// Delete drops the session's cart.
func (s *InMemoryCartStore) Delete(_ context.Context, sessionID kernel.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID.String())
}

// EvictIdle drops carts last written before the given instant.
func (s *InMemoryCartStore) EvictIdle(_ context.Context, before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, e := range s.entries {
		if e.touchedAt.Before(before) {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of sessions with a cart.
func (s *InMemoryCartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
