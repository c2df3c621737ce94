// Package ports defines the contracts between the ordering core and its
// adapters: the session cart store, the order persistence gateway and the
// clock. Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"
	"time"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
)

// CartStore holds the in-progress order of every conversation.
// At most one Cart exists per session; absence means no active order.
// Implementations must be safe for concurrent use and must not share Cart
// instances with callers: Get and Merge return copies, Put stores a copy.
type CartStore interface {
	// Get returns the session's cart, or false when the session has none.
	Get(ctx context.Context, sessionID kernel.SessionID) (*order.Cart, bool)

	// Put replaces the session's cart.
	Put(ctx context.Context, sessionID kernel.SessionID, cart *order.Cart)

	// Merge merges cart into the session's cart, creating it when absent,
	// and returns the result.
	Merge(ctx context.Context, sessionID kernel.SessionID, cart *order.Cart) *order.Cart

	// Delete drops the session's cart. Deleting an absent cart is a no-op.
	Delete(ctx context.Context, sessionID kernel.SessionID)

	// EvictIdle drops every cart last written before the given instant and
	// returns how many were dropped.
	EvictIdle(ctx context.Context, before time.Time) int
}

// Clock abstracts the current time for the business hours gate and
// cart expiry.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
