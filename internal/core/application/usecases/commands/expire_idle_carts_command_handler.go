package commands

import (
	"context"

	"foodbot/internal/core/ports"
)

// ExpireIdleCartsCommandHandler drops carts that were not written for longer
// than the command's ttl, measured against the handler's clock.
type ExpireIdleCartsCommandHandler struct {
	carts ports.CartStore
	clock ports.Clock
}

// NewExpireIdleCartsCommandHandler creates a handler for cart expiry.
func NewExpireIdleCartsCommandHandler(carts ports.CartStore, clock ports.Clock) ExpireIdleCartsCommandHandler {
	return ExpireIdleCartsCommandHandler{carts: carts, clock: clock}
}

// Handle evicts idle carts and returns how many were dropped.
func (h *ExpireIdleCartsCommandHandler) Handle(ctx context.Context, cmd ExpireIdleCartsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.carts.EvictIdle(ctx, h.clock.Now().Add(-cmd.TTL())), nil
}
