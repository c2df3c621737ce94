package commands

import (
	"context"
	"fmt"
	"strings"

	"foodbot/internal/core/ports"
)

// RemoveFromOrderCommandHandler removes items from the session's
// in-progress order. An order emptied this way stays in the store.
//
// The reply concatenates, in this order: the removed items, the requested
// items that were not in the order, and either "Your order is empty!" or the
// remaining items.
//
// Example reply:
//
//	Removed Samosa from your order! Your current order does not have Pizza Here is what is left in your order: Mango Lassi: 1
type RemoveFromOrderCommandHandler struct {
	carts ports.CartStore
}

// NewRemoveFromOrderCommandHandler creates a handler backed by the given cart store.
func NewRemoveFromOrderCommandHandler(carts ports.CartStore) RemoveFromOrderCommandHandler {
	return RemoveFromOrderCommandHandler{carts: carts}
}

// Handle processes the remove command and returns the reply text.
func (h *RemoveFromOrderCommandHandler) Handle(ctx context.Context, cmd RemoveFromOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	cart, ok := h.carts.Get(ctx, cmd.SessionID())
	if !ok {
		return MsgOrderNotFound, nil
	}

	removed, notFound := cart.Remove(cmd.Names())
	if len(removed) > 0 {
		h.carts.Put(ctx, cmd.SessionID(), cart)
	}

	parts := make([]string, 0, 3)
	if len(removed) > 0 {
		parts = append(parts, fmt.Sprintf(msgRemoved, strings.Join(removed, ",")))
	}
	if len(notFound) > 0 {
		parts = append(parts, fmt.Sprintf(msgNotInOrder, strings.Join(notFound, ",")))
	}
	if cart.IsEmpty() {
		parts = append(parts, msgOrderEmpty)
	} else {
		parts = append(parts, fmt.Sprintf(msgLeftInOrder, cart))
	}

	return strings.Join(parts, " "), nil
}
