package commands

import (
	"context"
	"fmt"
	"math"

	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/core/ports"
)

// AddToOrderCommandHandler adds items to the session's in-progress order,
// creating the order on the first add.
//
// The checks run in this order:
//  1. Names and quantities of different length, or a fractional quantity:
//     reply MsgClarifyItems and leave the store untouched.
//  2. No order yet: store the new items.
//  3. Order exists: merge the new items into it. Only on this branch, a
//     "yes" confirmation then drops the whole order, new items included,
//     and the reply is MsgOrderCleared.
//
// Otherwise the reply lists the full order.
type AddToOrderCommandHandler struct {
	carts ports.CartStore
}

// NewAddToOrderCommandHandler creates a handler backed by the given cart store.
func NewAddToOrderCommandHandler(carts ports.CartStore) AddToOrderCommandHandler {
	return AddToOrderCommandHandler{carts: carts}
}

// Handle processes the add command and returns the reply text.
func (h *AddToOrderCommandHandler) Handle(ctx context.Context, cmd AddToOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	quantities, ok := wholeQuantities(cmd.Quantities())
	if !ok {
		return MsgClarifyItems, nil
	}

	additions, err := order.NewCart(cmd.Names(), quantities)
	if err != nil {
		return MsgClarifyItems, nil //nolint:nilerr // shape errors are answered, not raised
	}

	sessionID := cmd.SessionID()
	if _, exists := h.carts.Get(ctx, sessionID); !exists {
		h.carts.Put(ctx, sessionID, additions)
		return fmt.Sprintf(msgSoFar, additions), nil
	}

	merged := h.carts.Merge(ctx, sessionID, additions)
	if cmd.Confirmed() {
		h.carts.Delete(ctx, sessionID)
		return MsgOrderCleared, nil
	}

	return fmt.Sprintf(msgSoFar, merged), nil
}

func wholeQuantities(raw []float64) ([]int, bool) {
	out := make([]int, len(raw))
	for i, q := range raw {
		if q != math.Trunc(q) || math.IsInf(q, 0) || math.IsNaN(q) {
			return nil, false
		}
		if q < math.MinInt || q >= -math.MinInt {
			return nil, false
		}
		out[i] = int(q)
	}
	return out, true
}
