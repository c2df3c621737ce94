package commands

import (
	"context"
	"fmt"
	"log/slog"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/core/ports"
)

// CompleteOrderCommandHandler places the session's in-progress order.
//
// In one transaction it allocates an order id, stores every line and stores
// the "in progress" tracking row, then reads the order total.
//
// The session's cart is deleted whether or not saving succeeds. A failed save
// therefore loses the cart and the user has to order again; the reply says so.
type CompleteOrderCommandHandler struct {
	carts      ports.CartStore
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for placing orders.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(
	carts ports.CartStore,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		carts:      carts,
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_order_handler"),
	}
}

// Handle processes the complete command and returns the reply text.
// Persistence failures are logged and answered with MsgBackendError; they are
// not returned as errors.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	sessionID := cmd.SessionID()
	cart, ok := h.carts.Get(ctx, sessionID)
	if !ok {
		return MsgOrderNotFound, nil
	}
	defer h.carts.Delete(ctx, sessionID)

	uow := h.uowFactory.Create()
	orderID, err := h.save(ctx, uow, cart)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to save order",
			"session_id", sessionID.String(), "items", cart.Len(), "error", err)
		return MsgBackendError, nil
	}

	total, err := uow.OrderRepository().TotalPrice(ctx, orderID)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to compute order total",
			"order_id", orderID.Int64(), "error", err)
		return fmt.Sprintf(msgPlacedNoSum, orderID), nil
	}

	h.logger.InfoContext(ctx, "Order placed",
		"session_id", sessionID.String(), "order_id", orderID.Int64(), "total", total.StringFixed(2))
	return fmt.Sprintf(msgPlaced, orderID, total.StringFixed(2)), nil
}

func (h *CompleteOrderCommandHandler) save(ctx context.Context, uow OrderUoW, cart *order.Cart) (kernel.OrderID, error) {
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	orderID, err := repo.NextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	for _, line := range cart.Lines() {
		if err = repo.AddItem(ctx, orderID, line); err != nil {
			return 0, fmt.Errorf("add item %q: %w", line.Name, err)
		}
	}

	if err = repo.AddTracking(ctx, orderID, order.InProgress); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
