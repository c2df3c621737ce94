package queries

import (
	"context"
	"errors"
	"fmt"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/pkg/errs"
)

const (
	msgOrderStatus  = "The order status for order id: %s is: %s"
	msgUnknownOrder = "No order found with order id: %s"
)

// OrderStatusReader reads the tracking status of placed orders.
// Unknown orders are reported with an errs.ObjectNotFoundError.
type OrderStatusReader interface {
	Status(ctx context.Context, id kernel.OrderID) (order.Status, error)
}

// TrackOrderQueryHandler answers order tracking questions.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(orderRepo)
//	reply, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
type TrackOrderQueryHandler struct {
	reader OrderStatusReader
}

// NewTrackOrderQueryHandler creates a handler reading statuses from reader.
func NewTrackOrderQueryHandler(reader OrderStatusReader) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{reader: reader}
}

// Handle returns the reply for a tracking question.
// A missing order is a normal answer, and non-positive ids are never looked
// up. Other read failures are returned.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	id := query.OrderID()
	if id.Validate() != nil {
		return fmt.Sprintf(msgUnknownOrder, id), nil
	}

	status, err := h.reader.Status(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Sprintf(msgUnknownOrder, id), nil
	}
	if err != nil {
		return "", fmt.Errorf("read status of order %s: %w", id, err)
	}

	return fmt.Sprintf(msgOrderStatus, id, status), nil
}
