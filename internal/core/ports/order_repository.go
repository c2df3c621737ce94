package ports

import (
	"context"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderRepository is the persistence gateway for placed orders.
// Every method reports failure through its error; callers do not inspect
// the storage engine.
type OrderRepository interface {
	// NextOrderID allocates the identifier for a new order.
	// Identifiers grow monotonically; the first order gets 1.
	NextOrderID(ctx context.Context) (kernel.OrderID, error)

	// AddItem stores one line of an order. Unknown menu items fail with an
	// ObjectNotFound error.
	AddItem(ctx context.Context, id kernel.OrderID, line order.Line) error

	// AddTracking stores the initial tracking status of an order.
	AddTracking(ctx context.Context, id kernel.OrderID, status order.Status) error

	// TotalPrice sums the price of every line of an order. Orders without
	// lines total zero.
	TotalPrice(ctx context.Context, id kernel.OrderID) (decimal.Decimal, error)

	// Status returns the tracking status of an order, or an ObjectNotFound
	// error when the order is unknown.
	Status(ctx context.Context, id kernel.OrderID) (order.Status, error)
}
