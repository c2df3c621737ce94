package orderrepo

import (
	"context"
	"errors"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/core/ports"
	"foodbot/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderIDLockKey serializes order id allocation across transactions.
const orderIDLockKey = 7_340_001

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextOrderID returns one past the highest stored order id, or 1 when no
// order exists. Inside a transaction the allocation holds an advisory lock
// until commit, so concurrent orders never share an id.
func (r *GormOrderRepository) NextOrderID(ctx context.Context) (kernel.OrderID, error) {
	db := r.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(?)", orderIDLockKey).Error; err != nil {
		return 0, err
	}

	var maxID int64
	if err := db.Raw(`
		SELECT COALESCE(MAX(order_id), 0)
		FROM (
			SELECT order_id FROM orders
			UNION ALL
			SELECT order_id FROM order_tracking
		) ids
	`).Row().Scan(&maxID); err != nil {
		return 0, err
	}

	return kernel.NewOrderID(maxID + 1)
}

// AddItem stores one order line priced from the menu.
func (r *GormOrderRepository) AddItem(ctx context.Context, id kernel.OrderID, line order.Line) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if line.Name == "" {
		return errs.NewValueIsRequiredError("foodItem")
	}

	db := r.db.WithContext(ctx)

	var item FoodItemDTO
	if err := db.First(&item, "name = ?", line.Name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("foodItem", line.Name)
		}
		return err
	}

	dto := OrderItemDTO{
		OrderID:    id.Int64(),
		ItemID:     item.ItemID,
		Quantity:   line.Quantity,
		TotalPrice: item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
	}
	if err := db.Create(&dto).Error; err != nil {
		return translate("orderItem", err)
	}

	return nil
}

// AddTracking stores the tracking row of an order.
func (r *GormOrderRepository) AddTracking(ctx context.Context, id kernel.OrderID, status order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}

	dto := OrderTrackingDTO{OrderID: id.Int64(), Status: status.String()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate("orderTracking", err)
	}

	return nil
}

// TotalPrice sums the line prices of an order.
func (r *GormOrderRepository) TotalPrice(ctx context.Context, id kernel.OrderID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE order_id = ?
	`, id.Int64()).Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// Status retrieves the tracking status of an order.
func (r *GormOrderRepository) Status(ctx context.Context, id kernel.OrderID) (order.Status, error) {
	var dto OrderTrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("orderId", id.String())
		}
		return "", err
	}

	return order.NewStatus(dto.Status)
}

// translate maps constraint violations reported by the driver onto domain
// errors. Anything else is returned unchanged.
func translate(param string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return err
}
