// Package orderrepo persists placed orders. It maps order lines and tracking
// rows onto the food_items, orders and order_tracking tables and implements
// the OrderRepository port on top of GORM.
package orderrepo

import (
	"github.com/shopspring/decimal"
)

// FoodItemDTO is a menu entry. Prices are looked up by item name when an
// order line is stored.
type FoodItemDTO struct {
	ItemID int64           `gorm:"column:item_id;primaryKey;autoIncrement"`
	Name   string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for menu entries.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// OrderItemDTO is one line of a placed order. An order is the set of rows
// sharing an order id; total_price is the line price at the time of ordering.
type OrderItemDTO struct {
	OrderID    int64           `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	ItemID     int64           `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Quantity   int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order lines.
// Overrides GORM's default naming convention to use "orders".
func (OrderItemDTO) TableName() string {
	return "orders"
}

// OrderTrackingDTO holds the delivery status of a placed order.
type OrderTrackingDTO struct {
	OrderID int64  `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	Status  string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for tracking rows.
func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}
