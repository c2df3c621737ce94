package orderrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultMenu is the menu a fresh database starts with.
var DefaultMenu = []FoodItemDTO{
	{ItemID: 1, Name: "Pav Bhaji", Price: decimal.NewFromInt(6)},
	{ItemID: 2, Name: "Chole Bhature", Price: decimal.NewFromInt(7)},
	{ItemID: 3, Name: "Pizza", Price: decimal.NewFromInt(8)},
	{ItemID: 4, Name: "Mango Lassi", Price: decimal.NewFromInt(5)},
	{ItemID: 5, Name: "Masala Dosa", Price: decimal.NewFromInt(6)},
	{ItemID: 6, Name: "Vegetable Biryani", Price: decimal.NewFromInt(9)},
	{ItemID: 7, Name: "Vada Pav", Price: decimal.NewFromInt(4)},
	{ItemID: 8, Name: "Rava Dosa", Price: decimal.NewFromInt(7)},
	{ItemID: 9, Name: "Samosa", Price: decimal.NewFromInt(5)},
}

// Migrate creates or updates the order tables and seeds DefaultMenu when the
// menu is empty. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&FoodItemDTO{}, &OrderItemDTO{}, &OrderTrackingDTO{}); err != nil {
		return fmt.Errorf("migrate order tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&FoodItemDTO{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		menu := make([]FoodItemDTO, len(DefaultMenu))
		copy(menu, DefaultMenu)
		if err := tx.Create(&menu).Error; err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}

		// Explicit ids leave the sequence behind; move it past the seed.
		return tx.Exec(
			"SELECT setval(pg_get_serial_sequence('food_items', 'item_id'), (SELECT MAX(item_id) FROM food_items))",
		).Error
	})
}
