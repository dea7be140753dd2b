package models

import "time"

// CartItem is a single (product, quantity) pair inside a ShoppingCart.
type CartItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	CartID    uint      `gorm:"column:cart_id;not null;index"`
	ProductID uint      `gorm:"column:product_id;not null"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
