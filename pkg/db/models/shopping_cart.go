package models

import "time"

// ShoppingCart holds the pending line items for one customer.
type ShoppingCart struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID uint       `gorm:"column:customer_id;not null;uniqueIndex"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
