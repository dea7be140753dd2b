package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a purchasable catalog listing.
type Product struct {
	ID         uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string          `gorm:"column:name;not null"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	ImageURL   *string         `gorm:"column:image_url"`
	CategoryID *uint           `gorm:"column:category_id"`
	Category   *Category       `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// IsEligibleForPoints reports whether the product can earn loyalty points:
// it must carry a positive price and an assigned category.
func (p *Product) IsEligibleForPoints() bool {
	return p != nil && p.Price.IsPositive() && p.CategoryID != nil
}
