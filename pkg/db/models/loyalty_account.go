package models

import "time"

// LoyaltyAccount owns the running points balance for one customer.
// The balance is append-only in this system; no redemption path exists.
type LoyaltyAccount struct {
	ID           uint               `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID   uint               `gorm:"column:customer_id;not null;uniqueIndex"`
	Points       int                `gorm:"column:points;not null;default:0"`
	LastUpdated  time.Time          `gorm:"column:last_updated;autoUpdateTime"`
	Transactions []PointTransaction `gorm:"foreignKey:LoyaltyAccountID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
}
