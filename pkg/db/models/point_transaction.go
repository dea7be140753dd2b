package models

import "time"

// PointTransaction is an immutable audit record of points earned for one
// product at checkout time.
type PointTransaction struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement"`
	LoyaltyAccountID uint      `gorm:"column:loyalty_account_id;not null;index"`
	ProductID        uint      `gorm:"column:product_id;not null"`
	PointsEarned     int       `gorm:"column:points_earned;not null"`
	TransactionDate  time.Time `gorm:"column:transaction_date;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}
