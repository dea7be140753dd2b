package models

import "time"

// Customer represents the canonical identity entity.
type Customer struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string          `gorm:"column:name;not null"`
	Email          string          `gorm:"column:email;type:text;not null;uniqueIndex"`
	LoyaltyAccount *LoyaltyAccount `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
