package models

import "time"

// Category groups products for point-earning rule assignment.
type Category struct {
	ID        uint               `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string             `gorm:"column:name;not null;uniqueIndex"`
	Rules     []PointEarningRule `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
