package models

import "time"

// PointEarningRule defines a time-bounded points multiplier for a category.
// A nil EndDate means the rule is open-ended.
type PointEarningRule struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID      uint       `gorm:"column:category_id;not null;index"`
	PointsPerDollar int        `gorm:"column:points_per_dollar;not null"`
	StartDate       time.Time  `gorm:"column:start_date;not null"`
	EndDate         *time.Time `gorm:"column:end_date"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// IsActive reports whether the rule applies at the given instant:
// startDate <= asOf and (endDate is nil or endDate >= asOf).
func (r *PointEarningRule) IsActive(asOf time.Time) bool {
	if r == nil {
		return false
	}
	if asOf.Before(r.StartDate) {
		return false
	}
	if r.EndDate != nil && r.EndDate.Before(asOf) {
		return false
	}
	return true
}
