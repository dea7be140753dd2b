package rules

import (
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
)

// RuleDTO is the wire representation of a point-earning rule.
type RuleDTO struct {
	ID              uint       `json:"id"`
	CategoryID      uint       `json:"category_id"`
	PointsPerDollar int        `json:"points_per_dollar"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

// NewRuleDTO maps a rule model onto its DTO.
func NewRuleDTO(rule *models.PointEarningRule) *RuleDTO {
	if rule == nil {
		return nil
	}
	return &RuleDTO{
		ID:              rule.ID,
		CategoryID:      rule.CategoryID,
		PointsPerDollar: rule.PointsPerDollar,
		StartDate:       rule.StartDate,
		EndDate:         rule.EndDate,
	}
}

// NewRuleDTOs maps a slice of rule models.
func NewRuleDTOs(rows []models.PointEarningRule) []RuleDTO {
	out := make([]RuleDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewRuleDTO(&rows[i]))
	}
	return out
}
