package loyalty

import (
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
)

// CheckoutResult is the wire representation of one checkout outcome. The
// three diagnostic lists carry product ids that did not earn points; checkout
// still commits for the remaining valid items.
type CheckoutResult struct {
	TotalPointsEarned        int    `json:"total_points_earned"`
	InvalidProducts          []uint `json:"invalid_products"`
	ProductsMissingCategory  []uint `json:"products_missing_category"`
	PointEarningRulesMissing []uint `json:"point_earning_rules_missing"`
	Success                  bool   `json:"success"`
}

// PointsDTO is the wire representation of a customer's balance.
type PointsDTO struct {
	Points int `json:"points"`
}

// TransactionDTO is the wire representation of one point transaction.
type TransactionDTO struct {
	ID              uint      `json:"id"`
	ProductID       uint      `json:"product_id"`
	PointsEarned    int       `json:"points_earned"`
	TransactionDate time.Time `json:"transaction_date"`
}

// NewTransactionDTOs maps point transaction models onto DTOs.
func NewTransactionDTOs(rows []models.PointTransaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, TransactionDTO{
			ID:              row.ID,
			ProductID:       row.ProductID,
			PointsEarned:    row.PointsEarned,
			TransactionDate: row.TransactionDate,
		})
	}
	return out
}
