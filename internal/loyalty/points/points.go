// Package points holds the pure rule-resolution and point-calculation logic
// used by the checkout pipeline.
package points

import (
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// FindActiveRule returns the first rule in the given sequence that is active
// at asOf, or nil when none match. Selection order follows the input slice;
// when multiple rules are simultaneously active the first one wins.
func FindActiveRule(rules []models.PointEarningRule, asOf time.Time) *models.PointEarningRule {
	for i := range rules {
		if rules[i].IsActive(asOf) {
			return &rules[i]
		}
	}
	return nil
}

// Calculate computes the points earned for a line item. It returns 0 when the
// product is not eligible or the rule is not active at asOf. Otherwise the
// result is floor(price * pointsPerDollar) per unit, multiplied by quantity.
// Flooring happens on the per-unit price before scaling by quantity.
func Calculate(product *models.Product, rule *models.PointEarningRule, asOf time.Time, quantity int) int {
	if product == nil || rule == nil || quantity <= 0 {
		return 0
	}
	if !product.IsEligibleForPoints() || !rule.IsActive(asOf) {
		return 0
	}

	perUnit := product.Price.Mul(decimal.NewFromInt(int64(rule.PointsPerDollar))).Floor()
	points := perUnit.Mul(decimal.NewFromInt(int64(quantity)))
	if !points.IsInteger() || points.IsNegative() {
		return 0
	}
	return int(points.IntPart())
}
