package points

import (
	"testing"
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func eligibleProduct(price string) *models.Product {
	categoryID := uint(1)
	return &models.Product{
		ID:         10,
		Name:       "Laptop",
		Price:      decimal.RequireFromString(price),
		CategoryID: &categoryID,
	}
}

func TestFindActiveRulePicksFirstMatch(t *testing.T) {
	rules := []models.PointEarningRule{
		{ID: 1, PointsPerDollar: 1, StartDate: date(2023, time.January, 1), EndDate: datePtr(2023, time.December, 31)},
		{ID: 2, PointsPerDollar: 2, StartDate: date(2024, time.January, 1), EndDate: datePtr(2024, time.December, 31)},
		{ID: 3, PointsPerDollar: 3, StartDate: date(2024, time.January, 1), EndDate: nil},
	}

	got := FindActiveRule(rules, date(2024, time.June, 1))
	if got == nil {
		t.Fatal("expected an active rule")
	}
	// Rules 2 and 3 both match; the first in sequence wins.
	if got.ID != 2 {
		t.Fatalf("expected rule 2, got %d", got.ID)
	}
}

func TestFindActiveRuleOpenEnded(t *testing.T) {
	rules := []models.PointEarningRule{
		{ID: 1, PointsPerDollar: 1, StartDate: date(2020, time.January, 1), EndDate: nil},
	}
	if got := FindActiveRule(rules, date(2030, time.June, 1)); got == nil || got.ID != 1 {
		t.Fatalf("open-ended rule should stay active, got %+v", got)
	}
}

func TestFindActiveRuleNoMatch(t *testing.T) {
	rules := []models.PointEarningRule{
		{ID: 1, PointsPerDollar: 2, StartDate: date(2024, time.January, 1), EndDate: datePtr(2024, time.December, 31)},
	}
	if got := FindActiveRule(rules, date(2025, time.January, 15)); got != nil {
		t.Fatalf("expected no active rule after end date, got %+v", got)
	}
	if got := FindActiveRule(nil, date(2024, time.June, 1)); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
}

func TestCalculateFloorsPerUnitThenScales(t *testing.T) {
	rule := &models.PointEarningRule{
		PointsPerDollar: 2,
		StartDate:       date(2024, time.January, 1),
		EndDate:         datePtr(2024, time.December, 31),
	}
	asOf := date(2024, time.June, 1)

	if got := Calculate(eligibleProduct("1200.00"), rule, asOf, 1); got != 2400 {
		t.Fatalf("expected 2400 points, got %d", got)
	}
	if got := Calculate(eligibleProduct("1200.00"), rule, asOf, 2); got != 4800 {
		t.Fatalf("expected 4800 points, got %d", got)
	}

	// 15.99 * 2 = 31.98 floors to 31 per unit, then scales by quantity.
	if got := Calculate(eligibleProduct("15.99"), rule, asOf, 3); got != 93 {
		t.Fatalf("expected 93 points (floor before scaling), got %d", got)
	}
}

func TestCalculateIneligibleProduct(t *testing.T) {
	rule := &models.PointEarningRule{
		PointsPerDollar: 2,
		StartDate:       date(2024, time.January, 1),
	}
	asOf := date(2024, time.June, 1)

	noCategory := &models.Product{ID: 1, Price: decimal.RequireFromString("10.00")}
	if got := Calculate(noCategory, rule, asOf, 1); got != 0 {
		t.Fatalf("product without category should earn 0, got %d", got)
	}

	categoryID := uint(1)
	zeroPrice := &models.Product{ID: 2, Price: decimal.Zero, CategoryID: &categoryID}
	if got := Calculate(zeroPrice, rule, asOf, 1); got != 0 {
		t.Fatalf("zero-price product should earn 0, got %d", got)
	}
}

func TestCalculateInactiveRule(t *testing.T) {
	rule := &models.PointEarningRule{
		PointsPerDollar: 2,
		StartDate:       date(2024, time.January, 1),
		EndDate:         datePtr(2024, time.December, 31),
	}
	if got := Calculate(eligibleProduct("1200.00"), rule, date(2025, time.January, 15), 1); got != 0 {
		t.Fatalf("expired rule should earn 0, got %d", got)
	}
}

func TestCalculateZeroPointsPerDollar(t *testing.T) {
	// A rule with pointsPerDollar=0 legitimately yields zero points; callers
	// cannot distinguish this from a missing rule by the return value alone.
	rule := &models.PointEarningRule{
		PointsPerDollar: 0,
		StartDate:       date(2024, time.January, 1),
	}
	if got := Calculate(eligibleProduct("500.00"), rule, date(2024, time.June, 1), 2); got != 0 {
		t.Fatalf("zero multiplier should earn 0, got %d", got)
	}
}

func TestCalculateGuards(t *testing.T) {
	rule := &models.PointEarningRule{PointsPerDollar: 2, StartDate: date(2024, time.January, 1)}
	asOf := date(2024, time.June, 1)

	if got := Calculate(nil, rule, asOf, 1); got != 0 {
		t.Fatalf("nil product should earn 0, got %d", got)
	}
	if got := Calculate(eligibleProduct("10.00"), nil, asOf, 1); got != 0 {
		t.Fatalf("nil rule should earn 0, got %d", got)
	}
	if got := Calculate(eligibleProduct("10.00"), rule, asOf, 0); got != 0 {
		t.Fatalf("zero quantity should earn 0, got %d", got)
	}
}
