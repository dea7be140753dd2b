package rules

import (
	"context"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for point-earning rules.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, rule *models.PointEarningRule) (*models.PointEarningRule, error)
	FindByID(ctx context.Context, id uint) (*models.PointEarningRule, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.PointEarningRule, error)
	List(ctx context.Context) ([]models.PointEarningRule, error)
	Update(ctx context.Context, rule *models.PointEarningRule) (*models.PointEarningRule, error)
	Delete(ctx context.Context, id uint) error
}
