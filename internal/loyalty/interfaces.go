package loyalty

import (
	"context"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for loyalty accounts and their
// transaction log.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateAccount(ctx context.Context, account *models.LoyaltyAccount) (*models.LoyaltyAccount, error)
	FindAccountByCustomerID(ctx context.Context, customerID uint) (*models.LoyaltyAccount, error)
	AddPoints(ctx context.Context, accountID uint, delta int) error
	CreateTransactions(ctx context.Context, transactions []models.PointTransaction) error
	ListTransactions(ctx context.Context, accountID uint) ([]models.PointTransaction, error)
}
