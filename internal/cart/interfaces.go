package cart

import (
	"context"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for shopping carts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error)
	FindByCustomerID(ctx context.Context, customerID uint) (*models.ShoppingCart, error)
	FindItem(ctx context.Context, cartID, productID uint) (*models.CartItem, error)
	AddItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	UpdateItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	RemoveItem(ctx context.Context, cartID, productID uint) error
	Clear(ctx context.Context, cartID uint) error
}
