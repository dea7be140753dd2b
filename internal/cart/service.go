package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	pkgerrors "github.com/loyaltyworks/rewards-backend/pkg/errors"
	"gorm.io/gorm"
)

type productLoader interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
}

// Service exposes shopping cart mutation and lookup operations.
type Service interface {
	Get(ctx context.Context, customerID uint) (*CartDTO, error)
	AddItem(ctx context.Context, customerID uint, input AddItemInput) (*CartDTO, error)
	UpdateItem(ctx context.Context, customerID uint, input UpdateItemInput) (*CartDTO, error)
	RemoveItem(ctx context.Context, customerID, productID uint) (*CartDTO, error)
	Clear(ctx context.Context, customerID uint) error
}

// AddItemInput holds the validated payload to add a cart line item.
type AddItemInput struct {
	ProductID uint
	Quantity  int
}

// UpdateItemInput holds the validated payload to change a line item quantity.
type UpdateItemInput struct {
	ProductID uint
	Quantity  int
}

type service struct {
	repo        Repository
	productRepo productLoader
}

// NewService constructs a cart service instance.
func NewService(repo Repository, productRepo productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{repo: repo, productRepo: productRepo}, nil
}

func (s *service) Get(ctx context.Context, customerID uint) (*CartDTO, error) {
	cart, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(cart), nil
}

// AddItem appends a line item, or bumps the quantity when the product is
// already in the cart.
func (s *service) AddItem(ctx context.Context, customerID uint, input AddItemInput) (*CartDTO, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	cart, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindItem(ctx, cart.ID, input.ProductID)
	switch {
	case err == nil:
		existing.Quantity += input.Quantity
		if _, err := s.repo.UpdateItem(ctx, existing); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update cart item")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if _, err := s.repo.AddItem(ctx, item); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert cart item")
		}
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart item")
	}

	return s.Get(ctx, customerID)
}

func (s *service) UpdateItem(ctx context.Context, customerID uint, input UpdateItemInput) (*CartDTO, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	cart, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindItem(ctx, cart.ID, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart item")
	}

	item.Quantity = input.Quantity
	if _, err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update cart item")
	}
	return s.Get(ctx, customerID)
}

func (s *service) RemoveItem(ctx context.Context, customerID, productID uint) (*CartDTO, error) {
	cart, err := s.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: remove cart item")
	}
	return s.Get(ctx, customerID)
}

func (s *service) Clear(ctx context.Context, customerID uint) error {
	cart, err := s.loadCart(ctx, customerID)
	if err != nil {
		return err
	}
	if err := s.repo.Clear(ctx, cart.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: clear cart")
	}
	return nil
}

func (s *service) loadCart(ctx context.Context, customerID uint) (*models.ShoppingCart, error) {
	cart, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}
	return cart, nil
}
