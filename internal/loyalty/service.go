package loyalty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loyaltyworks/rewards-backend/internal/loyalty/points"
	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	pkgerrors "github.com/loyaltyworks/rewards-backend/pkg/errors"
	"github.com/loyaltyworks/rewards-backend/pkg/metrics"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartReader interface {
	FindByCustomerID(ctx context.Context, customerID uint) (*models.ShoppingCart, error)
}

type productLoader interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
}

type ruleLookup interface {
	ListByCategory(ctx context.Context, categoryID uint) ([]models.PointEarningRule, error)
}

// Service executes the checkout transaction and balance lookups.
type Service interface {
	Checkout(ctx context.Context, customerID uint) (*CheckoutResult, error)
	Points(ctx context.Context, customerID uint) (*PointsDTO, error)
	History(ctx context.Context, customerID uint) ([]TransactionDTO, error)
}

type service struct {
	tx          txRunner
	repo        Repository
	cartRepo    cartReader
	productRepo productLoader
	ruleRepo    ruleLookup
	metrics     *metrics.CheckoutMetrics
	now         func() time.Time
}

// NewService builds the loyalty service. The metrics collector may be nil.
func NewService(
	tx txRunner,
	repo Repository,
	cartRepo cartReader,
	productRepo productLoader,
	ruleRepo ruleLookup,
	checkoutMetrics *metrics.CheckoutMetrics,
) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if repo == nil {
		return nil, fmt.Errorf("loyalty repository required")
	}
	if cartRepo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if ruleRepo == nil {
		return nil, fmt.Errorf("rule lookup required")
	}
	return &service{
		tx:          tx,
		repo:        repo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		ruleRepo:    ruleRepo,
		metrics:     checkoutMetrics,
		now:         time.Now,
	}, nil
}

// Checkout walks the customer's cart inside one transaction. A missing
// account or an empty cart aborts the whole operation; per-item problems are
// collected into the result lists and the valid remainder still commits.
func (s *service) Checkout(ctx context.Context, customerID uint) (*CheckoutResult, error) {
	if customerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	result := &CheckoutResult{
		InvalidProducts:          []uint{},
		ProductsMissingCategory:  []uint{},
		PointEarningRulesMissing: []uint{},
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		account, err := repo.FindAccountByCustomerID(ctx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "loyalty account not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load loyalty account")
		}

		cart, err := s.cartRepo.FindByCustomerID(ctx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
		}
		if len(cart.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		asOf := s.now().UTC()
		pending := make([]models.PointTransaction, 0, len(cart.Items))

		for _, item := range cart.Items {
			product, err := s.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					result.InvalidProducts = append(result.InvalidProducts, item.ProductID)
					s.metrics.IncItemIssue("invalid_product")
					continue
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
			}

			if product.CategoryID == nil {
				result.ProductsMissingCategory = append(result.ProductsMissingCategory, product.ID)
				s.metrics.IncItemIssue("missing_category")
				continue
			}

			rules, err := s.ruleRepo.ListByCategory(ctx, *product.CategoryID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load rules")
			}

			rule := points.FindActiveRule(rules, asOf)
			if rule == nil {
				result.PointEarningRulesMissing = append(result.PointEarningRulesMissing, product.ID)
				s.metrics.IncItemIssue("rule_missing")
				continue
			}

			earned := points.Calculate(product, rule, asOf, item.Quantity)
			if earned == 0 {
				// A zero result with an active rule is reported like a
				// missing rule; callers cannot tell the two cases apart.
				result.PointEarningRulesMissing = append(result.PointEarningRulesMissing, product.ID)
				s.metrics.IncItemIssue("rule_missing")
				continue
			}

			result.TotalPointsEarned += earned
			pending = append(pending, models.PointTransaction{
				LoyaltyAccountID: account.ID,
				ProductID:        product.ID,
				PointsEarned:     earned,
				TransactionDate:  asOf,
			})
		}

		if len(pending) > 0 {
			if err := repo.CreateTransactions(ctx, pending); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert point transactions")
			}
			if err := repo.AddPoints(ctx, account.ID, result.TotalPointsEarned); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: add points")
			}
		}
		return nil
	})
	if err != nil {
		s.metrics.IncCheckout("failed")
		return nil, err
	}

	result.Success = len(result.InvalidProducts) == 0 &&
		len(result.ProductsMissingCategory) == 0 &&
		len(result.PointEarningRulesMissing) == 0

	if result.Success {
		s.metrics.IncCheckout("success")
	} else {
		s.metrics.IncCheckout("partial")
	}
	s.metrics.AddPointsEarned(result.TotalPointsEarned)

	return result, nil
}

// Points returns the current balance for the customer.
func (s *service) Points(ctx context.Context, customerID uint) (*PointsDTO, error) {
	account, err := s.loadAccount(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &PointsDTO{Points: account.Points}, nil
}

// History returns the customer's point transactions in insertion order.
func (s *service) History(ctx context.Context, customerID uint) ([]TransactionDTO, error) {
	account, err := s.loadAccount(ctx, customerID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListTransactions(ctx, account.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list point transactions")
	}
	return NewTransactionDTOs(rows), nil
}

func (s *service) loadAccount(ctx context.Context, customerID uint) (*models.LoyaltyAccount, error) {
	if customerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	account, err := s.repo.FindAccountByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "loyalty account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load loyalty account")
	}
	return account, nil
}
