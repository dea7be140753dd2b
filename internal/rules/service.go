package rules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	pkgerrors "github.com/loyaltyworks/rewards-backend/pkg/errors"
	"gorm.io/gorm"
)

type categoryLoader interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
}

// Service exposes point-earning rule management operations.
type Service interface {
	Create(ctx context.Context, input CreateRuleInput) (*RuleDTO, error)
	Get(ctx context.Context, id uint) (*RuleDTO, error)
	List(ctx context.Context) ([]RuleDTO, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]RuleDTO, error)
	Delete(ctx context.Context, id uint) error
}

// CreateRuleInput holds the validated payload to create a rule.
type CreateRuleInput struct {
	CategoryID      uint
	PointsPerDollar int
	StartDate       time.Time
	EndDate         *time.Time
}

type service struct {
	repo         Repository
	categoryRepo categoryLoader
}

// NewService constructs a rules service instance.
func NewService(repo Repository, categoryRepo categoryLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rules repository required")
	}
	if categoryRepo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo, categoryRepo: categoryRepo}, nil
}

func (s *service) Create(ctx context.Context, input CreateRuleInput) (*RuleDTO, error) {
	if input.PointsPerDollar < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "points_per_dollar cannot be negative")
	}
	if input.StartDate.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start_date required")
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end_date cannot precede start_date")
	}
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load category")
	}

	created, err := s.repo.Create(ctx, &models.PointEarningRule{
		CategoryID:      input.CategoryID,
		PointsPerDollar: input.PointsPerDollar,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert rule")
	}
	return NewRuleDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uint) (*RuleDTO, error) {
	rule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "rule not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load rule")
	}
	return NewRuleDTO(rule), nil
}

func (s *service) List(ctx context.Context) ([]RuleDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list rules")
	}
	return NewRuleDTOs(rows), nil
}

func (s *service) ListByCategory(ctx context.Context, categoryID uint) ([]RuleDTO, error) {
	rows, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list rules")
	}
	return NewRuleDTOs(rows), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "rule not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load rule")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete rule")
	}
	return nil
}
