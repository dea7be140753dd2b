// Package seed loads a small demo dataset: a few categories and products,
// two customers with loyalty accounts, and the point-earning rules that make
// checkout produce points.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"github.com/loyaltyworks/rewards-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder populates the database with the demo dataset.
type Seeder struct {
	db   *gorm.DB
	logg *logger.Logger
}

// New builds a seeder bound to the provided DB.
func New(db *gorm.DB, logg *logger.Logger) (*Seeder, error) {
	if db == nil {
		return nil, fmt.Errorf("db required")
	}
	return &Seeder{db: db, logg: logg}, nil
}

// Run seeds all entities in dependency order inside one transaction.
func (s *Seeder) Run(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories, err := s.seedCategories(ctx, tx)
		if err != nil {
			return err
		}
		if err := s.seedProducts(ctx, tx, categories); err != nil {
			return err
		}
		customers, err := s.seedCustomers(ctx, tx)
		if err != nil {
			return err
		}
		if err := s.seedRules(ctx, tx, categories); err != nil {
			return err
		}
		return s.seedCarts(ctx, tx, customers)
	})
}

func (s *Seeder) seedCategories(ctx context.Context, tx *gorm.DB) (map[string]*models.Category, error) {
	names := []string{"Electronics", "Books", "Default"}
	out := make(map[string]*models.Category, len(names))
	for _, name := range names {
		category := &models.Category{Name: name}
		if err := tx.Create(category).Error; err != nil {
			return nil, fmt.Errorf("seed category %q: %w", name, err)
		}
		out[name] = category
	}
	s.info(ctx, "categories seeded")
	return out, nil
}

func (s *Seeder) seedProducts(ctx context.Context, tx *gorm.DB, categories map[string]*models.Category) error {
	laptopImage := "https://upload.wikimedia.org/wikipedia/commons/e/e9/Apple-desk-laptop-macbook-pro_%2823699397893%29.jpg"
	bookImage := "https://upload.wikimedia.org/wikipedia/commons/thumb/e/eb/Eric_Frank_Russell_-_Die_Gro%C3%9Fe_Explosion_-_Cover.jpg/770px-Eric_Frank_Russell_-_Die_Gro%C3%9Fe_Explosion_-_Cover.jpg"

	products := []models.Product{
		{
			Name:       "Laptop",
			Price:      decimal.RequireFromString("1200.00"),
			CategoryID: &categories["Electronics"].ID,
			ImageURL:   &laptopImage,
		},
		{
			Name:       "Science Fiction Book",
			Price:      decimal.RequireFromString("15.99"),
			CategoryID: &categories["Books"].ID,
			ImageURL:   &bookImage,
		},
	}
	for i := range products {
		if err := tx.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", products[i].Name, err)
		}
	}
	s.info(ctx, "products seeded")
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context, tx *gorm.DB) ([]models.Customer, error) {
	customers := []models.Customer{
		{Name: "John Doe", Email: "john.doe@example.com"},
		{Name: "Jane Smith", Email: "jane.smith@example.com"},
	}
	for i := range customers {
		if err := tx.Create(&customers[i]).Error; err != nil {
			return nil, fmt.Errorf("seed customer %q: %w", customers[i].Email, err)
		}
		account := &models.LoyaltyAccount{CustomerID: customers[i].ID, Points: 100}
		if err := tx.Create(account).Error; err != nil {
			return nil, fmt.Errorf("seed loyalty account for %q: %w", customers[i].Email, err)
		}
	}
	s.info(ctx, "customers and loyalty accounts seeded")
	return customers, nil
}

func (s *Seeder) seedRules(ctx context.Context, tx *gorm.DB, categories map[string]*models.Category) error {
	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	datePtr := func(year int, month time.Month, day int) *time.Time {
		d := date(year, month, day)
		return &d
	}

	rules := []models.PointEarningRule{
		{
			CategoryID:      categories["Default"].ID,
			PointsPerDollar: 1,
			StartDate:       date(1900, time.January, 1),
			EndDate:         datePtr(2099, time.December, 31),
		},
		{
			CategoryID:      categories["Electronics"].ID,
			PointsPerDollar: 2,
			StartDate:       date(2024, time.January, 1),
			EndDate:         datePtr(2024, time.December, 31),
		},
		{
			CategoryID:      categories["Books"].ID,
			PointsPerDollar: 1,
			StartDate:       date(2024, time.January, 1),
			EndDate:         datePtr(2024, time.December, 31),
		},
	}
	for i := range rules {
		if err := tx.Create(&rules[i]).Error; err != nil {
			return fmt.Errorf("seed rule for category %d: %w", rules[i].CategoryID, err)
		}
	}
	s.info(ctx, "point earning rules seeded")
	return nil
}

func (s *Seeder) seedCarts(ctx context.Context, tx *gorm.DB, customers []models.Customer) error {
	for _, customer := range customers {
		cart := &models.ShoppingCart{CustomerID: customer.ID}
		if err := tx.Create(cart).Error; err != nil {
			return fmt.Errorf("seed cart for customer %d: %w", customer.ID, err)
		}
	}
	s.info(ctx, "shopping carts seeded")
	return nil
}

func (s *Seeder) info(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Info(ctx, msg)
	}
}
