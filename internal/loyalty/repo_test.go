package loyalty

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/loyaltyworks/rewards-backend/internal/cart"
	"github.com/loyaltyworks/rewards-backend/internal/products"
	"github.com/loyaltyworks/rewards-backend/internal/rules"
	"github.com/loyaltyworks/rewards-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLoyaltyTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A plain ":memory:" DSN creates a separate database per pooled
	// connection; a named shared-cache database keeps every connection on
	// the same in-memory database while staying isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  image_url TEXT,
  category_id INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS point_earning_rules (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_id INTEGER NOT NULL,
  points_per_dollar INTEGER NOT NULL,
  start_date DATETIME NOT NULL,
  end_date DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS loyalty_accounts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL UNIQUE,
  points INTEGER NOT NULL DEFAULT 0,
  last_updated DATETIME,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS point_transactions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  loyalty_account_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  points_earned INTEGER NOT NULL,
  transaction_date DATETIME NOT NULL,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS shopping_carts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS cart_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  cart_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// failingAddPointsRepo delegates to the real repository but fails the balance
// update, simulating a persistence fault mid-checkout.
type failingAddPointsRepo struct {
	inner Repository
}

func (f failingAddPointsRepo) WithTx(tx *gorm.DB) Repository {
	return failingAddPointsRepo{inner: f.inner.WithTx(tx)}
}

func (f failingAddPointsRepo) CreateAccount(ctx context.Context, account *models.LoyaltyAccount) (*models.LoyaltyAccount, error) {
	return f.inner.CreateAccount(ctx, account)
}

func (f failingAddPointsRepo) FindAccountByCustomerID(ctx context.Context, customerID uint) (*models.LoyaltyAccount, error) {
	return f.inner.FindAccountByCustomerID(ctx, customerID)
}

func (f failingAddPointsRepo) AddPoints(ctx context.Context, accountID uint, delta int) error {
	return errors.New("simulated balance update failure")
}

func (f failingAddPointsRepo) CreateTransactions(ctx context.Context, transactions []models.PointTransaction) error {
	return f.inner.CreateTransactions(ctx, transactions)
}

func (f failingAddPointsRepo) ListTransactions(ctx context.Context, accountID uint) ([]models.PointTransaction, error) {
	return f.inner.ListTransactions(ctx, accountID)
}

func seedCheckoutFixtures(t *testing.T, db *gorm.DB) (accountID uint) {
	t.Helper()

	customer := &models.Customer{Name: "John Doe", Email: "john.doe@example.com"}
	require.NoError(t, db.Create(customer).Error)

	category := &models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		Name:       "Laptop",
		Price:      decimal.RequireFromString("1200.00"),
		CategoryID: &category.ID,
	}
	require.NoError(t, db.Create(product).Error)

	now := time.Now().UTC()
	end := now.Add(365 * 24 * time.Hour)
	rule := &models.PointEarningRule{
		CategoryID:      category.ID,
		PointsPerDollar: 2,
		StartDate:       now.Add(-24 * time.Hour),
		EndDate:         &end,
	}
	require.NoError(t, db.Create(rule).Error)

	account := &models.LoyaltyAccount{CustomerID: customer.ID, Points: 100}
	require.NoError(t, db.Create(account).Error)

	shoppingCart := &models.ShoppingCart{CustomerID: customer.ID}
	require.NoError(t, db.Create(shoppingCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    shoppingCart.ID,
		ProductID: product.ID,
		Quantity:  2,
	}).Error)

	return account.ID
}

func TestAddPointsIncrementsBalance(t *testing.T) {
	db := setupLoyaltyTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	account, err := repo.CreateAccount(ctx, &models.LoyaltyAccount{CustomerID: 1, Points: 100})
	require.NoError(t, err)

	require.NoError(t, repo.AddPoints(ctx, account.ID, 50))
	require.NoError(t, repo.AddPoints(ctx, account.ID, 25))

	loaded, err := repo.FindAccountByCustomerID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 175, loaded.Points)
}

func TestAddPointsUnknownAccount(t *testing.T) {
	db := setupLoyaltyTestDB(t)
	repo := NewRepository(db)

	err := repo.AddPoints(context.Background(), 9999, 50)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateAndListTransactionsKeepsOrder(t *testing.T) {
	db := setupLoyaltyTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	account, err := repo.CreateAccount(ctx, &models.LoyaltyAccount{CustomerID: 1})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, repo.CreateTransactions(ctx, []models.PointTransaction{
		{LoyaltyAccountID: account.ID, ProductID: 1, PointsEarned: 100, TransactionDate: now},
		{LoyaltyAccountID: account.ID, ProductID: 2, PointsEarned: 50, TransactionDate: now},
	}))

	rows, err := repo.ListTransactions(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(1), rows[0].ProductID)
	assert.Equal(t, uint(2), rows[1].ProductID)
}

func TestCheckoutEndToEndWithSQLite(t *testing.T) {
	db := setupLoyaltyTestDB(t)
	accountID := seedCheckoutFixtures(t, db)

	svc, err := NewService(
		gormTxRunner{db: db},
		NewRepository(db),
		cart.NewRepository(db),
		products.NewRepository(db),
		rules.NewRepository(db),
		nil,
	)
	require.NoError(t, err)

	result, err := svc.Checkout(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4800, result.TotalPointsEarned)

	var account models.LoyaltyAccount
	require.NoError(t, db.First(&account, accountID).Error)
	assert.Equal(t, 4900, account.Points)

	var count int64
	require.NoError(t, db.Model(&models.PointTransaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheckoutRollsBackOnBalanceFailure(t *testing.T) {
	db := setupLoyaltyTestDB(t)
	accountID := seedCheckoutFixtures(t, db)

	svc, err := NewService(
		gormTxRunner{db: db},
		failingAddPointsRepo{inner: NewRepository(db)},
		cart.NewRepository(db),
		products.NewRepository(db),
		rules.NewRepository(db),
		nil,
	)
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), 1)
	require.Error(t, err)

	// Neither the transaction rows nor the balance survive the rollback.
	var count int64
	require.NoError(t, db.Model(&models.PointTransaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var account models.LoyaltyAccount
	require.NoError(t, db.First(&account, accountID).Error)
	assert.Equal(t, 100, account.Points)
}
