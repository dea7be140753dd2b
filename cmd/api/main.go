package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/loyaltyworks/rewards-backend/api/routes"
	"github.com/loyaltyworks/rewards-backend/internal/cart"
	"github.com/loyaltyworks/rewards-backend/internal/categories"
	"github.com/loyaltyworks/rewards-backend/internal/customers"
	"github.com/loyaltyworks/rewards-backend/internal/loyalty"
	"github.com/loyaltyworks/rewards-backend/internal/products"
	"github.com/loyaltyworks/rewards-backend/internal/rules"
	"github.com/loyaltyworks/rewards-backend/pkg/config"
	"github.com/loyaltyworks/rewards-backend/pkg/db"
	"github.com/loyaltyworks/rewards-backend/pkg/logger"
	"github.com/loyaltyworks/rewards-backend/pkg/metrics"
	"github.com/loyaltyworks/rewards-backend/pkg/migrate"
	"github.com/loyaltyworks/rewards-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	checkoutMetrics := metrics.NewCheckoutMetrics(metricsRegistry)

	customerRepo := customers.NewRepository(dbClient.DB())
	categoryRepo := categories.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	ruleRepo := rules.NewRepository(dbClient.DB())
	cartRepo := cart.NewRepository(dbClient.DB())
	loyaltyRepo := loyalty.NewRepository(dbClient.DB())

	customerService, err := customers.NewService(dbClient, customerRepo)
	requireService(logg, "customer service", err)

	categoryService, err := categories.NewService(categoryRepo)
	requireService(logg, "category service", err)

	productService, err := products.NewService(productRepo, categoryRepo)
	requireService(logg, "product service", err)

	ruleService, err := rules.NewService(ruleRepo, categoryRepo)
	requireService(logg, "rule service", err)

	cartService, err := cart.NewService(cartRepo, productRepo)
	requireService(logg, "cart service", err)

	loyaltyService, err := loyalty.NewService(dbClient, loyaltyRepo, cartRepo, productRepo, ruleRepo, checkoutMetrics)
	requireService(logg, "loyalty service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			metricsRegistry,
			customerService,
			categoryService,
			productService,
			ruleService,
			cartService,
			loyaltyService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+name, err)
	os.Exit(1)
}
