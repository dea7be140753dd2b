package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loyaltyworks/rewards-backend/api/controllers"
	"github.com/loyaltyworks/rewards-backend/api/middleware"
	cartsvc "github.com/loyaltyworks/rewards-backend/internal/cart"
	categorysvc "github.com/loyaltyworks/rewards-backend/internal/categories"
	customersvc "github.com/loyaltyworks/rewards-backend/internal/customers"
	loyaltysvc "github.com/loyaltyworks/rewards-backend/internal/loyalty"
	productsvc "github.com/loyaltyworks/rewards-backend/internal/products"
	rulesvc "github.com/loyaltyworks/rewards-backend/internal/rules"
	"github.com/loyaltyworks/rewards-backend/pkg/config"
	"github.com/loyaltyworks/rewards-backend/pkg/db"
	"github.com/loyaltyworks/rewards-backend/pkg/logger"
	"github.com/loyaltyworks/rewards-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	metricsRegistry *prometheus.Registry,
	customerService customersvc.Service,
	categoryService categorysvc.Service,
	productService productsvc.Service,
	ruleService rulesvc.Service,
	cartService cartsvc.Service,
	loyaltyService loyaltysvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbClient, redisClient, logg))
	})

	if metricsRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.Login(customerService, cfg.Session, logg))
		r.Post("/logout", controllers.Logout(cfg.Session))
	})

	// Public catalog browsing and customer registration.
	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.Idempotency(redisClient, logg)).Post("/customers", controllers.CustomerCreate(customerService, logg))
		r.Get("/products", controllers.ProductList(productService, logg))
		r.Get("/products/{productID}", controllers.ProductGet(productService, logg))
		r.Get("/categories", controllers.CategoryList(categoryService, logg))
		r.Get("/categories/{categoryID}", controllers.CategoryGet(categoryService, logg))

		// Session-scoped cart and loyalty surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(cfg.Session, logg))
			r.Use(middleware.Idempotency(redisClient, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Put("/items/{productID}", controllers.CartUpdateItem(cartService, logg))
				r.Delete("/items/{productID}", controllers.CartRemoveItem(cartService, logg))
			})

			r.Post("/checkout", controllers.Checkout(loyaltyService, cartService, logg))
			r.Get("/points", controllers.PointsBalance(loyaltyService, logg))
			r.Get("/points/history", controllers.PointsHistory(loyaltyService, logg))
		})

		// Back-office management surface.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.SessionAuth(cfg.Session, logg))
			r.Use(middleware.Idempotency(redisClient, logg))

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", controllers.CustomerList(customerService, logg))
				r.Get("/{customerID}", controllers.CustomerGet(customerService, logg))
				r.Put("/{customerID}", controllers.CustomerUpdate(customerService, logg))
				r.Delete("/{customerID}", controllers.CustomerDelete(customerService, logg))
			})
			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.ProductCreate(productService, logg))
				r.Put("/{productID}", controllers.ProductUpdate(productService, logg))
				r.Delete("/{productID}", controllers.ProductDelete(productService, logg))
			})
			r.Route("/categories", func(r chi.Router) {
				r.Post("/", controllers.CategoryCreate(categoryService, logg))
				r.Put("/{categoryID}", controllers.CategoryUpdate(categoryService, logg))
				r.Delete("/{categoryID}", controllers.CategoryDelete(categoryService, logg))
			})
			r.Route("/rules", func(r chi.Router) {
				r.Get("/", controllers.RuleList(ruleService, logg))
				r.Post("/", controllers.RuleCreate(ruleService, logg))
				r.Get("/{ruleID}", controllers.RuleGet(ruleService, logg))
				r.Delete("/{ruleID}", controllers.RuleDelete(ruleService, logg))
			})
		})
	})

	return r
}
