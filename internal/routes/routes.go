// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and registers
// all HTTP routes with their middleware.
package routes

import (
	"time"

	"daswos/internal/handlers"
	"daswos/internal/repositories"
	"daswos/internal/repositories/cache"
	"daswos/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, walletCache *cache.WalletCache) {
	// Initialize repositories and services
	ledgerRepo := repositories.NewLedgerRepository(db)
	ledgerService := ledger.NewService(
		ledgerRepo,
		walletCache,
		ledger.Config{},
		&ledger.NoopMetricsCollector{},
	)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(ledgerService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	healthHandler := handlers.NewHealthHandler(db, walletCache)

	// Root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to DasWos Ledger API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Mutating ledger endpoints are rate limited per client IP.
	mutationLimiter := limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})

	// Wallet routes
	api.Post("/wallets", mutationLimiter, walletHandler.CreateWallet)
	api.Get("/wallets/:userID", walletHandler.GetWallet)

	// Ledger routes
	api.Post("/transfers", mutationLimiter, ledgerHandler.Transfer)
	api.Post("/credits", mutationLimiter, ledgerHandler.Credit)
	api.Get("/users/:userID/transactions", ledgerHandler.ListTransactions)
}
