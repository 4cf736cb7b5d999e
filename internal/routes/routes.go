// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"walletstack/internal/config"
	"walletstack/internal/handlers"
	"walletstack/internal/middleware"
	"walletstack/internal/models"
	"walletstack/internal/repositories"
	"walletstack/internal/repositories/cache"
	"walletstack/internal/services/audit"
	"walletstack/internal/services/deposit"
	"walletstack/internal/services/ledger"
	"walletstack/internal/services/paystack"
	"walletstack/internal/services/transfer"
	"walletstack/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService, auditService audit.Service) {
	// Initialize repositories
	store := repositories.NewStore(db)
	runner := repositories.NewTxRunner(db)

	// Payment gateway client
	gateway := paystack.NewClient(config.GetEnv("PAYSTACK_SECRET_KEY", ""))

	// Initialize services
	walletService := wallet.NewService(store.Wallets, cacheService)
	ledgerService := ledger.NewService(store.Transactions)
	transferService := transfer.NewService(runner, cacheService, auditService)
	depositService := deposit.NewService(store, runner, gateway, cacheService, auditService, deposit.Config{
		AllowUnsignedWebhooks: config.GetBoolEnv("PAYSTACK_ALLOW_UNSIGNED", false),
	})

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletService)
	depositHandler := handlers.NewDepositHandler(depositService)
	transferHandler := handlers.NewTransferHandler(transferService)
	transactionHandler := handlers.NewTransactionHandler(walletService, ledgerService)
	webhookHandler := handlers.NewWebhookHandler(depositService)
	healthHandler := handlers.NewHealthHandler(db, cacheService)

	authMiddleware := middleware.NewAuthMiddleware(store.APIKeys, store.Users)

	// Public routes
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Gateway webhooks authenticate by signature, not by session.
	api.Post("/webhooks/paystack", webhookHandler.HandlePaystackWebhook)

	// Authenticated wallet routes
	walletGroup := api.Group("/wallet", authMiddleware.Handler)
	walletGroup.Post("/", walletHandler.CreateWallet)
	walletGroup.Get("/", middleware.RequirePermission(models.PermissionRead), walletHandler.GetWallet)
	walletGroup.Get("/balance", middleware.RequirePermission(models.PermissionRead), walletHandler.GetBalance)

	walletGroup.Post("/deposit", middleware.RequirePermission(models.PermissionDeposit), depositHandler.InitiateDeposit)
	walletGroup.Get("/deposit/:reference", middleware.RequirePermission(models.PermissionRead), depositHandler.GetDepositStatus)
	walletGroup.Post("/deposit/:reference/verify", middleware.RequirePermission(models.PermissionDeposit), depositHandler.VerifyDeposit)

	walletGroup.Post("/transfer", middleware.RequirePermission(models.PermissionTransfer), transferHandler.Transfer)

	walletGroup.Get("/transactions", middleware.RequirePermission(models.PermissionRead), transactionHandler.ListTransactions)
}
