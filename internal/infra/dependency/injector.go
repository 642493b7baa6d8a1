// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-wallet/backend/config"
	"github.com/finance-wallet/backend/internal/application/usecase/account"
	"github.com/finance-wallet/backend/internal/application/usecase/category"
	"github.com/finance-wallet/backend/internal/application/usecase/transaction"
	"github.com/finance-wallet/backend/internal/infra/db"
	"github.com/finance-wallet/backend/internal/infra/server/router"
	"github.com/finance-wallet/backend/internal/integration/adapters"
	"github.com/finance-wallet/backend/internal/integration/entrypoint/controller"
	"github.com/finance-wallet/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-wallet/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(database)
	categoryRepo := persistence.NewCategoryRepository(database)
	transactionRepo := persistence.NewTransactionRepository(database)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	reconcileTransactionUseCase := transaction.NewReconcileTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := database.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		db.RedisHealthCheck(redisClient),
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		updateAccountUseCase,
		listAccountsUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listCategoriesUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		reconcileTransactionUseCase,
		listTransactionsUseCase,
	)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiterWithConfig(
			redisClient,
			cfg.RateLimit.MaxAttempts,
			cfg.RateLimit.WindowDuration,
		)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		transactionController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     database,
		Redis:  redisClient,
		Router: r,
	}
}
