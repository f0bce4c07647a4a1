// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/card-tracker/backend/config"
	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/application/usecase/auth"
	"github.com/card-tracker/backend/internal/application/usecase/card"
	"github.com/card-tracker/backend/internal/application/usecase/category"
	"github.com/card-tracker/backend/internal/application/usecase/healthscore"
	"github.com/card-tracker/backend/internal/application/usecase/income"
	"github.com/card-tracker/backend/internal/application/usecase/projection"
	"github.com/card-tracker/backend/internal/application/usecase/purchase"
	"github.com/card-tracker/backend/internal/application/usecase/simulation"
	"github.com/card-tracker/backend/internal/application/usecase/timeline"
	"github.com/card-tracker/backend/internal/infra/server/router"
	"github.com/card-tracker/backend/internal/integration/adapters"
	"github.com/card-tracker/backend/internal/integration/email"
	"github.com/card-tracker/backend/internal/integration/email/templates"
	"github.com/card-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/card-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Worker    *email.Worker
	Scheduler *email.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	purchaseRepo := persistence.NewPurchaseRepository(db)
	reminderQueueRepo := persistence.NewReminderQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	cache := adapters.NewRedisCache(redisClient)
	quotaService := adapters.NewRedisQuotaService(redisClient)
	advisor := adapters.NewGeminiAdvisor(cfg.Gemini.APIKey)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create card use cases
	createCardUseCase := card.NewCreateCardUseCase(cardRepo)
	listCardsUseCase := card.NewListCardsUseCase(cardRepo)
	getCardUseCase := card.NewGetCardUseCase(cardRepo)
	updateCardUseCase := card.NewUpdateCardUseCase(cardRepo, purchaseRepo, cache)
	deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo, cache)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create purchase use cases
	createPurchaseUseCase := purchase.NewCreatePurchaseUseCase(purchaseRepo, cardRepo, categoryRepo, cache)
	listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)
	getPurchaseUseCase := purchase.NewGetPurchaseUseCase(purchaseRepo)
	updatePurchaseUseCase := purchase.NewUpdatePurchaseUseCase(purchaseRepo, cardRepo, categoryRepo, cache)
	deletePurchaseUseCase := purchase.NewDeletePurchaseUseCase(purchaseRepo, cache)

	// Create insight use cases
	getTimelineUseCase := timeline.NewGetTimelineUseCase(purchaseRepo, cardRepo)
	simulatePurchaseUseCase := simulation.NewSimulatePurchaseUseCase(purchaseRepo, cardRepo, advisor, cache, quotaService)
	getLimitReleaseUseCase := projection.NewGetLimitReleaseUseCase(purchaseRepo)
	getHealthScoreUseCase := healthscore.NewGetHealthScoreUseCase(purchaseRepo, incomeRepo, cardRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	cardController := controller.NewCardController(
		createCardUseCase,
		listCardsUseCase,
		getCardUseCase,
		updateCardUseCase,
		deleteCardUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomesUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	purchaseController := controller.NewPurchaseController(
		createPurchaseUseCase,
		listPurchasesUseCase,
		getPurchaseUseCase,
		updatePurchaseUseCase,
		deletePurchaseUseCase,
	)

	timelineController := controller.NewTimelineController(getTimelineUseCase)
	simulationController := controller.NewSimulationController(simulatePurchaseUseCase)
	projectionController := controller.NewProjectionController(getLimitReleaseUseCase)
	healthScoreController := controller.NewHealthScoreController(getHealthScoreUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create reminder pipeline
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, reminder emails will use the mock sender")
		sender = email.NewMockEmailSender()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	reminderService := email.NewService(purchaseRepo, reminderQueueRepo)
	worker := email.NewWorker(reminderQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
	scheduler := email.NewScheduler(reminderService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		cardController,
		categoryController,
		incomeController,
		purchaseController,
		timelineController,
		simulationController,
		projectionController,
		healthScoreController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Worker:    worker,
		Scheduler: scheduler,
	}, nil
}
