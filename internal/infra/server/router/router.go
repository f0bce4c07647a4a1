// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/card-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	cardController        *controller.CardController
	categoryController    *controller.CategoryController
	incomeController      *controller.IncomeController
	purchaseController    *controller.PurchaseController
	timelineController    *controller.TimelineController
	simulationController  *controller.SimulationController
	projectionController  *controller.ProjectionController
	healthScoreController *controller.HealthScoreController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	cardController *controller.CardController,
	categoryController *controller.CategoryController,
	incomeController *controller.IncomeController,
	purchaseController *controller.PurchaseController,
	timelineController *controller.TimelineController,
	simulationController *controller.SimulationController,
	projectionController *controller.ProjectionController,
	healthScoreController *controller.HealthScoreController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		cardController:        cardController,
		categoryController:    categoryController,
		incomeController:      incomeController,
		purchaseController:    purchaseController,
		timelineController:    timelineController,
		simulationController:  simulationController,
		projectionController:  projectionController,
		healthScoreController: healthScoreController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Card routes (require authentication)
		if r.cardController != nil && r.authMiddleware != nil {
			cards := v1.Group("/cards")
			cards.Use(r.authMiddleware.Authenticate())
			{
				cards.GET("", r.cardController.List)
				cards.POST("", r.cardController.Create)
				cards.GET("/:id", r.cardController.Get)
				cards.PUT("/:id", r.cardController.Update)
				cards.DELETE("/:id", r.cardController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Income routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PUT("/:id", r.incomeController.Update)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		// Purchase routes (require authentication)
		if r.purchaseController != nil && r.authMiddleware != nil {
			purchases := v1.Group("/purchases")
			purchases.Use(r.authMiddleware.Authenticate())
			{
				purchases.GET("", r.purchaseController.List)
				purchases.POST("", r.purchaseController.Create)
				purchases.GET("/:id", r.purchaseController.Get)
				purchases.PUT("/:id", r.purchaseController.Update)
				purchases.DELETE("/:id", r.purchaseController.Delete)
			}
		}

		// Timeline routes (require authentication)
		if r.timelineController != nil && r.authMiddleware != nil {
			timeline := v1.Group("/timeline")
			timeline.Use(r.authMiddleware.Authenticate())
			{
				timeline.GET("", r.timelineController.Get)
			}
		}

		// Simulation routes (require authentication)
		if r.simulationController != nil && r.authMiddleware != nil {
			simulate := v1.Group("/simulate")
			simulate.Use(r.authMiddleware.Authenticate())
			{
				simulate.POST("", r.simulationController.Simulate)
			}
		}

		// Projection routes (require authentication)
		if r.projectionController != nil && r.authMiddleware != nil {
			projections := v1.Group("/projections")
			projections.Use(r.authMiddleware.Authenticate())
			{
				projections.GET("/limit-release", r.projectionController.GetLimitRelease)
			}
		}

		// Health score routes (require authentication)
		if r.healthScoreController != nil && r.authMiddleware != nil {
			healthScore := v1.Group("/health-score")
			healthScore.Use(r.authMiddleware.Authenticate())
			{
				healthScore.GET("", r.healthScoreController.Get)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
