// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kairos-app/backend/internal/integration/entrypoint/controller"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	habitController       *controller.HabitController
	todoController        *controller.TodoController
	journalController     *controller.JournalController
	transactionController *controller.TransactionController
	analysisController    *controller.AnalysisController
	leaderboardController *controller.LeaderboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	habitController *controller.HabitController,
	todoController *controller.TodoController,
	journalController *controller.JournalController,
	transactionController *controller.TransactionController,
	analysisController *controller.AnalysisController,
	leaderboardController *controller.LeaderboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		habitController:       habitController,
		todoController:        todoController,
		journalController:     journalController,
		transactionController: transactionController,
		analysisController:    analysisController,
		leaderboardController: leaderboardController,
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
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Habit routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.POST("/log", r.habitController.Log)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)
			}
		}

		// Todo routes (require authentication)
		if r.todoController != nil && r.authMiddleware != nil {
			todos := v1.Group("/todos")
			todos.Use(r.authMiddleware.Authenticate())
			{
				todos.GET("", r.todoController.List)
				todos.POST("", r.todoController.Create)
				todos.PATCH("/:id", r.todoController.Update)
				todos.POST("/:id/complete", r.todoController.Complete)
				todos.DELETE("/:id", r.todoController.Delete)
			}
		}

		// Journal routes (require authentication)
		if r.journalController != nil && r.authMiddleware != nil {
			journal := v1.Group("/journal")
			journal.Use(r.authMiddleware.Authenticate())
			{
				journal.GET("", r.journalController.List)
				journal.POST("", r.journalController.Create)
				journal.GET("/:id", r.journalController.Get)
				journal.PATCH("/:id", r.journalController.Update)
				journal.DELETE("/:id", r.journalController.Delete)
			}
		}

		// Account and transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.transactionController.ListAccounts)
				accounts.POST("", r.transactionController.CreateAccount)
			}

			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Analysis routes (require authentication)
		if r.analysisController != nil && r.authMiddleware != nil {
			analysis := v1.Group("/analysis")
			analysis.Use(r.authMiddleware.Authenticate())
			{
				analysis.GET("", r.analysisController.Get)
				analysis.GET("/history", r.analysisController.GetHistory)
			}
		}

		// Leaderboard routes (require authentication)
		if r.leaderboardController != nil && r.authMiddleware != nil {
			leaderboard := v1.Group("/leaderboard")
			leaderboard.Use(r.authMiddleware.Authenticate())
			{
				leaderboard.GET("", r.leaderboardController.Get)
				leaderboard.GET("/me", r.leaderboardController.GetMyRank)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
