// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/config"
	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/application/usecase/account"
	"github.com/kairos-app/backend/internal/application/usecase/analysis"
	"github.com/kairos-app/backend/internal/application/usecase/auth"
	"github.com/kairos-app/backend/internal/application/usecase/gamification"
	"github.com/kairos-app/backend/internal/application/usecase/habit"
	"github.com/kairos-app/backend/internal/application/usecase/journal"
	"github.com/kairos-app/backend/internal/application/usecase/todo"
	"github.com/kairos-app/backend/internal/application/usecase/transaction"
	redisinfra "github.com/kairos-app/backend/internal/infra/redis"
	"github.com/kairos-app/backend/internal/infra/server/router"
	"github.com/kairos-app/backend/internal/integration/adapters"
	"github.com/kairos-app/backend/internal/integration/email"
	"github.com/kairos-app/backend/internal/integration/email/templates"
	"github.com/kairos-app/backend/internal/integration/entrypoint/controller"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
	"github.com/kairos-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil; the leaderboard then falls back to SQL ranking.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	habitLogRepo := persistence.NewHabitLogRepository(db)
	todoRepo := persistence.NewTodoRepository(db)
	journalRepo := persistence.NewJournalRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	analysisRepo := persistence.NewAnalysisRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	var leaderboard adapter.Leaderboard
	if redisClient != nil {
		leaderboard = adapters.NewRedisLeaderboard(redisClient)
	}

	// Create email worker (started by the caller when enabled)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create habit use cases
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo)
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, habitLogRepo)
	logHabitUseCase := habit.NewLogHabitUseCase(habitRepo, habitLogRepo, userRepo, emailService)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)

	// Create todo use cases
	createTodoUseCase := todo.NewCreateTodoUseCase(todoRepo)
	listTodosUseCase := todo.NewListTodosUseCase(todoRepo)
	updateTodoUseCase := todo.NewUpdateTodoUseCase(todoRepo)
	completeTodoUseCase := todo.NewCompleteTodoUseCase(todoRepo)
	deleteTodoUseCase := todo.NewDeleteTodoUseCase(todoRepo)

	// Create journal use cases
	createEntryUseCase := journal.NewCreateEntryUseCase(journalRepo, userRepo, leaderboard)
	listEntriesUseCase := journal.NewListEntriesUseCase(journalRepo)
	getEntryUseCase := journal.NewGetEntryUseCase(journalRepo)
	updateEntryUseCase := journal.NewUpdateEntryUseCase(journalRepo)
	deleteEntryUseCase := journal.NewDeleteEntryUseCase(journalRepo)

	// Create account and transaction use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create analysis use cases
	getAnalysisUseCase := analysis.NewGetAnalysisUseCase(
		habitRepo,
		habitLogRepo,
		todoRepo,
		transactionRepo,
		journalRepo,
		analysisRepo,
	)
	getAnalysisHistoryUseCase := analysis.NewGetHistoryUseCase(analysisRepo)

	// Create gamification use cases
	getLeaderboardUseCase := gamification.NewGetLeaderboardUseCase(leaderboard, userRepo)
	getMyRankUseCase := gamification.NewGetMyRankUseCase(leaderboard, userRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisinfra.HealthCheck(redisClient)
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	habitController := controller.NewHabitController(
		createHabitUseCase,
		listHabitsUseCase,
		logHabitUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
	)

	todoController := controller.NewTodoController(
		createTodoUseCase,
		listTodosUseCase,
		updateTodoUseCase,
		completeTodoUseCase,
		deleteTodoUseCase,
	)

	journalController := controller.NewJournalController(
		createEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		createAccountUseCase,
		listAccountsUseCase,
	)

	analysisController := controller.NewAnalysisController(getAnalysisUseCase, getAnalysisHistoryUseCase)

	leaderboardController := controller.NewLeaderboardController(
		getLeaderboardUseCase,
		getMyRankUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		habitController,
		todoController,
		journalController,
		transactionController,
		analysisController,
		leaderboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
