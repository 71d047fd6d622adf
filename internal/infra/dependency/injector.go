// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/crechebooks/reconciliation/config"
	"github.com/crechebooks/reconciliation/internal/application/usecase/duplicate"
	feecorrection "github.com/crechebooks/reconciliation/internal/application/usecase/fee_correction"
	manualmatch "github.com/crechebooks/reconciliation/internal/application/usecase/manual_match"
	reconusecase "github.com/crechebooks/reconciliation/internal/application/usecase/reconciliation"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/infra/server/router"
	"github.com/crechebooks/reconciliation/internal/integration/adapters"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/controller"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/middleware"
	"github.com/crechebooks/reconciliation/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

func healthCheckContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Returns an error when the configured tolerance policy is out of range, so
// a misconfigured deployment fails at startup instead of silently matching
// with bad tolerances.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	reconciliationRepo := persistence.NewReconciliationRepository(db)
	matchRepo := persistence.NewMatchRepository(db)
	ledgerRepo := persistence.NewLedgerTransactionRepository(db)
	accruedChargeRepo := persistence.NewAccruedChargeRepository(db)
	duplicateRepo := persistence.NewDuplicateResolutionRepository(db)
	historyRepo := persistence.NewMatchHistoryRepository(db)
	auditSink := persistence.NewAuditLogRepository(db)

	// Create adapters/services
	locker := adapters.NewRedisLocker(redisClient, cfg.Reconciliation.LockTTL, cfg.Reconciliation.LockRetries)
	feeSchedule := adapters.NewStaticFeeSchedule(nil)

	policy := valueobject.TolerancePolicy{
		AbsoluteCents:        cfg.Reconciliation.AmountToleranceCents,
		Percent:              cfg.Reconciliation.AmountTolerancePercent,
		UseHigherTolerance:   cfg.Reconciliation.UseHigherTolerance,
		DateToleranceDays:    cfg.Reconciliation.DateToleranceDays,
		SimilarityThreshold:  cfg.Reconciliation.SimilarityThreshold,
		MaxConfidencePenalty: valueobject.DefaultTolerancePolicy().MaxConfidencePenalty,
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	matcher := reconusecase.NewMatcher(policy, reconusecase.FeeRange{
		MinCents: cfg.Reconciliation.FeeMinCents,
		MaxCents: cfg.Reconciliation.FeeMaxCents,
	})
	statusService := reconusecase.NewStatusService(reconciliationRepo, matchRepo, cfg.Reconciliation.BalanceToleranceCents)

	// Create reconciliation use cases
	reconcileUseCase := reconusecase.NewReconcileStatementUseCase(
		reconciliationRepo,
		ledgerRepo,
		locker,
		matcher,
		cfg.Reconciliation.BalanceToleranceCents,
	)
	getMatchesUseCase := reconusecase.NewGetMatchesUseCase(reconciliationRepo, matchRepo)
	getSummaryUseCase := reconusecase.NewGetUnmatchedSummaryUseCase(reconciliationRepo, matchRepo)
	completeUseCase := reconusecase.NewCompleteUseCase(reconciliationRepo, auditSink)

	// Create manual match use cases
	manualMatchUseCase := manualmatch.NewManualMatchUseCase(matchRepo, ledgerRepo, reconciliationRepo, statusService)
	unmatchUseCase := manualmatch.NewUnmatchUseCase(matchRepo, reconciliationRepo, statusService)
	undoLastUseCase := manualmatch.NewUndoLastUseCase(historyRepo, manualMatchUseCase, unmatchUseCase)

	// Create duplicate use cases
	detectDuplicatesUseCase := duplicate.NewDetectDuplicatesUseCase(matchRepo, duplicateRepo)
	resolveDuplicateUseCase := duplicate.NewResolveDuplicateUseCase(duplicateRepo)

	// Create fee correction use cases
	detector := feecorrection.NewDetector(feeSchedule)
	correctMatchesUseCase := feecorrection.NewCorrectExistingMatchesUseCase(detector, matchRepo, statusService)
	feeAggregatesUseCase := feecorrection.NewMatchMonthlyFeeAggregatesUseCase(accruedChargeRepo, ledgerRepo)

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
			ctx, cancel := healthCheckContext()
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	reconciliationController := controller.NewReconciliationController(
		reconcileUseCase,
		getMatchesUseCase,
		getSummaryUseCase,
		completeUseCase,
	)

	matchController := controller.NewMatchController(
		manualMatchUseCase,
		unmatchUseCase,
		undoLastUseCase,
	)

	duplicateController := controller.NewDuplicateController(
		detectDuplicatesUseCase,
		resolveDuplicateUseCase,
	)

	feeCorrectionController := controller.NewFeeCorrectionController(
		correctMatchesUseCase,
		feeAggregatesUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var reconcileRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		reconcileRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		reconcileRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Create router
	r := router.NewRouter(
		healthController,
		reconciliationController,
		matchController,
		duplicateController,
		feeCorrectionController,
		reconcileRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}, nil
}
