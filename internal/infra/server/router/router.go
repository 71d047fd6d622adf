// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/controller"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	reconciliationController *controller.ReconciliationController
	matchController          *controller.MatchController
	duplicateController      *controller.DuplicateController
	feeCorrectionController  *controller.FeeCorrectionController
	reconcileRateLimiter     *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reconciliationController *controller.ReconciliationController,
	matchController *controller.MatchController,
	duplicateController *controller.DuplicateController,
	feeCorrectionController *controller.FeeCorrectionController,
	reconcileRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		reconciliationController: reconciliationController,
		matchController:          matchController,
		duplicateController:      duplicateController,
		feeCorrectionController:  feeCorrectionController,
		reconcileRateLimiter:     reconcileRateLimiter,
		authMiddleware:           authMiddleware,
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
		// Reconciliation routes (require authentication)
		if r.reconciliationController != nil && r.authMiddleware != nil {
			reconciliations := v1.Group("/reconciliations")
			reconciliations.Use(r.authMiddleware.Authenticate())
			{
				if r.reconcileRateLimiter != nil {
					reconciliations.POST("", r.reconcileRateLimiter.Middleware(), r.reconciliationController.Reconcile)
				} else {
					reconciliations.POST("", r.reconciliationController.Reconcile)
				}
				reconciliations.GET("/:id/matches", r.reconciliationController.GetMatches)
				reconciliations.GET("/:id/summary", r.reconciliationController.GetSummary)
				reconciliations.POST("/:id/complete", r.reconciliationController.Complete)
			}
		}

		// Match routes (require authentication)
		if r.matchController != nil && r.authMiddleware != nil {
			matches := v1.Group("/matches")
			matches.Use(r.authMiddleware.Authenticate())
			{
				matches.POST("/:id/manual-match", r.matchController.ManualMatch)
				matches.POST("/:id/unmatch", r.matchController.Unmatch)
				matches.POST("/:id/undo", r.matchController.UndoLast)
			}
		}

		// Duplicate detection routes (require authentication)
		if r.duplicateController != nil && r.authMiddleware != nil {
			duplicates := v1.Group("/duplicates")
			duplicates.Use(r.authMiddleware.Authenticate())
			{
				duplicates.POST("/detect", r.duplicateController.Detect)
				duplicates.POST("/resolve", r.duplicateController.Resolve)
			}
		}

		// Fee correction routes (require authentication)
		if r.feeCorrectionController != nil && r.authMiddleware != nil {
			feeCorrections := v1.Group("/fee-corrections")
			feeCorrections.Use(r.authMiddleware.Authenticate())
			{
				feeCorrections.POST("", r.feeCorrectionController.Correct)
				feeCorrections.POST("/aggregates", r.feeCorrectionController.MatchAggregates)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
