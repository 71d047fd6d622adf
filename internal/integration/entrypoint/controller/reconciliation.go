// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/usecase/reconciliation"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/dto"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/middleware"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	reconcileUseCase  *reconciliation.ReconcileStatementUseCase
	getMatchesUseCase *reconciliation.GetMatchesUseCase
	getSummaryUseCase *reconciliation.GetUnmatchedSummaryUseCase
	completeUseCase   *reconciliation.CompleteUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	reconcileUseCase *reconciliation.ReconcileStatementUseCase,
	getMatchesUseCase *reconciliation.GetMatchesUseCase,
	getSummaryUseCase *reconciliation.GetUnmatchedSummaryUseCase,
	completeUseCase *reconciliation.CompleteUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		reconcileUseCase:  reconcileUseCase,
		getMatchesUseCase: getMatchesUseCase,
		getSummaryUseCase: getSummaryUseCase,
		completeUseCase:   completeUseCase,
	}
}

// Reconcile handles POST /reconciliations requests.
func (c *ReconciliationController) Reconcile(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	var req dto.ReconcileStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyStatement),
		})
		return
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		respondInvalidDate(ctx, "period_start")
		return
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		respondInvalidDate(ctx, "period_end")
		return
	}
	entries, err := req.ToEntries()
	if err != nil {
		respondInvalidDate(ctx, "entries[].date")
		return
	}

	input := reconciliation.ReconcileStatementInput{
		TenantID:      tenantID,
		BankAccountID: req.BankAccountID,
		Actor:         userID,
		Statement: entity.ParsedStatement{
			PeriodStart:         periodStart,
			PeriodEnd:           periodEnd,
			OpeningBalanceCents: req.OpeningBalanceCents,
			ClosingBalanceCents: req.ClosingBalanceCents,
			Entries:             entries,
		},
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReconciliationResponse(output))
}

// GetMatches handles GET /reconciliations/:id/matches requests.
func (c *ReconciliationController) GetMatches(ctx *gin.Context) {
	tenantID, _, ok := authContext(ctx)
	if !ok {
		return
	}

	reconciliationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.getMatchesUseCase.Execute(ctx.Request.Context(), reconciliation.GetMatchesInput{
		TenantID:         tenantID,
		ReconciliationID: reconciliationID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	rec := output.Reconciliation
	ctx.JSON(http.StatusOK, dto.MatchListResponse{
		Reconciliation: dto.ReconciliationSummaryResponse{
			ID:               rec.ID.String(),
			PeriodStart:      rec.PeriodStart.Format("2006-01-02"),
			PeriodEnd:        rec.PeriodEnd.Format("2006-01-02"),
			DiscrepancyCents: rec.DiscrepancyCents,
			Status:           string(rec.Status),
		},
		Matches: dto.ToMatchResponses(output.Matches),
	})
}

// GetSummary handles GET /reconciliations/:id/summary requests.
func (c *ReconciliationController) GetSummary(ctx *gin.Context) {
	tenantID, _, ok := authContext(ctx)
	if !ok {
		return
	}

	reconciliationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), reconciliation.GetUnmatchedSummaryInput{
		TenantID:         tenantID,
		ReconciliationID: reconciliationID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnmatchedSummaryResponse{
		Summary:          dto.ToMatchSummaryResponse(output.Summary),
		Unresolved:       dto.ToMatchResponses(output.Unresolved),
		DiscrepancyCents: output.DiscrepancyCents,
		Status:           string(output.Status),
	})
}

// Complete handles POST /reconciliations/:id/complete requests.
func (c *ReconciliationController) Complete(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	reconciliationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), reconciliation.CompleteInput{
		TenantID:         tenantID,
		ReconciliationID: reconciliationID,
		Actor:            userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompleteReconciliationResponse{
		ID:           output.ReconciliationID.String(),
		ReconciledBy: output.ReconciledBy.String(),
		ReconciledAt: output.ReconciledAt,
	})
}

// authContext pulls the tenant and user from the authenticated request,
// writing the 401 itself when they are absent.
func authContext(ctx *gin.Context) (tenantID, userID uuid.UUID, ok bool) {
	tenantID, tenantOK := middleware.GetTenantIDFromContext(ctx)
	userID, userOK := middleware.GetUserIDFromContext(ctx)
	if !tenantOK || !userOK {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, userID, true
}

func respondInvalidID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid id parameter",
	})
}

func respondInvalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date in field " + field + ", expected YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidPeriod),
	})
}
