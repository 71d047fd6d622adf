// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	manualmatch "github.com/crechebooks/reconciliation/internal/application/usecase/manual_match"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/dto"
)

// MatchController handles manual override endpoints.
type MatchController struct {
	manualMatchUseCase *manualmatch.ManualMatchUseCase
	unmatchUseCase     *manualmatch.UnmatchUseCase
	undoLastUseCase    *manualmatch.UndoLastUseCase
}

// NewMatchController creates a new match controller instance.
func NewMatchController(
	manualMatchUseCase *manualmatch.ManualMatchUseCase,
	unmatchUseCase *manualmatch.UnmatchUseCase,
	undoLastUseCase *manualmatch.UndoLastUseCase,
) *MatchController {
	return &MatchController{
		manualMatchUseCase: manualMatchUseCase,
		unmatchUseCase:     unmatchUseCase,
		undoLastUseCase:    undoLastUseCase,
	}
}

// ManualMatch handles POST /matches/:id/manual-match requests.
func (c *MatchController) ManualMatch(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	matchID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.ManualMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	ledgerTransactionID, err := uuid.Parse(req.LedgerTransactionID)
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.manualMatchUseCase.Execute(ctx.Request.Context(), manualmatch.ManualMatchInput{
		TenantID:            tenantID,
		MatchID:             matchID,
		LedgerTransactionID: ledgerTransactionID,
		Actor:               userID,
		Reason:              req.Reason,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MatchMutationResponse{
		Match:                dto.ToMatchResponse(output.Match),
		ReconciliationStatus: string(output.ReconciliationStatus),
	})
}

// Unmatch handles POST /matches/:id/unmatch requests.
func (c *MatchController) Unmatch(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	matchID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.UnmatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.unmatchUseCase.Execute(ctx.Request.Context(), manualmatch.UnmatchInput{
		TenantID: tenantID,
		MatchID:  matchID,
		Actor:    userID,
		Reason:   req.Reason,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MatchMutationResponse{
		Match:                dto.ToMatchResponse(output.Match),
		ReconciliationStatus: string(output.ReconciliationStatus),
	})
}

// UndoLast handles POST /matches/:id/undo requests.
func (c *MatchController) UndoLast(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	matchID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.undoLastUseCase.Execute(ctx.Request.Context(), manualmatch.UndoLastInput{
		TenantID: tenantID,
		MatchID:  matchID,
		Actor:    userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MatchMutationResponse{
		Match:                dto.ToMatchResponse(output.Match),
		ReconciliationStatus: string(output.ReconciliationStatus),
		UndoneAction:         string(output.UndoneAction),
	})
}
