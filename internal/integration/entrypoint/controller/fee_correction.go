// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	feecorrection "github.com/crechebooks/reconciliation/internal/application/usecase/fee_correction"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/dto"
)

// FeeCorrectionController handles fee correction endpoints.
type FeeCorrectionController struct {
	correctUseCase    *feecorrection.CorrectExistingMatchesUseCase
	aggregatesUseCase *feecorrection.MatchMonthlyFeeAggregatesUseCase
}

// NewFeeCorrectionController creates a new fee correction controller instance.
func NewFeeCorrectionController(
	correctUseCase *feecorrection.CorrectExistingMatchesUseCase,
	aggregatesUseCase *feecorrection.MatchMonthlyFeeAggregatesUseCase,
) *FeeCorrectionController {
	return &FeeCorrectionController{
		correctUseCase:    correctUseCase,
		aggregatesUseCase: aggregatesUseCase,
	}
}

// Correct handles POST /fee-corrections requests.
func (c *FeeCorrectionController) Correct(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	var req dto.CorrectExistingMatchesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.correctUseCase.Execute(ctx.Request.Context(), feecorrection.CorrectExistingMatchesInput{
		TenantID: tenantID,
		Actor:    userID,
		DryRun:   req.DryRun,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCorrectExistingMatchesResponse(output))
}

// MatchAggregates handles POST /fee-corrections/aggregates requests.
func (c *FeeCorrectionController) MatchAggregates(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	var req dto.MatchFeeAggregatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		respondInvalidDate(ctx, "from")
		return
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		respondInvalidDate(ctx, "to")
		return
	}

	output, err := c.aggregatesUseCase.Execute(ctx.Request.Context(), feecorrection.MatchMonthlyFeeAggregatesInput{
		TenantID: tenantID,
		Actor:    userID,
		From:     from,
		To:       to,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchFeeAggregatesResponse(output))
}
