// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crechebooks/reconciliation/internal/application/usecase/duplicate"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/dto"
)

// DuplicateController handles duplicate detection endpoints.
type DuplicateController struct {
	detectUseCase  *duplicate.DetectDuplicatesUseCase
	resolveUseCase *duplicate.ResolveDuplicateUseCase
}

// NewDuplicateController creates a new duplicate controller instance.
func NewDuplicateController(
	detectUseCase *duplicate.DetectDuplicatesUseCase,
	resolveUseCase *duplicate.ResolveDuplicateUseCase,
) *DuplicateController {
	return &DuplicateController{
		detectUseCase:  detectUseCase,
		resolveUseCase: resolveUseCase,
	}
}

// Detect handles POST /duplicates/detect requests.
func (c *DuplicateController) Detect(ctx *gin.Context) {
	tenantID, _, ok := authContext(ctx)
	if !ok {
		return
	}

	var req dto.DetectDuplicatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	entries := make([]entity.BankTransaction, len(req.Entries))
	for i, e := range req.Entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			respondInvalidDate(ctx, "entries[].date")
			return
		}
		entries[i] = entity.BankTransaction{
			Date:        date,
			Description: e.Description,
			AmountCents: e.AmountCents,
			IsCredit:    e.IsCredit,
		}
	}

	output, err := c.detectUseCase.Execute(ctx.Request.Context(), duplicate.DetectDuplicatesInput{
		TenantID: tenantID,
		Entries:  entries,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDetectDuplicatesResponse(output))
}

// Resolve handles POST /duplicates/resolve requests.
func (c *DuplicateController) Resolve(ctx *gin.Context) {
	tenantID, userID, ok := authContext(ctx)
	if !ok {
		return
	}

	var req dto.ResolveDuplicateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), duplicate.ResolveDuplicateInput{
		TenantID:     tenantID,
		CompositeKey: req.CompositeKey,
		Decision:     valueobject.DuplicateDecision(req.Decision),
		Actor:        userID,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResolveDuplicateResponse{
		CompositeKey: output.Resolution.CompositeKey,
		Decision:     string(output.Resolution.Decision),
		ResolvedBy:   output.Resolution.ResolvedBy.String(),
	})
}
