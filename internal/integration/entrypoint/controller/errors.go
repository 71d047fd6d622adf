// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/integration/entrypoint/dto"
)

// respondError maps a use case error to an HTTP response. Coded domain
// errors carry their structured details through; anything else is a 500.
func respondError(ctx *gin.Context, err error) {
	var recErr *domainerror.ReconciliationError
	if errors.As(err, &recErr) {
		ctx.JSON(statusCodeFor(recErr), dto.ErrorResponse{
			Error:   recErr.Message,
			Code:    string(recErr.Code),
			Details: recErr.Details,
		})
		return
	}

	if domainerror.IsTransient(err) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "The store is temporarily unavailable, please retry",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeFor maps reconciliation error codes to HTTP status codes.
func statusCodeFor(recErr *domainerror.ReconciliationError) int {
	if domainerror.IsTransient(recErr) {
		return http.StatusServiceUnavailable
	}

	switch recErr.Code {
	case domainerror.ErrCodeReconciliationNotFound,
		domainerror.ErrCodeMatchNotFound,
		domainerror.ErrCodeLedgerTxnNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeEmptyStatement,
		domainerror.ErrCodeInvalidTolerance,
		domainerror.ErrCodeInvalidDuplicateDecision:
		return http.StatusBadRequest
	case domainerror.ErrCodeReconciliationFinal,
		domainerror.ErrCodeNotBalanced,
		domainerror.ErrCodeAmountIncompatible,
		domainerror.ErrCodeNotCurrentlyMatched,
		domainerror.ErrCodeNoHistoryToUndo,
		domainerror.ErrCodeNoPreviousTxnToUndo,
		domainerror.ErrCodeLedgerTxnAlreadyUsed,
		domainerror.ErrCodeFeeCorrectionBelowThreshold,
		domainerror.ErrCodeFeeCorrectionNotApplicable:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeLockNotAcquired:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
