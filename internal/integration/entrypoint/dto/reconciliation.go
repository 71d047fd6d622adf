// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/crechebooks/reconciliation/internal/application/usecase/reconciliation"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// BankEntryRequest represents one parsed bank statement line. All amounts are
// integer cents.
type BankEntryRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required,max=255"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	IsCredit    bool   `json:"is_credit"`
}

// ReconcileStatementRequest represents the request body for reconciling a
// parsed statement.
type ReconcileStatementRequest struct {
	BankAccountID       string             `json:"bank_account_id" binding:"required,max=64"`
	PeriodStart         string             `json:"period_start" binding:"required"`
	PeriodEnd           string             `json:"period_end" binding:"required"`
	OpeningBalanceCents int64              `json:"opening_balance_cents"`
	ClosingBalanceCents int64              `json:"closing_balance_cents"`
	Entries             []BankEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// ToEntries converts the request entries to domain bank transactions,
// preserving statement order.
func (r *ReconcileStatementRequest) ToEntries() ([]entity.BankTransaction, error) {
	entries := make([]entity.BankTransaction, len(r.Entries))
	for i, e := range r.Entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, err
		}
		entries[i] = entity.BankTransaction{
			Date:        date,
			Description: e.Description,
			AmountCents: e.AmountCents,
			IsCredit:    e.IsCredit,
		}
	}
	return entries, nil
}

// MatchSummaryResponse represents match counts per status.
type MatchSummaryResponse struct {
	Total          int `json:"total"`
	Matched        int `json:"matched"`
	InBankOnly     int `json:"in_bank_only"`
	InXeroOnly     int `json:"in_xero_only"`
	AmountMismatch int `json:"amount_mismatch"`
	DateMismatch   int `json:"date_mismatch"`
	FeeAdjusted    int `json:"fee_adjusted"`
}

// ReconciliationResponse represents a reconciliation run in API responses.
type ReconciliationResponse struct {
	ID                     string               `json:"id"`
	PeriodStart            string               `json:"period_start"`
	PeriodEnd              string               `json:"period_end"`
	OpeningBalanceCents    int64                `json:"opening_balance_cents"`
	ClosingBalanceCents    int64                `json:"closing_balance_cents"`
	CalculatedBalanceCents int64                `json:"calculated_balance_cents"`
	DiscrepancyCents       int64                `json:"discrepancy_cents"`
	Status                 string               `json:"status"`
	Summary                MatchSummaryResponse `json:"summary"`
}

// ToReconciliationResponse converts a use case output to a ReconciliationResponse DTO.
func ToReconciliationResponse(output *reconciliation.ReconcileStatementOutput) ReconciliationResponse {
	return ReconciliationResponse{
		ID:                     output.ReconciliationID.String(),
		PeriodStart:            output.PeriodStart.Format("2006-01-02"),
		PeriodEnd:              output.PeriodEnd.Format("2006-01-02"),
		OpeningBalanceCents:    output.OpeningBalanceCents,
		ClosingBalanceCents:    output.ClosingBalanceCents,
		CalculatedBalanceCents: output.CalculatedBalanceCents,
		DiscrepancyCents:       output.DiscrepancyCents,
		Status:                 string(output.Status),
		Summary:                ToMatchSummaryResponse(output.Summary),
	}
}

// ToMatchSummaryResponse converts a domain MatchSummary to its DTO.
func ToMatchSummaryResponse(summary entity.MatchSummary) MatchSummaryResponse {
	return MatchSummaryResponse{
		Total:          summary.Total,
		Matched:        summary.Matched,
		InBankOnly:     summary.InBankOnly,
		InXeroOnly:     summary.InXeroOnly,
		AmountMismatch: summary.AmountMismatch,
		DateMismatch:   summary.DateMismatch,
		FeeAdjusted:    summary.FeeAdjusted,
	}
}

// UnmatchedSummaryResponse represents what still blocks a reconciliation.
type UnmatchedSummaryResponse struct {
	Summary          MatchSummaryResponse `json:"summary"`
	Unresolved       []MatchResponse      `json:"unresolved"`
	DiscrepancyCents int64                `json:"discrepancy_cents"`
	Status           string               `json:"status"`
}

// CompleteReconciliationResponse represents the result of finalizing a
// reconciliation.
type CompleteReconciliationResponse struct {
	ID           string    `json:"id"`
	ReconciledBy string    `json:"reconciled_by"`
	ReconciledAt time.Time `json:"reconciled_at"`
}
