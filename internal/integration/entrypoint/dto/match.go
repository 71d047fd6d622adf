// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// ManualMatchRequest represents the request body for forcing a match.
type ManualMatchRequest struct {
	LedgerTransactionID string `json:"ledger_transaction_id" binding:"required,uuid"`
	Reason              string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// UnmatchRequest represents the request body for removing a ledger link.
type UnmatchRequest struct {
	Reason string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// MatchResponse represents a single match in API responses.
type MatchResponse struct {
	ID               string `json:"id"`
	ReconciliationID string `json:"reconciliation_id"`

	BankDate        string `json:"bank_date,omitempty"`
	BankDescription string `json:"bank_description,omitempty"`
	BankAmountCents int64  `json:"bank_amount_cents"`
	BankIsCredit    bool   `json:"bank_is_credit"`

	LedgerTransactionID *string `json:"ledger_transaction_id,omitempty"`
	LedgerDate          string  `json:"ledger_date,omitempty"`
	LedgerDescription   string  `json:"ledger_description,omitempty"`
	LedgerAmountCents   int64   `json:"ledger_amount_cents"`
	LedgerIsCredit      bool    `json:"ledger_is_credit"`

	Status     string   `json:"status"`
	Confidence *float64 `json:"confidence,omitempty"`
	Reason     string   `json:"reason,omitempty"`

	IsFeeAdjusted  bool   `json:"is_fee_adjusted"`
	FeeType        string `json:"fee_type,omitempty"`
	FeeAmountCents int64  `json:"fee_amount_cents,omitempty"`
}

// MatchMutationResponse represents the result of a manual match, unmatch, or
// undo, including the recomputed reconciliation status.
type MatchMutationResponse struct {
	Match                MatchResponse `json:"match"`
	ReconciliationStatus string        `json:"reconciliation_status"`
	UndoneAction         string        `json:"undone_action,omitempty"`
}

// MatchListResponse represents a reconciliation's matches.
type MatchListResponse struct {
	Reconciliation ReconciliationSummaryResponse `json:"reconciliation"`
	Matches        []MatchResponse               `json:"matches"`
}

// ReconciliationSummaryResponse represents reconciliation header fields
// returned alongside its matches.
type ReconciliationSummaryResponse struct {
	ID               string `json:"id"`
	PeriodStart      string `json:"period_start"`
	PeriodEnd        string `json:"period_end"`
	DiscrepancyCents int64  `json:"discrepancy_cents"`
	Status           string `json:"status"`
}

// ToMatchResponse converts a domain Match entity to a MatchResponse DTO.
func ToMatchResponse(match *entity.Match) MatchResponse {
	response := MatchResponse{
		ID:                match.ID.String(),
		ReconciliationID:  match.ReconciliationID.String(),
		BankAmountCents:   match.BankAmountCents,
		BankIsCredit:      match.BankIsCredit,
		BankDescription:   match.BankDescription,
		LedgerDescription: match.LedgerDescription,
		LedgerAmountCents: match.LedgerAmountCents,
		LedgerIsCredit:    match.LedgerIsCredit,
		Status:            string(match.Status),
		Confidence:        match.Confidence,
		Reason:            match.Reason,
		IsFeeAdjusted:     match.IsFeeAdjusted,
		FeeType:           match.FeeType,
		FeeAmountCents:    match.FeeAmountCents,
	}
	if !match.BankDate.IsZero() {
		response.BankDate = match.BankDate.Format("2006-01-02")
	}
	if match.LedgerTransactionID != nil {
		id := match.LedgerTransactionID.String()
		response.LedgerTransactionID = &id
	}
	if match.LedgerDate != nil {
		response.LedgerDate = match.LedgerDate.Format("2006-01-02")
	}
	return response
}

// ToMatchResponses converts a slice of domain matches to DTOs.
func ToMatchResponses(matches []entity.Match) []MatchResponse {
	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = ToMatchResponse(&matches[i])
	}
	return responses
}
