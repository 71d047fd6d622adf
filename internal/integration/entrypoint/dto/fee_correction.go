// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	feecorrection "github.com/crechebooks/reconciliation/internal/application/usecase/fee_correction"
)

// CorrectExistingMatchesRequest represents the request body for a fee
// correction sweep.
type CorrectExistingMatchesRequest struct {
	DryRun bool `json:"dry_run"`
}

// CorrectionCandidateResponse represents one match accepted by the detector.
type CorrectionCandidateResponse struct {
	MatchID             string  `json:"match_id"`
	LedgerTransactionID string  `json:"ledger_transaction_id"`
	BankAmountCents     int64   `json:"bank_amount_cents"`
	LedgerAmountCents   int64   `json:"ledger_amount_cents"`
	FeeType             string  `json:"fee_type"`
	FeeAmountCents      int64   `json:"fee_amount_cents"`
	Confidence          float64 `json:"confidence"`
	Explanation         string  `json:"explanation"`
}

// SkippedMatchResponse represents one match the detector rejected.
type SkippedMatchResponse struct {
	MatchID    string  `json:"match_id"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// CorrectExistingMatchesResponse represents the result of a correction sweep.
type CorrectExistingMatchesResponse struct {
	DryRun     bool                          `json:"dry_run"`
	Candidates []CorrectionCandidateResponse `json:"candidates"`
	Skipped    []SkippedMatchResponse        `json:"skipped"`
	Applied    int                           `json:"applied"`
}

// MatchFeeAggregatesRequest represents the request body for settling accrued
// charges against standalone fee lines.
type MatchFeeAggregatesRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// FeeAggregateResponse represents the accrued total for one fee type.
type FeeAggregateResponse struct {
	FeeType         string  `json:"fee_type"`
	TotalFeeCents   int64   `json:"total_fee_cents"`
	ChargeCount     int     `json:"charge_count"`
	Matched         bool    `json:"matched"`
	FeeLineID       *string `json:"fee_line_id,omitempty"`
	FeeLineCents    int64   `json:"fee_line_cents,omitempty"`
	DifferenceCents int64   `json:"difference_cents,omitempty"`
}

// MatchFeeAggregatesResponse represents the result of an aggregate run.
type MatchFeeAggregatesResponse struct {
	Aggregates []FeeAggregateResponse `json:"aggregates"`
	Matched    int                    `json:"matched"`
	Unmatched  int                    `json:"unmatched"`
}

// ToCorrectExistingMatchesResponse converts a use case output to its DTO.
func ToCorrectExistingMatchesResponse(output *feecorrection.CorrectExistingMatchesOutput) CorrectExistingMatchesResponse {
	response := CorrectExistingMatchesResponse{
		DryRun:  output.DryRun,
		Applied: output.Applied,
	}
	for _, candidate := range output.Candidates {
		response.Candidates = append(response.Candidates, CorrectionCandidateResponse{
			MatchID:             candidate.MatchID.String(),
			LedgerTransactionID: candidate.LedgerTransactionID.String(),
			BankAmountCents:     candidate.BankAmountCents,
			LedgerAmountCents:   candidate.LedgerAmountCents,
			FeeType:             candidate.FeeType,
			FeeAmountCents:      candidate.FeeAmountCents,
			Confidence:          candidate.Confidence,
			Explanation:         candidate.Explanation,
		})
	}
	for _, skipped := range output.Skipped {
		response.Skipped = append(response.Skipped, SkippedMatchResponse{
			MatchID:    skipped.MatchID.String(),
			Confidence: skipped.Confidence,
			Reason:     skipped.Reason,
		})
	}
	return response
}

// ToMatchFeeAggregatesResponse converts a use case output to its DTO.
func ToMatchFeeAggregatesResponse(output *feecorrection.MatchMonthlyFeeAggregatesOutput) MatchFeeAggregatesResponse {
	response := MatchFeeAggregatesResponse{
		Matched:   output.Matched,
		Unmatched: output.Unmatched,
	}
	for _, aggregate := range output.Aggregates {
		aggregateResponse := FeeAggregateResponse{
			FeeType:         aggregate.FeeType,
			TotalFeeCents:   aggregate.TotalFeeCents,
			ChargeCount:     aggregate.ChargeCount,
			Matched:         aggregate.Matched,
			FeeLineCents:    aggregate.FeeLineCents,
			DifferenceCents: aggregate.DifferenceCents,
		}
		if aggregate.FeeLineID != nil {
			id := aggregate.FeeLineID.String()
			aggregateResponse.FeeLineID = &id
		}
		response.Aggregates = append(response.Aggregates, aggregateResponse)
	}
	return response
}
