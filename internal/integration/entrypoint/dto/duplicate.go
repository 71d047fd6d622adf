// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/crechebooks/reconciliation/internal/application/usecase/duplicate"
)

// DetectDuplicatesRequest represents the request body for a duplicate scan.
type DetectDuplicatesRequest struct {
	Entries []BankEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// DuplicateCandidateResponse represents one flagged entry.
type DuplicateCandidateResponse struct {
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	AmountCents  int64   `json:"amount_cents"`
	IsCredit     bool    `json:"is_credit"`
	CompositeKey string  `json:"composite_key"`
	Confidence   float64 `json:"confidence"`
	Reason       string  `json:"reason"`
}

// DetectDuplicatesResponse represents the result of a duplicate scan.
type DetectDuplicatesResponse struct {
	Candidates []DuplicateCandidateResponse `json:"candidates"`
	Checked    int                          `json:"checked"`
	Suppressed int                          `json:"suppressed"`
}

// ResolveDuplicateRequest represents the request body for recording a ruling.
type ResolveDuplicateRequest struct {
	CompositeKey string `json:"composite_key" binding:"required,max=128"`
	Decision     string `json:"decision" binding:"required"`
	Notes        string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ResolveDuplicateResponse represents the recorded ruling.
type ResolveDuplicateResponse struct {
	CompositeKey string `json:"composite_key"`
	Decision     string `json:"decision"`
	ResolvedBy   string `json:"resolved_by"`
}

// ToDetectDuplicatesResponse converts a use case output to its DTO.
func ToDetectDuplicatesResponse(output *duplicate.DetectDuplicatesOutput) DetectDuplicatesResponse {
	response := DetectDuplicatesResponse{
		Checked:    output.Checked,
		Suppressed: output.Suppressed,
	}
	for _, candidate := range output.Candidates {
		response.Candidates = append(response.Candidates, DuplicateCandidateResponse{
			Date:         candidate.Entry.Date.Format("2006-01-02"),
			Description:  candidate.Entry.Description,
			AmountCents:  candidate.Entry.AmountCents,
			IsCredit:     candidate.Entry.IsCredit,
			CompositeKey: candidate.CompositeKey,
			Confidence:   candidate.Confidence,
			Reason:       candidate.Reason,
		})
	}
	return response
}
