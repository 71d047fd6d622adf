// Package reconciliation contains bank statement reconciliation use cases.
package reconciliation

import (
	"context"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// GetUnmatchedSummaryInput represents the input for summarizing unmatched rows.
type GetUnmatchedSummaryInput struct {
	TenantID         uuid.UUID
	ReconciliationID uuid.UUID
}

// GetUnmatchedSummaryOutput represents the unresolved remainder of a
// reconciliation: counts per status, the rows themselves, and the balance gap.
type GetUnmatchedSummaryOutput struct {
	Summary          entity.MatchSummary
	Unresolved       []entity.Match
	DiscrepancyCents int64
	Status           valueobject.ReconciliationStatus
}

// GetUnmatchedSummaryUseCase handles summarizing what still blocks a reconciliation.
type GetUnmatchedSummaryUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
	matchRepo          adapter.MatchRepository
}

// NewGetUnmatchedSummaryUseCase creates a new GetUnmatchedSummaryUseCase instance.
func NewGetUnmatchedSummaryUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	matchRepo adapter.MatchRepository,
) *GetUnmatchedSummaryUseCase {
	return &GetUnmatchedSummaryUseCase{
		reconciliationRepo: reconciliationRepo,
		matchRepo:          matchRepo,
	}
}

// Execute summarizes the unresolved matches of a reconciliation.
func (uc *GetUnmatchedSummaryUseCase) Execute(
	ctx context.Context,
	input GetUnmatchedSummaryInput,
) (*GetUnmatchedSummaryOutput, error) {
	rec, err := uc.reconciliationRepo.GetByID(ctx, input.TenantID, input.ReconciliationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationNotFound,
			"reconciliation not found",
			domainerror.ErrReconciliationNotFound,
		).WithDetail("reconciliation_id", input.ReconciliationID)
	}

	matches, err := uc.matchRepo.ListByReconciliation(ctx, input.TenantID, input.ReconciliationID)
	if err != nil {
		return nil, err
	}

	var summary entity.MatchSummary
	var unresolved []entity.Match
	for _, match := range matches {
		summary.Add(match.Status)
		if !match.Status.IsResolved() {
			unresolved = append(unresolved, match)
		}
	}

	return &GetUnmatchedSummaryOutput{
		Summary:          summary,
		Unresolved:       unresolved,
		DiscrepancyCents: rec.DiscrepancyCents,
		Status:           rec.Status,
	}, nil
}
