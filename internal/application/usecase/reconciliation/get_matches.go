// Package reconciliation contains bank statement reconciliation use cases.
package reconciliation

import (
	"context"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
)

// GetMatchesInput represents the input for listing a reconciliation's matches.
type GetMatchesInput struct {
	TenantID         uuid.UUID
	ReconciliationID uuid.UUID
}

// GetMatchesOutput represents a reconciliation's matches and balances.
type GetMatchesOutput struct {
	Reconciliation *entity.Reconciliation
	Matches        []entity.Match
}

// GetMatchesUseCase handles retrieving the matches of a reconciliation.
type GetMatchesUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
	matchRepo          adapter.MatchRepository
}

// NewGetMatchesUseCase creates a new GetMatchesUseCase instance.
func NewGetMatchesUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	matchRepo adapter.MatchRepository,
) *GetMatchesUseCase {
	return &GetMatchesUseCase{
		reconciliationRepo: reconciliationRepo,
		matchRepo:          matchRepo,
	}
}

// Execute lists the matches of a reconciliation.
func (uc *GetMatchesUseCase) Execute(ctx context.Context, input GetMatchesInput) (*GetMatchesOutput, error) {
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

	return &GetMatchesOutput{
		Reconciliation: rec,
		Matches:        matches,
	}, nil
}
