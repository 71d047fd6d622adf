// Package manualmatch contains the manual override use cases: forcing a
// match, unmatching, and single-step undo.
package manualmatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/application/usecase/reconciliation"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// UnmatchInput represents the input for removing a match's ledger link.
type UnmatchInput struct {
	TenantID uuid.UUID
	MatchID  uuid.UUID
	Actor    uuid.UUID
	Reason   string
}

// UnmatchOutput represents the result of an unmatch.
type UnmatchOutput struct {
	Match                *entity.Match
	ReconciliationStatus valueobject.ReconciliationStatus
}

// UnmatchUseCase removes the ledger link from a match and resets the ledger
// transaction's reconciled flag.
type UnmatchUseCase struct {
	matchRepo          adapter.MatchRepository
	reconciliationRepo adapter.ReconciliationRepository
	statusService      *reconciliation.StatusService
	now                func() time.Time
}

// NewUnmatchUseCase creates a new UnmatchUseCase instance.
func NewUnmatchUseCase(
	matchRepo adapter.MatchRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	statusService *reconciliation.StatusService,
) *UnmatchUseCase {
	return &UnmatchUseCase{
		matchRepo:          matchRepo,
		reconciliationRepo: reconciliationRepo,
		statusService:      statusService,
		now:                time.Now,
	}
}

// Execute unmatches the given match.
func (uc *UnmatchUseCase) Execute(ctx context.Context, input UnmatchInput) (*UnmatchOutput, error) {
	match, rec, err := loadMatchForMutation(ctx, uc.matchRepo, uc.reconciliationRepo, input.TenantID, input.MatchID)
	if err != nil {
		return nil, err
	}

	if match.LedgerTransactionID == nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeNotCurrentlyMatched,
			"match is not currently matched",
			domainerror.ErrNotCurrentlyMatched,
		).WithDetail("match_id", match.ID)
	}

	previousLink := *match.LedgerTransactionID

	// The row keeps whichever side still has data: a bank snapshot makes it
	// IN_BANK_ONLY and drops the ledger snapshot; a ledger-only row keeps its
	// snapshot and reverts to IN_XERO_ONLY.
	if match.HasBankSide() {
		match.LedgerTransactionID = nil
		match.LedgerDate = nil
		match.LedgerDescription = ""
		match.LedgerAmountCents = 0
		match.LedgerIsCredit = false
		match.Status = valueobject.MatchStatusInBankOnly
	} else {
		match.Status = valueobject.MatchStatusInXeroOnly
	}
	match.Confidence = nil
	match.Reason = input.Reason
	match.IsFeeAdjusted = false
	match.FeeType = ""
	match.FeeAmountCents = 0
	match.UpdatedAt = uc.now().UTC()

	params := adapter.UnmatchParams{
		Match:                       match,
		PreviousLedgerTransactionID: previousLink,
		History: entity.MatchHistoryEntry{
			ID:                          uuid.New(),
			MatchID:                     match.ID,
			PreviousLedgerTransactionID: &previousLink,
			NewLedgerTransactionID:      nil,
			Action:                      valueobject.HistoryActionUnmatch,
			Actor:                       input.Actor,
			Reason:                      input.Reason,
			CreatedAt:                   uc.now().UTC(),
		},
	}

	if err := uc.matchRepo.ApplyUnmatch(ctx, params); err != nil {
		return nil, err
	}

	status, err := uc.statusService.Recompute(ctx, input.TenantID, rec.ID)
	if err != nil {
		return nil, err
	}

	return &UnmatchOutput{
		Match:                match,
		ReconciliationStatus: status,
	}, nil
}
