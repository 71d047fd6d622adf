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

// ManualMatchTolerancePercent is the fixed sanity bound on a forced match:
// manual overrides are not exempt from basic amount checking.
const ManualMatchTolerancePercent = 0.10

// ManualMatchInput represents the input for forcing a match.
type ManualMatchInput struct {
	TenantID            uuid.UUID
	MatchID             uuid.UUID
	LedgerTransactionID uuid.UUID
	Actor               uuid.UUID
	Reason              string
}

// ManualMatchOutput represents the result of a forced match.
type ManualMatchOutput struct {
	Match                *entity.Match
	ReconciliationStatus valueobject.ReconciliationStatus
}

// ManualMatchUseCase lets a human force a match to a specific ledger transaction.
type ManualMatchUseCase struct {
	matchRepo          adapter.MatchRepository
	ledgerRepo         adapter.LedgerTransactionRepository
	reconciliationRepo adapter.ReconciliationRepository
	statusService      *reconciliation.StatusService
	now                func() time.Time
}

// NewManualMatchUseCase creates a new ManualMatchUseCase instance.
func NewManualMatchUseCase(
	matchRepo adapter.MatchRepository,
	ledgerRepo adapter.LedgerTransactionRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	statusService *reconciliation.StatusService,
) *ManualMatchUseCase {
	return &ManualMatchUseCase{
		matchRepo:          matchRepo,
		ledgerRepo:         ledgerRepo,
		reconciliationRepo: reconciliationRepo,
		statusService:      statusService,
		now:                time.Now,
	}
}

// Execute forces the match onto the given ledger transaction.
func (uc *ManualMatchUseCase) Execute(ctx context.Context, input ManualMatchInput) (*ManualMatchOutput, error) {
	match, rec, err := loadMatchForMutation(ctx, uc.matchRepo, uc.reconciliationRepo, input.TenantID, input.MatchID)
	if err != nil {
		return nil, err
	}

	ledgerTxn, err := uc.ledgerRepo.GetByID(ctx, input.TenantID, input.LedgerTransactionID)
	if err != nil {
		return nil, err
	}
	if ledgerTxn == nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeLedgerTxnNotFound,
			"ledger transaction not found",
			domainerror.ErrLedgerTransactionNotFound,
		).WithDetail("ledger_transaction_id", input.LedgerTransactionID)
	}

	inUse, err := uc.matchRepo.IsLedgerTransactionMatched(ctx, rec.ID, ledgerTxn.ID, match.ID)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeLedgerTxnAlreadyUsed,
			"ledger transaction is already matched in this reconciliation",
			domainerror.ErrLedgerTransactionInUse,
		).WithDetail("ledger_transaction_id", ledgerTxn.ID)
	}

	// The sanity check only applies when the row has a bank side; a forced
	// pairing of a ledger-only row has nothing to compare against.
	if match.HasBankSide() {
		if err := checkAmountCompatible(match.BankAmountCents, ledgerTxn.AmountCents); err != nil {
			return nil, err
		}
	}

	previousLink := match.LedgerTransactionID

	confidence := 1.0
	ledgerID := ledgerTxn.ID
	ledgerDate := ledgerTxn.Date
	match.LedgerTransactionID = &ledgerID
	match.LedgerDate = &ledgerDate
	match.LedgerDescription = ledgerTxn.Description
	match.LedgerAmountCents = ledgerTxn.AmountCents
	match.LedgerIsCredit = ledgerTxn.IsCredit
	match.Status = valueobject.MatchStatusMatched
	match.Confidence = &confidence
	match.Reason = ""
	match.UpdatedAt = uc.now().UTC()

	params := adapter.ManualMatchParams{
		Match:                       match,
		LedgerTransactionID:         ledgerTxn.ID,
		PreviousLedgerTransactionID: previousLink,
		History: entity.MatchHistoryEntry{
			ID:                          uuid.New(),
			MatchID:                     match.ID,
			PreviousLedgerTransactionID: previousLink,
			NewLedgerTransactionID:      &ledgerID,
			Action:                      valueobject.HistoryActionMatch,
			Actor:                       input.Actor,
			Reason:                      input.Reason,
			CreatedAt:                   uc.now().UTC(),
		},
	}

	if err := uc.matchRepo.ApplyManualMatch(ctx, params); err != nil {
		return nil, err
	}

	status, err := uc.statusService.Recompute(ctx, input.TenantID, rec.ID)
	if err != nil {
		return nil, err
	}

	return &ManualMatchOutput{
		Match:                match,
		ReconciliationStatus: status,
	}, nil
}

// checkAmountCompatible rejects forced matches whose amounts differ by more
// than the fixed percentage of the larger amount.
func checkAmountCompatible(bankCents, ledgerCents int64) error {
	diff := bankCents - ledgerCents
	if diff < 0 {
		diff = -diff
	}

	larger := bankCents
	if larger < 0 {
		larger = -larger
	}
	if l := ledgerCents; l < 0 && -l > larger {
		larger = -l
	} else if l > larger {
		larger = l
	}

	if larger == 0 {
		return nil
	}

	if float64(diff)/float64(larger) > ManualMatchTolerancePercent {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeAmountIncompatible,
			"amounts differ beyond the manual match tolerance",
			domainerror.ErrAmountIncompatible,
		).WithDetail("bank_amount_cents", bankCents).
			WithDetail("ledger_amount_cents", ledgerCents).
			WithDetail("tolerance_percent", ManualMatchTolerancePercent)
	}
	return nil
}

// loadMatchForMutation fetches the match and its reconciliation, rejecting
// mutations on finalized periods.
func loadMatchForMutation(
	ctx context.Context,
	matchRepo adapter.MatchRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	tenantID, matchID uuid.UUID,
) (*entity.Match, *entity.Reconciliation, error) {
	match, err := matchRepo.GetByID(ctx, tenantID, matchID)
	if err != nil {
		return nil, nil, err
	}
	if match == nil {
		return nil, nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeMatchNotFound,
			"match not found",
			domainerror.ErrMatchNotFound,
		).WithDetail("match_id", matchID)
	}

	rec, err := reconciliationRepo.GetByID(ctx, tenantID, match.ReconciliationID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationNotFound,
			"reconciliation not found",
			domainerror.ErrReconciliationNotFound,
		).WithDetail("reconciliation_id", match.ReconciliationID)
	}
	if rec.IsFinalized() {
		return nil, nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationFinal,
			"reconciliation is finalized and its matches cannot be edited",
			domainerror.ErrReconciliationFinalized,
		).WithDetail("reconciliation_id", rec.ID)
	}

	return match, rec, nil
}
