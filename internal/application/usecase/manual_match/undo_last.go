// Package manualmatch contains the manual override use cases: forcing a
// match, unmatching, and single-step undo.
package manualmatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// UndoLastInput represents the input for undoing the latest manual override.
type UndoLastInput struct {
	TenantID uuid.UUID
	MatchID  uuid.UUID
	Actor    uuid.UUID
}

// UndoLastOutput represents the result of an undo.
type UndoLastOutput struct {
	Match                *entity.Match
	UndoneAction         valueobject.HistoryAction
	ReconciliationStatus valueobject.ReconciliationStatus
}

// UndoLastUseCase reverses the most recent manual override of a match by
// delegating to the match/unmatch primitives, so it inherits their validation
// and side effects and itself appends to the history.
type UndoLastUseCase struct {
	historyRepo adapter.MatchHistoryRepository
	manualMatch *ManualMatchUseCase
	unmatch     *UnmatchUseCase
}

// NewUndoLastUseCase creates a new UndoLastUseCase instance.
func NewUndoLastUseCase(
	historyRepo adapter.MatchHistoryRepository,
	manualMatch *ManualMatchUseCase,
	unmatch *UnmatchUseCase,
) *UndoLastUseCase {
	return &UndoLastUseCase{
		historyRepo: historyRepo,
		manualMatch: manualMatch,
		unmatch:     unmatch,
	}
}

// Execute undoes the most recent manual override of the match.
func (uc *UndoLastUseCase) Execute(ctx context.Context, input UndoLastInput) (*UndoLastOutput, error) {
	last, err := uc.historyRepo.Latest(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeNoHistoryToUndo,
			"match has no manual history to undo",
			domainerror.ErrNoHistoryToUndo,
		).WithDetail("match_id", input.MatchID)
	}

	const undoReason = "undo of last manual action"

	switch last.Action {
	case valueobject.HistoryActionMatch:
		if last.PreviousLedgerTransactionID != nil {
			out, err := uc.manualMatch.Execute(ctx, ManualMatchInput{
				TenantID:            input.TenantID,
				MatchID:             input.MatchID,
				LedgerTransactionID: *last.PreviousLedgerTransactionID,
				Actor:               input.Actor,
				Reason:              undoReason,
			})
			if err != nil {
				return nil, err
			}
			return &UndoLastOutput{
				Match:                out.Match,
				UndoneAction:         last.Action,
				ReconciliationStatus: out.ReconciliationStatus,
			}, nil
		}

		out, err := uc.unmatch.Execute(ctx, UnmatchInput{
			TenantID: input.TenantID,
			MatchID:  input.MatchID,
			Actor:    input.Actor,
			Reason:   undoReason,
		})
		if err != nil {
			return nil, err
		}
		return &UndoLastOutput{
			Match:                out.Match,
			UndoneAction:         last.Action,
			ReconciliationStatus: out.ReconciliationStatus,
		}, nil

	case valueobject.HistoryActionUnmatch:
		if last.PreviousLedgerTransactionID == nil {
			return nil, domainerror.NewReconciliationError(
				domainerror.ErrCodeNoPreviousTxnToUndo,
				"no previous transaction to restore",
				domainerror.ErrNoPreviousTransaction,
			).WithDetail("match_id", input.MatchID)
		}

		out, err := uc.manualMatch.Execute(ctx, ManualMatchInput{
			TenantID:            input.TenantID,
			MatchID:             input.MatchID,
			LedgerTransactionID: *last.PreviousLedgerTransactionID,
			Actor:               input.Actor,
			Reason:              undoReason,
		})
		if err != nil {
			return nil, err
		}
		return &UndoLastOutput{
			Match:                out.Match,
			UndoneAction:         last.Action,
			ReconciliationStatus: out.ReconciliationStatus,
		}, nil

	default:
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeNoHistoryToUndo,
			"unrecognized history action",
			domainerror.ErrNoHistoryToUndo,
		).WithDetail("action", string(last.Action))
	}
}
