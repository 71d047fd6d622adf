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

// DeriveStatus computes the reconciliation status from its matches and its
// balance discrepancy. IN_BANK_ONLY, IN_XERO_ONLY, and AMOUNT_MISMATCH block
// reconciliation; FEE_ADJUSTED_MATCH and DATE_MISMATCH count as resolved.
func DeriveStatus(
	matches []entity.Match,
	discrepancyCents int64,
	balanceToleranceCents int64,
) valueobject.ReconciliationStatus {
	allMatched := true
	for i := range matches {
		if !matches[i].Status.IsResolved() {
			allMatched = false
			break
		}
	}

	balanceOK := discrepancyCents >= -balanceToleranceCents && discrepancyCents <= balanceToleranceCents

	if allMatched && balanceOK {
		return valueobject.ReconciliationStatusReconciled
	}
	return valueobject.ReconciliationStatusDiscrepancy
}

// StatusService recomputes and persists the derived status of a
// reconciliation after any match mutation. The write is skipped when the
// status did not change; the transition into RECONCILED flags every
// MATCHED/FEE_ADJUSTED_MATCH ledger transaction reconciled.
type StatusService struct {
	reconciliationRepo    adapter.ReconciliationRepository
	matchRepo             adapter.MatchRepository
	balanceToleranceCents int64
}

// NewStatusService creates a new StatusService instance.
func NewStatusService(
	reconciliationRepo adapter.ReconciliationRepository,
	matchRepo adapter.MatchRepository,
	balanceToleranceCents int64,
) *StatusService {
	return &StatusService{
		reconciliationRepo:    reconciliationRepo,
		matchRepo:             matchRepo,
		balanceToleranceCents: balanceToleranceCents,
	}
}

// Recompute derives the current status and persists it when changed.
// Returns the (possibly unchanged) status.
func (s *StatusService) Recompute(
	ctx context.Context,
	tenantID, reconciliationID uuid.UUID,
) (valueobject.ReconciliationStatus, error) {
	rec, err := s.reconciliationRepo.GetByID(ctx, tenantID, reconciliationID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationNotFound,
			"reconciliation not found",
			domainerror.ErrReconciliationNotFound,
		).WithDetail("reconciliation_id", reconciliationID)
	}

	matches, err := s.matchRepo.ListByReconciliation(ctx, tenantID, reconciliationID)
	if err != nil {
		return "", err
	}

	next := DeriveStatus(matches, rec.DiscrepancyCents, s.balanceToleranceCents)
	if next == rec.Status {
		return next, nil
	}

	// Entering RECONCILED marks the linked ledger transactions reconciled;
	// leaving it never un-reconciles them (only explicit unmatch does that).
	markLedger := next == valueobject.ReconciliationStatusReconciled
	if err := s.reconciliationRepo.SetStatus(ctx, reconciliationID, next, markLedger); err != nil {
		return "", err
	}

	return next, nil
}
