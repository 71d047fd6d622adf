// Package reconciliation contains bank statement reconciliation use cases.
package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// CompleteInput represents the input for explicitly finalizing a reconciliation.
type CompleteInput struct {
	TenantID         uuid.UUID
	ReconciliationID uuid.UUID
	Actor            uuid.UUID
}

// CompleteOutput represents the result of finalizing a reconciliation.
type CompleteOutput struct {
	ReconciliationID uuid.UUID
	ReconciledBy     uuid.UUID
	ReconciledAt     time.Time
}

// CompleteUseCase finalizes a reconciliation. The derived status may flip
// between RECONCILED and DISCREPANCY as matches change; only this explicit
// action makes the period immutable.
type CompleteUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
	auditSink          adapter.AuditSink
	now                func() time.Time
}

// NewCompleteUseCase creates a new CompleteUseCase instance.
func NewCompleteUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	auditSink adapter.AuditSink,
) *CompleteUseCase {
	return &CompleteUseCase{
		reconciliationRepo: reconciliationRepo,
		auditSink:          auditSink,
		now:                time.Now,
	}
}

// Execute finalizes the reconciliation when its derived status is RECONCILED.
func (uc *CompleteUseCase) Execute(ctx context.Context, input CompleteInput) (*CompleteOutput, error) {
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
	if rec.IsFinalized() {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationFinal,
			"reconciliation is already finalized",
			domainerror.ErrReconciliationFinalized,
		).WithDetail("reconciliation_id", rec.ID)
	}
	if rec.Status != valueobject.ReconciliationStatusReconciled {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeNotBalanced,
			"reconciliation cannot be completed while unresolved matches or a balance discrepancy remain",
			domainerror.ErrReconciliationNotBalanced,
		).WithDetail("status", string(rec.Status)).
			WithDetail("discrepancy_cents", rec.DiscrepancyCents)
	}

	at := uc.now().UTC()
	if err := uc.reconciliationRepo.Finalize(ctx, rec.ID, input.Actor, at); err != nil {
		return nil, err
	}

	if err := uc.auditSink.Record(ctx, entity.AuditLogEntry{
		ID:         uuid.New(),
		TenantID:   input.TenantID,
		Actor:      input.Actor,
		Action:     "reconciliation.complete",
		EntityType: "reconciliation",
		EntityID:   rec.ID,
		CreatedAt:  at,
	}); err != nil {
		return nil, err
	}

	return &CompleteOutput{
		ReconciliationID: rec.ID,
		ReconciledBy:     input.Actor,
		ReconciledAt:     at,
	}, nil
}
