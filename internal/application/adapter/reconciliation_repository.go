// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// ReconciliationRepository defines persistence operations for reconciliation
// periods and their derived status.
type ReconciliationRepository interface {
	// GetByID retrieves a reconciliation scoped to a tenant.
	// Returns (nil, nil) when absent or cross-tenant.
	GetByID(ctx context.Context, tenantID, reconciliationID uuid.UUID) (*entity.Reconciliation, error)

	// FindByPeriod retrieves the active reconciliation for (tenant, account,
	// period start). Returns (nil, nil) when absent.
	FindByPeriod(
		ctx context.Context,
		tenantID uuid.UUID,
		bankAccountID string,
		periodStart time.Time,
	) (*entity.Reconciliation, error)

	// ReplaceMatches atomically persists the reconciliation row (creating it
	// when new), discards all of its prior matches, and inserts the new set.
	// This is a full replace, not an incremental upsert.
	ReplaceMatches(ctx context.Context, rec *entity.Reconciliation, matches []entity.Match) error

	// SetStatus writes the derived status. When markLedgerReconciled is true
	// (the transition into RECONCILED) every MATCHED or FEE_ADJUSTED_MATCH
	// ledger transaction of the reconciliation is flagged reconciled with a
	// timestamp, in the same transaction.
	SetStatus(
		ctx context.Context,
		reconciliationID uuid.UUID,
		status valueobject.ReconciliationStatus,
		markLedgerReconciled bool,
	) error

	// Finalize stamps the reconciler and completion time, making the
	// reconciliation immutable to further imports and match mutations.
	Finalize(ctx context.Context, reconciliationID, actor uuid.UUID, at time.Time) error
}
