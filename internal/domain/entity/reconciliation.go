// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// Reconciliation is one statement period for one bank account of one tenant.
// Re-importing a statement for the same period updates the row in place;
// only an explicit completion makes it immutable.
type Reconciliation struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	BankAccountID string
	PeriodStart   time.Time
	PeriodEnd     time.Time

	OpeningBalanceCents    int64
	ClosingBalanceCents    int64
	CalculatedBalanceCents int64
	DiscrepancyCents       int64 // closing - calculated

	Status       valueobject.ReconciliationStatus
	ReconciledBy *uuid.UUID
	ReconciledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinalized reports whether the reconciliation was explicitly completed.
// A finalized reconciliation rejects re-imports and match mutations; the
// automatic status recompute alone never finalizes.
func (r *Reconciliation) IsFinalized() bool {
	return r.ReconciledAt != nil
}
