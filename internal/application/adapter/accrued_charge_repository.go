// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// AccruedChargeRepository defines persistence operations for accrued bank
// charges created by the fee inflation corrector.
type AccruedChargeRepository interface {
	// ListAccrued returns the tenant's ACCRUED charges with a charge date in
	// the inclusive range, ordered by charge date.
	ListAccrued(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.AccruedBankCharge, error)

	// MarkMatched atomically flips the given charges to MATCHED against the
	// standalone fee line and records the audit entry.
	MarkMatched(
		ctx context.Context,
		tenantID uuid.UUID,
		chargeIDs []uuid.UUID,
		feeLineID uuid.UUID,
		audit entity.AuditLogEntry,
	) error
}
