// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// accruedChargeRepository implements the adapter.AccruedChargeRepository interface.
type accruedChargeRepository struct {
	db *gorm.DB
}

// NewAccruedChargeRepository creates a new accrued charge repository instance.
func NewAccruedChargeRepository(db *gorm.DB) adapter.AccruedChargeRepository {
	return &accruedChargeRepository{
		db: db,
	}
}

// ListAccrued returns the tenant's ACCRUED charges with a charge date in the
// inclusive range.
func (r *accruedChargeRepository) ListAccrued(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.AccruedBankCharge, error) {
	var chargeModels []model.AccruedBankChargeModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND charge_date >= ? AND charge_date <= ?",
			tenantID, string(valueobject.AccruedChargeStatusAccrued), from, to).
		Order("charge_date ASC, id ASC").
		Find(&chargeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	charges := make([]entity.AccruedBankCharge, len(chargeModels))
	for i := range chargeModels {
		charges[i] = *chargeModels[i].ToEntity()
	}
	return charges, nil
}

// MarkMatched flips the charges to MATCHED against the standalone fee line
// and records the audit entry, in one transaction.
func (r *accruedChargeRepository) MarkMatched(
	ctx context.Context,
	tenantID uuid.UUID,
	chargeIDs []uuid.UUID,
	feeLineID uuid.UUID,
	audit entity.AuditLogEntry,
) error {
	return runInTxWithRetry(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&model.AccruedBankChargeModel{}).
			Where("tenant_id = ? AND id IN ?", tenantID, chargeIDs).
			Updates(map[string]interface{}{
				"status":                        string(valueobject.AccruedChargeStatusMatched),
				"matched_ledger_transaction_id": feeLineID,
			}).Error; err != nil {
			return err
		}
		return tx.Create(model.AuditLogFromEntity(&audit)).Error
	})
}
