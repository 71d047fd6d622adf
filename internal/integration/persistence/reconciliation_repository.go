// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// reconciliationRepository implements the adapter.ReconciliationRepository interface.
type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository instance.
func NewReconciliationRepository(db *gorm.DB) adapter.ReconciliationRepository {
	return &reconciliationRepository{
		db: db,
	}
}

// GetByID retrieves a reconciliation scoped to a tenant.
func (r *reconciliationRepository) GetByID(ctx context.Context, tenantID, reconciliationID uuid.UUID) (*entity.Reconciliation, error) {
	var reconciliationModel model.ReconciliationModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", reconciliationID, tenantID).
		First(&reconciliationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reconciliationModel.ToEntity(), nil
}

// FindByPeriod retrieves the active reconciliation for (tenant, account, period start).
func (r *reconciliationRepository) FindByPeriod(
	ctx context.Context,
	tenantID uuid.UUID,
	bankAccountID string,
	periodStart time.Time,
) (*entity.Reconciliation, error) {
	var reconciliationModel model.ReconciliationModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND bank_account_id = ? AND period_start = ?",
			tenantID, bankAccountID, periodStart).
		First(&reconciliationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reconciliationModel.ToEntity(), nil
}

// ReplaceMatches persists the reconciliation row and swaps its whole match
// set in one transaction.
func (r *reconciliationRepository) ReplaceMatches(ctx context.Context, rec *entity.Reconciliation, matches []entity.Match) error {
	return runInTxWithRetry(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Save(model.ReconciliationFromEntity(rec)).Error; err != nil {
			return err
		}

		if err := tx.Where("reconciliation_id = ?", rec.ID).
			Delete(&model.MatchModel{}).Error; err != nil {
			return err
		}

		if len(matches) == 0 {
			return nil
		}
		matchModels := make([]*model.MatchModel, len(matches))
		for i := range matches {
			matchModels[i] = model.MatchFromEntity(&matches[i])
		}
		return tx.CreateInBatches(matchModels, 200).Error
	})
}

// SetStatus writes the derived status, optionally flagging the matched ledger
// transactions reconciled in the same transaction.
func (r *reconciliationRepository) SetStatus(
	ctx context.Context,
	reconciliationID uuid.UUID,
	status valueobject.ReconciliationStatus,
	markLedgerReconciled bool,
) error {
	return runInTxWithRetry(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&model.ReconciliationModel{}).
			Where("id = ?", reconciliationID).
			Update("status", string(status)).Error; err != nil {
			return err
		}

		if !markLedgerReconciled {
			return nil
		}

		matchedLedgerIDs := tx.Model(&model.MatchModel{}).
			Select("ledger_transaction_id").
			Where("reconciliation_id = ? AND ledger_transaction_id IS NOT NULL AND status IN ?",
				reconciliationID,
				[]string{
					string(valueobject.MatchStatusMatched),
					string(valueobject.MatchStatusFeeAdjusted),
				})
		return tx.Model(&model.LedgerTransactionModel{}).
			Where("id IN (?)", matchedLedgerIDs).
			Updates(map[string]interface{}{
				"reconciled":    true,
				"reconciled_at": time.Now(),
			}).Error
	})
}

// Finalize stamps the reconciler and completion time.
func (r *reconciliationRepository) Finalize(ctx context.Context, reconciliationID, actor uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.ReconciliationModel{}).
		Where("id = ?", reconciliationID).
		Updates(map[string]interface{}{
			"reconciled_by": actor,
			"reconciled_at": at,
		}).Error
}
