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

// matchRepository implements the adapter.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository instance.
func NewMatchRepository(db *gorm.DB) adapter.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// GetByID retrieves a match scoped to a tenant.
func (r *matchRepository) GetByID(ctx context.Context, tenantID, matchID uuid.UUID) (*entity.Match, error) {
	var matchModel model.MatchModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", matchID, tenantID).
		First(&matchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return matchModel.ToEntity(), nil
}

// ListByReconciliation returns all matches of a reconciliation, ordered by creation.
func (r *matchRepository) ListByReconciliation(ctx context.Context, tenantID, reconciliationID uuid.UUID) ([]entity.Match, error) {
	var matchModels []model.MatchModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND reconciliation_id = ?", tenantID, reconciliationID).
		Order("created_at ASC, id ASC").
		Find(&matchModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMatchEntities(matchModels), nil
}

// ListByStatus returns the tenant's matches with the given status that still
// reference a ledger transaction.
func (r *matchRepository) ListByStatus(ctx context.Context, tenantID uuid.UUID, status valueobject.MatchStatus) ([]entity.Match, error) {
	var matchModels []model.MatchModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND ledger_transaction_id IS NOT NULL",
			tenantID, string(status)).
		Order("created_at ASC, id ASC").
		Find(&matchModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMatchEntities(matchModels), nil
}

// FindRecentBankEntry returns the most recent match whose bank snapshot has
// the given date, amount, and credit flag.
func (r *matchRepository) FindRecentBankEntry(
	ctx context.Context,
	tenantID uuid.UUID,
	date time.Time,
	amountCents int64,
	isCredit bool,
) (*entity.Match, error) {
	var matchModel model.MatchModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND bank_date = ? AND bank_amount_cents = ? AND bank_is_credit = ?",
			tenantID, date, amountCents, isCredit).
		Order("created_at DESC").
		First(&matchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return matchModel.ToEntity(), nil
}

// IsLedgerTransactionMatched reports whether the ledger transaction is linked
// by another active match of the same reconciliation.
func (r *matchRepository) IsLedgerTransactionMatched(
	ctx context.Context,
	reconciliationID, ledgerTransactionID uuid.UUID,
	excludeMatchID uuid.UUID,
) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.MatchModel{}).
		Where("reconciliation_id = ? AND ledger_transaction_id = ? AND id <> ?",
			reconciliationID, ledgerTransactionID, excludeMatchID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ApplyManualMatch persists a manual match atomically: the match update, the
// reconciled flags of the new and replaced ledger transactions, and the
// history append.
func (r *matchRepository) ApplyManualMatch(ctx context.Context, params adapter.ManualMatchParams) error {
	return runInTxWithRetry(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Save(model.MatchFromEntity(params.Match)).Error; err != nil {
			return err
		}

		if err := setLedgerReconciled(tx, params.LedgerTransactionID, true); err != nil {
			return err
		}
		if params.PreviousLedgerTransactionID != nil &&
			*params.PreviousLedgerTransactionID != params.LedgerTransactionID {
			if err := setLedgerReconciled(tx, *params.PreviousLedgerTransactionID, false); err != nil {
				return err
			}
		}

		return tx.Create(model.MatchHistoryFromEntity(&params.History)).Error
	})
}

// ApplyUnmatch persists an unmatch atomically: the match update, the ledger
// reconciled-flag reset, and the history append.
func (r *matchRepository) ApplyUnmatch(ctx context.Context, params adapter.UnmatchParams) error {
	return runInTxWithRetry(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Save(model.MatchFromEntity(params.Match)).Error; err != nil {
			return err
		}
		if err := setLedgerReconciled(tx, params.PreviousLedgerTransactionID, false); err != nil {
			return err
		}
		return tx.Create(model.MatchHistoryFromEntity(&params.History)).Error
	})
}

// ApplyFeeCorrection persists a fee correction atomically: the ledger amount
// rewrite, the accrued charge insert, the match update, and the audit entry.
func (r *matchRepository) ApplyFeeCorrection(ctx context.Context, params adapter.FeeCorrectionParams) error {
	return runInTxWithRetry(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&model.LedgerTransactionModel{}).
			Where("id = ?", params.LedgerTxnID).
			Update("amount_cents", params.NetAmountCents).Error; err != nil {
			return err
		}
		if err := tx.Create(model.AccruedBankChargeFromEntity(&params.Charge)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.MatchFromEntity(params.Match)).Error; err != nil {
			return err
		}
		return tx.Create(model.AuditLogFromEntity(&params.Audit)).Error
	})
}

func setLedgerReconciled(tx *gorm.DB, ledgerTransactionID uuid.UUID, reconciled bool) error {
	updates := map[string]interface{}{
		"reconciled":    reconciled,
		"reconciled_at": nil,
	}
	if reconciled {
		updates["reconciled_at"] = time.Now()
	}
	return tx.Model(&model.LedgerTransactionModel{}).
		Where("id = ?", ledgerTransactionID).
		Updates(updates).Error
}

func toMatchEntities(matchModels []model.MatchModel) []entity.Match {
	matches := make([]entity.Match, len(matchModels))
	for i := range matchModels {
		matches[i] = *matchModels[i].ToEntity()
	}
	return matches
}
