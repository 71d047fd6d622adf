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
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// Description markers of the standalone fee lines banks post, matched
// case-insensitively.
var feeLineMarkers = []string{
	"%bank charge%",
	"%service fee%",
	"%account fee%",
	"%transaction fee%",
	"%monthly fee%",
}

// ledgerTransactionRepository implements the adapter.LedgerTransactionRepository interface.
type ledgerTransactionRepository struct {
	db *gorm.DB
}

// NewLedgerTransactionRepository creates a new ledger transaction repository instance.
func NewLedgerTransactionRepository(db *gorm.DB) adapter.LedgerTransactionRepository {
	return &ledgerTransactionRepository{
		db: db,
	}
}

// GetByID retrieves a ledger transaction scoped to a tenant.
func (r *ledgerTransactionRepository) GetByID(ctx context.Context, tenantID, ledgerTransactionID uuid.UUID) (*entity.LedgerTransaction, error) {
	var ledgerModel model.LedgerTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", ledgerTransactionID, tenantID).
		First(&ledgerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return ledgerModel.ToEntity(), nil
}

// ListForPeriod returns the tenant's ledger transactions for a bank account
// and date range. Ordered by primary key: the matching engine's tie-break
// order, which must stay stable across runs.
func (r *ledgerTransactionRepository) ListForPeriod(
	ctx context.Context,
	tenantID uuid.UUID,
	bankAccountID string,
	from, to time.Time,
) ([]entity.LedgerTransaction, error) {
	var ledgerModels []model.LedgerTransactionModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND bank_account_id = ? AND date >= ? AND date <= ?",
			tenantID, bankAccountID, from, to).
		Order("id ASC").
		Find(&ledgerModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toLedgerEntities(ledgerModels), nil
}

// FindFeeLines returns unreconciled debit transactions in the range whose
// description marks them as standalone bank fee lines.
func (r *ledgerTransactionRepository) FindFeeLines(
	ctx context.Context,
	tenantID uuid.UUID,
	from, to time.Time,
) ([]entity.LedgerTransaction, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ? AND is_credit = ? AND reconciled = ?",
			tenantID, from, to, false, false)

	marker := r.db.Where("LOWER(description) LIKE ?", feeLineMarkers[0])
	for _, pattern := range feeLineMarkers[1:] {
		marker = marker.Or("LOWER(description) LIKE ?", pattern)
	}
	query = query.Where(marker)

	var ledgerModels []model.LedgerTransactionModel
	result := query.Order("date ASC, id ASC").Find(&ledgerModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toLedgerEntities(ledgerModels), nil
}

func toLedgerEntities(ledgerModels []model.LedgerTransactionModel) []entity.LedgerTransaction {
	transactions := make([]entity.LedgerTransaction, len(ledgerModels))
	for i := range ledgerModels {
		transactions[i] = *ledgerModels[i].ToEntity()
	}
	return transactions
}
