package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

func TestReconciliationRepository_FindByPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewReconciliationRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	rec := seedReconciliation(t, db, tenantID)

	t.Run("finds by tenant, account, and period start", func(t *testing.T) {
		got, err := repo.FindByPeriod(ctx, tenantID, rec.BankAccountID, rec.PeriodStart)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.ID, got.ID)
	})

	t.Run("returns nil for a different period", func(t *testing.T) {
		got, err := repo.FindByPeriod(ctx, tenantID, rec.BankAccountID,
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns nil for another tenant", func(t *testing.T) {
		got, err := repo.FindByPeriod(ctx, uuid.New(), rec.BankAccountID, rec.PeriodStart)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestReconciliationRepository_ReplaceMatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewReconciliationRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	rec := seedReconciliation(t, db, tenantID)
	seedMatch(t, db, rec, nil, valueobject.MatchStatusInBankOnly)
	seedMatch(t, db, rec, nil, valueobject.MatchStatusInBankOnly)

	replacement := []entity.Match{
		{
			ID:               uuid.New(),
			TenantID:         tenantID,
			ReconciliationID: rec.ID,
			BankDate:         time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			BankDescription:  "replacement entry",
			BankAmountCents:  7500,
			BankIsCredit:     true,
			Status:           valueobject.MatchStatusInBankOnly,
		},
	}

	rec.Status = valueobject.ReconciliationStatusDiscrepancy
	require.NoError(t, repo.ReplaceMatches(ctx, rec, replacement))

	var count int64
	require.NoError(t, db.Model(&model.MatchModel{}).
		Where("reconciliation_id = ?", rec.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.GetByID(ctx, tenantID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ReconciliationStatusDiscrepancy, stored.Status)
}

func TestReconciliationRepository_SetStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewReconciliationRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	rec := seedReconciliation(t, db, tenantID)
	matchedTxn := seedLedgerTxn(t, db, tenantID, "school fees", 50000, true)
	mismatchTxn := seedLedgerTxn(t, db, tenantID, "supplier payment", 20000, false)
	matchedID := matchedTxn.ID
	mismatchID := mismatchTxn.ID
	seedMatch(t, db, rec, &matchedID, valueobject.MatchStatusMatched)
	seedMatch(t, db, rec, &mismatchID, valueobject.MatchStatusAmountMismatch)

	require.NoError(t, repo.SetStatus(ctx, rec.ID, valueobject.ReconciliationStatusReconciled, true))

	stored, err := repo.GetByID(ctx, tenantID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.ReconciliationStatusReconciled, stored.Status)

	// Only MATCHED/FEE_ADJUSTED_MATCH links get flagged reconciled.
	var matchedModel, mismatchModel model.LedgerTransactionModel
	require.NoError(t, db.First(&matchedModel, "id = ?", matchedTxn.ID).Error)
	require.NoError(t, db.First(&mismatchModel, "id = ?", mismatchTxn.ID).Error)
	assert.True(t, matchedModel.Reconciled)
	assert.False(t, mismatchModel.Reconciled)
}

func TestReconciliationRepository_Finalize(t *testing.T) {
	db := newTestDB(t)
	repo := NewReconciliationRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	rec := seedReconciliation(t, db, tenantID)
	actor := uuid.New()
	at := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Finalize(ctx, rec.ID, actor, at))

	stored, err := repo.GetByID(ctx, tenantID, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ReconciledBy)
	require.NotNil(t, stored.ReconciledAt)
	assert.Equal(t, actor, *stored.ReconciledBy)
	assert.True(t, stored.IsFinalized())
}
