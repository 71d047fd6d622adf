package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

func TestLedgerTransactionRepository_ListForPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerTransactionRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	inside := seedLedgerTxn(t, db, tenantID, "school fees", 50000, true)
	outside := &entity.LedgerTransaction{
		ID:            uuid.New(),
		TenantID:      tenantID,
		BankAccountID: "acc-001",
		Date:          time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Description:   "april fees",
		AmountCents:   50000,
		IsCredit:      true,
	}
	require.NoError(t, db.Create(model.LedgerTransactionFromEntity(outside)).Error)

	got, err := repo.ListForPeriod(ctx, tenantID, "acc-001", from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

func TestLedgerTransactionRepository_FindFeeLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerTransactionRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	feeLine := seedLedgerTxn(t, db, tenantID, "Monthly Fee - Merchant Services", 950, false)
	seedLedgerTxn(t, db, tenantID, "supplier payment", 950, false)
	seedLedgerTxn(t, db, tenantID, "bank charge refund", 950, true) // credit, excluded

	reconciled := seedLedgerTxn(t, db, tenantID, "service fee march", 950, false)
	require.NoError(t, db.Model(&model.LedgerTransactionModel{}).
		Where("id = ?", reconciled.ID).Update("reconciled", true).Error)

	got, err := repo.FindFeeLines(ctx, tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, feeLine.ID, got[0].ID)
}
