package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.ReconciliationModel{},
		&model.MatchModel{},
		&model.LedgerTransactionModel{},
		&model.AccruedBankChargeModel{},
		&model.DuplicateResolutionModel{},
		&model.MatchHistoryModel{},
		&model.AuditLogModel{},
	))

	return db
}

func seedReconciliation(t *testing.T, db *gorm.DB, tenantID uuid.UUID) *entity.Reconciliation {
	t.Helper()

	rec := &entity.Reconciliation{
		ID:                     uuid.New(),
		TenantID:               tenantID,
		BankAccountID:          "acc-001",
		PeriodStart:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:              time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		OpeningBalanceCents:    10000,
		ClosingBalanceCents:    13000,
		CalculatedBalanceCents: 13000,
		Status:                 valueobject.ReconciliationStatusInProgress,
		CreatedAt:              time.Now().UTC(),
		UpdatedAt:              time.Now().UTC(),
	}
	require.NoError(t, db.Create(model.ReconciliationFromEntity(rec)).Error)
	return rec
}

func seedLedgerTxn(t *testing.T, db *gorm.DB, tenantID uuid.UUID, desc string, cents int64, isCredit bool) *entity.LedgerTransaction {
	t.Helper()

	txn := &entity.LedgerTransaction{
		ID:            uuid.New(),
		TenantID:      tenantID,
		BankAccountID: "acc-001",
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:   desc,
		AmountCents:   cents,
		IsCredit:      isCredit,
	}
	require.NoError(t, db.Create(model.LedgerTransactionFromEntity(txn)).Error)
	return txn
}

func seedMatch(t *testing.T, db *gorm.DB, rec *entity.Reconciliation, ledgerID *uuid.UUID, status valueobject.MatchStatus) *entity.Match {
	t.Helper()

	match := &entity.Match{
		ID:               uuid.New(),
		TenantID:         rec.TenantID,
		ReconciliationID: rec.ID,
		BankDate:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		BankDescription:  "school fees j smith",
		BankAmountCents:  50000,
		BankIsCredit:     true,
		Status:           status,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	if ledgerID != nil {
		ledgerDate := match.BankDate
		match.LedgerTransactionID = ledgerID
		match.LedgerDate = &ledgerDate
		match.LedgerDescription = match.BankDescription
		match.LedgerAmountCents = match.BankAmountCents
		match.LedgerIsCredit = match.BankIsCredit
	}
	require.NoError(t, db.Create(model.MatchFromEntity(match)).Error)
	return match
}
