// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// LedgerTransactionModel represents the ledger_transactions table: the
// locally synced copy of the external accounting ledger.
type LedgerTransactionModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_ledger_period,priority:1"`
	BankAccountID string     `gorm:"type:varchar(64);not null;index:idx_ledger_period,priority:2"`
	Date          time.Time  `gorm:"type:date;not null;index:idx_ledger_period,priority:3"`
	Description   string     `gorm:"type:varchar(255);not null"`
	AmountCents   int64      `gorm:"type:bigint;not null"`
	IsCredit      bool       `gorm:"not null"`
	Reconciled    bool       `gorm:"not null;default:false;index"`
	ReconciledAt  *time.Time `gorm:"type:timestamp"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the LedgerTransactionModel.
func (LedgerTransactionModel) TableName() string {
	return "ledger_transactions"
}

// ToEntity converts a LedgerTransactionModel to a domain LedgerTransaction entity.
func (m *LedgerTransactionModel) ToEntity() *entity.LedgerTransaction {
	return &entity.LedgerTransaction{
		ID:            m.ID,
		TenantID:      m.TenantID,
		BankAccountID: m.BankAccountID,
		Date:          m.Date,
		Description:   m.Description,
		AmountCents:   m.AmountCents,
		IsCredit:      m.IsCredit,
		Reconciled:    m.Reconciled,
		ReconciledAt:  m.ReconciledAt,
	}
}

// LedgerTransactionFromEntity converts a domain LedgerTransaction entity to a LedgerTransactionModel.
func LedgerTransactionFromEntity(txn *entity.LedgerTransaction) *LedgerTransactionModel {
	return &LedgerTransactionModel{
		ID:            txn.ID,
		TenantID:      txn.TenantID,
		BankAccountID: txn.BankAccountID,
		Date:          txn.Date,
		Description:   txn.Description,
		AmountCents:   txn.AmountCents,
		IsCredit:      txn.IsCredit,
		Reconciled:    txn.Reconciled,
		ReconciledAt:  txn.ReconciledAt,
	}
}
