// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// MatchModel represents the matches table in the database. The partial
// unique index enforces that a ledger transaction is linked by at most one
// active match per reconciliation.
type MatchModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ReconciliationID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_match_ledger_txn,priority:1"`

	BankDate        *time.Time `gorm:"type:date;index"`
	BankDescription string     `gorm:"type:varchar(255)"`
	BankAmountCents int64      `gorm:"type:bigint;not null;default:0"`
	BankIsCredit    bool       `gorm:"not null;default:false"`

	LedgerTransactionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_match_ledger_txn,where:ledger_transaction_id IS NOT NULL,priority:2"`
	LedgerDate          *time.Time `gorm:"type:date"`
	LedgerDescription   string     `gorm:"type:varchar(255)"`
	LedgerAmountCents   int64      `gorm:"type:bigint;not null;default:0"`
	LedgerIsCredit      bool       `gorm:"not null;default:false"`

	Status     string   `gorm:"type:varchar(24);not null;index"`
	Confidence *float64 `gorm:"type:numeric(4,3)"`
	Reason     string   `gorm:"type:text"`

	IsFeeAdjusted  bool   `gorm:"not null;default:false"`
	FeeType        string `gorm:"type:varchar(32)"`
	FeeAmountCents int64  `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Reconciliation *ReconciliationModel `gorm:"foreignKey:ReconciliationID;references:ID"`
}

// TableName returns the table name for the MatchModel.
func (MatchModel) TableName() string {
	return "matches"
}

// ToEntity converts a MatchModel to a domain Match entity.
func (m *MatchModel) ToEntity() *entity.Match {
	var bankDate time.Time
	if m.BankDate != nil {
		bankDate = *m.BankDate
	}

	return &entity.Match{
		ID:                  m.ID,
		TenantID:            m.TenantID,
		ReconciliationID:    m.ReconciliationID,
		BankDate:            bankDate,
		BankDescription:     m.BankDescription,
		BankAmountCents:     m.BankAmountCents,
		BankIsCredit:        m.BankIsCredit,
		LedgerTransactionID: m.LedgerTransactionID,
		LedgerDate:          m.LedgerDate,
		LedgerDescription:   m.LedgerDescription,
		LedgerAmountCents:   m.LedgerAmountCents,
		LedgerIsCredit:      m.LedgerIsCredit,
		Status:              valueobject.MatchStatus(m.Status),
		Confidence:          m.Confidence,
		Reason:              m.Reason,
		IsFeeAdjusted:       m.IsFeeAdjusted,
		FeeType:             m.FeeType,
		FeeAmountCents:      m.FeeAmountCents,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// MatchFromEntity converts a domain Match entity to a MatchModel.
func MatchFromEntity(match *entity.Match) *MatchModel {
	var bankDate *time.Time
	if !match.BankDate.IsZero() {
		d := match.BankDate
		bankDate = &d
	}

	return &MatchModel{
		ID:                  match.ID,
		TenantID:            match.TenantID,
		ReconciliationID:    match.ReconciliationID,
		BankDate:            bankDate,
		BankDescription:     match.BankDescription,
		BankAmountCents:     match.BankAmountCents,
		BankIsCredit:        match.BankIsCredit,
		LedgerTransactionID: match.LedgerTransactionID,
		LedgerDate:          match.LedgerDate,
		LedgerDescription:   match.LedgerDescription,
		LedgerAmountCents:   match.LedgerAmountCents,
		LedgerIsCredit:      match.LedgerIsCredit,
		Status:              string(match.Status),
		Confidence:          match.Confidence,
		Reason:              match.Reason,
		IsFeeAdjusted:       match.IsFeeAdjusted,
		FeeType:             match.FeeType,
		FeeAmountCents:      match.FeeAmountCents,
		CreatedAt:           match.CreatedAt,
		UpdatedAt:           match.UpdatedAt,
	}
}
