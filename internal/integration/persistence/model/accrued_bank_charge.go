// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// AccruedBankChargeModel represents the accrued_bank_charges table.
type AccruedBankChargeModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID            uuid.UUID `gorm:"type:uuid;not null;index:idx_accrued_charge_date,priority:1"`
	LedgerTransactionID uuid.UUID `gorm:"type:uuid;not null;index"`

	NetAmountCents   int64     `gorm:"type:bigint;not null"`
	FeeType          string    `gorm:"type:varchar(32);not null;index"`
	FeeAmountCents   int64     `gorm:"type:bigint;not null"`
	GrossAmountCents int64     `gorm:"type:bigint;not null"`
	ChargeDate       time.Time `gorm:"type:date;not null;index:idx_accrued_charge_date,priority:2"`

	Status                     string     `gorm:"type:varchar(10);not null;index"`
	MatchedLedgerTransactionID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccruedBankChargeModel.
func (AccruedBankChargeModel) TableName() string {
	return "accrued_bank_charges"
}

// ToEntity converts an AccruedBankChargeModel to a domain AccruedBankCharge entity.
func (m *AccruedBankChargeModel) ToEntity() *entity.AccruedBankCharge {
	return &entity.AccruedBankCharge{
		ID:                         m.ID,
		TenantID:                   m.TenantID,
		LedgerTransactionID:        m.LedgerTransactionID,
		NetAmountCents:             m.NetAmountCents,
		FeeType:                    m.FeeType,
		FeeAmountCents:             m.FeeAmountCents,
		GrossAmountCents:           m.GrossAmountCents,
		ChargeDate:                 m.ChargeDate,
		Status:                     valueobject.AccruedChargeStatus(m.Status),
		MatchedLedgerTransactionID: m.MatchedLedgerTransactionID,
		CreatedAt:                  m.CreatedAt,
		UpdatedAt:                  m.UpdatedAt,
	}
}

// AccruedBankChargeFromEntity converts a domain AccruedBankCharge entity to an AccruedBankChargeModel.
func AccruedBankChargeFromEntity(charge *entity.AccruedBankCharge) *AccruedBankChargeModel {
	return &AccruedBankChargeModel{
		ID:                         charge.ID,
		TenantID:                   charge.TenantID,
		LedgerTransactionID:        charge.LedgerTransactionID,
		NetAmountCents:             charge.NetAmountCents,
		FeeType:                    charge.FeeType,
		FeeAmountCents:             charge.FeeAmountCents,
		GrossAmountCents:           charge.GrossAmountCents,
		ChargeDate:                 charge.ChargeDate,
		Status:                     string(charge.Status),
		MatchedLedgerTransactionID: charge.MatchedLedgerTransactionID,
		CreatedAt:                  charge.CreatedAt,
		UpdatedAt:                  charge.UpdatedAt,
	}
}
