// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// ReconciliationModel represents the reconciliations table in the database.
type ReconciliationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reconciliation_period,priority:1"`
	BankAccountID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_reconciliation_period,priority:2"`
	PeriodStart   time.Time `gorm:"type:date;not null;uniqueIndex:idx_reconciliation_period,priority:3"`
	PeriodEnd     time.Time `gorm:"type:date;not null"`

	OpeningBalanceCents    int64 `gorm:"type:bigint;not null"`
	ClosingBalanceCents    int64 `gorm:"type:bigint;not null"`
	CalculatedBalanceCents int64 `gorm:"type:bigint;not null"`
	DiscrepancyCents       int64 `gorm:"type:bigint;not null"`

	Status       string     `gorm:"type:varchar(20);not null;index"`
	ReconciledBy *uuid.UUID `gorm:"type:uuid"`
	ReconciledAt *time.Time `gorm:"type:timestamp"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReconciliationModel.
func (ReconciliationModel) TableName() string {
	return "reconciliations"
}

// ToEntity converts a ReconciliationModel to a domain Reconciliation entity.
func (m *ReconciliationModel) ToEntity() *entity.Reconciliation {
	return &entity.Reconciliation{
		ID:                     m.ID,
		TenantID:               m.TenantID,
		BankAccountID:          m.BankAccountID,
		PeriodStart:            m.PeriodStart,
		PeriodEnd:              m.PeriodEnd,
		OpeningBalanceCents:    m.OpeningBalanceCents,
		ClosingBalanceCents:    m.ClosingBalanceCents,
		CalculatedBalanceCents: m.CalculatedBalanceCents,
		DiscrepancyCents:       m.DiscrepancyCents,
		Status:                 valueobject.ReconciliationStatus(m.Status),
		ReconciledBy:           m.ReconciledBy,
		ReconciledAt:           m.ReconciledAt,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// ReconciliationFromEntity converts a domain Reconciliation entity to a ReconciliationModel.
func ReconciliationFromEntity(rec *entity.Reconciliation) *ReconciliationModel {
	return &ReconciliationModel{
		ID:                     rec.ID,
		TenantID:               rec.TenantID,
		BankAccountID:          rec.BankAccountID,
		PeriodStart:            rec.PeriodStart,
		PeriodEnd:              rec.PeriodEnd,
		OpeningBalanceCents:    rec.OpeningBalanceCents,
		ClosingBalanceCents:    rec.ClosingBalanceCents,
		CalculatedBalanceCents: rec.CalculatedBalanceCents,
		DiscrepancyCents:       rec.DiscrepancyCents,
		Status:                 string(rec.Status),
		ReconciledBy:           rec.ReconciledBy,
		ReconciledAt:           rec.ReconciledAt,
		CreatedAt:              rec.CreatedAt,
		UpdatedAt:              rec.UpdatedAt,
	}
}
