// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// MatchHistoryModel represents the match_history table. Append-only.
type MatchHistoryModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	MatchID uuid.UUID `gorm:"type:uuid;not null;index:idx_match_history_latest,priority:1"`

	PreviousLedgerTransactionID *uuid.UUID `gorm:"type:uuid"`
	NewLedgerTransactionID      *uuid.UUID `gorm:"type:uuid"`

	Action    string    `gorm:"type:varchar(10);not null"`
	Actor     uuid.UUID `gorm:"type:uuid;not null"`
	Reason    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index:idx_match_history_latest,priority:2,sort:desc"`
}

// TableName returns the table name for the MatchHistoryModel.
func (MatchHistoryModel) TableName() string {
	return "match_history"
}

// ToEntity converts a MatchHistoryModel to a domain MatchHistoryEntry entity.
func (m *MatchHistoryModel) ToEntity() *entity.MatchHistoryEntry {
	return &entity.MatchHistoryEntry{
		ID:                          m.ID,
		MatchID:                     m.MatchID,
		PreviousLedgerTransactionID: m.PreviousLedgerTransactionID,
		NewLedgerTransactionID:      m.NewLedgerTransactionID,
		Action:                      valueobject.HistoryAction(m.Action),
		Actor:                       m.Actor,
		Reason:                      m.Reason,
		CreatedAt:                   m.CreatedAt,
	}
}

// MatchHistoryFromEntity converts a domain MatchHistoryEntry entity to a MatchHistoryModel.
func MatchHistoryFromEntity(entry *entity.MatchHistoryEntry) *MatchHistoryModel {
	return &MatchHistoryModel{
		ID:                          entry.ID,
		MatchID:                     entry.MatchID,
		PreviousLedgerTransactionID: entry.PreviousLedgerTransactionID,
		NewLedgerTransactionID:      entry.NewLedgerTransactionID,
		Action:                      string(entry.Action),
		Actor:                       entry.Actor,
		Reason:                      entry.Reason,
		CreatedAt:                   entry.CreatedAt,
	}
}
