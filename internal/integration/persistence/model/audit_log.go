// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// AuditLogModel represents the audit_log table. Rows are only ever inserted.
type AuditLogModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Actor    uuid.UUID `gorm:"type:uuid;not null"`

	Action     string    `gorm:"type:varchar(64);not null;index"`
	EntityType string    `gorm:"type:varchar(32);not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index"`

	BeforeAmountCents *int64         `gorm:"type:bigint"`
	AfterAmountCents  *int64         `gorm:"type:bigint"`
	ChangedFields     pq.StringArray `gorm:"type:text[]"`
	Detail            string         `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AuditLogModel.
func (AuditLogModel) TableName() string {
	return "audit_log"
}

// ToEntity converts an AuditLogModel to a domain AuditLogEntry entity.
func (m *AuditLogModel) ToEntity() *entity.AuditLogEntry {
	return &entity.AuditLogEntry{
		ID:                m.ID,
		TenantID:          m.TenantID,
		Actor:             m.Actor,
		Action:            m.Action,
		EntityType:        m.EntityType,
		EntityID:          m.EntityID,
		BeforeAmountCents: m.BeforeAmountCents,
		AfterAmountCents:  m.AfterAmountCents,
		ChangedFields:     []string(m.ChangedFields),
		Detail:            m.Detail,
		CreatedAt:         m.CreatedAt,
	}
}

// AuditLogFromEntity converts a domain AuditLogEntry entity to an AuditLogModel.
func AuditLogFromEntity(entry *entity.AuditLogEntry) *AuditLogModel {
	return &AuditLogModel{
		ID:                entry.ID,
		TenantID:          entry.TenantID,
		Actor:             entry.Actor,
		Action:            entry.Action,
		EntityType:        entry.EntityType,
		EntityID:          entry.EntityID,
		BeforeAmountCents: entry.BeforeAmountCents,
		AfterAmountCents:  entry.AfterAmountCents,
		ChangedFields:     pq.StringArray(entry.ChangedFields),
		Detail:            entry.Detail,
		CreatedAt:         entry.CreatedAt,
	}
}
