// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// DuplicateResolutionModel represents the duplicate_resolutions table.
type DuplicateResolutionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_duplicate_resolution_key,priority:1"`
	CompositeKey string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_duplicate_resolution_key,priority:2"`
	Decision     string    `gorm:"type:varchar(20);not null"`
	ResolvedBy   uuid.UUID `gorm:"type:uuid;not null"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the DuplicateResolutionModel.
func (DuplicateResolutionModel) TableName() string {
	return "duplicate_resolutions"
}

// ToEntity converts a DuplicateResolutionModel to a domain DuplicateResolution entity.
func (m *DuplicateResolutionModel) ToEntity() *entity.DuplicateResolution {
	return &entity.DuplicateResolution{
		ID:           m.ID,
		TenantID:     m.TenantID,
		CompositeKey: m.CompositeKey,
		Decision:     valueobject.DuplicateDecision(m.Decision),
		ResolvedBy:   m.ResolvedBy,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

// DuplicateResolutionFromEntity converts a domain DuplicateResolution entity to a DuplicateResolutionModel.
func DuplicateResolutionFromEntity(resolution *entity.DuplicateResolution) *DuplicateResolutionModel {
	return &DuplicateResolutionModel{
		ID:           resolution.ID,
		TenantID:     resolution.TenantID,
		CompositeKey: resolution.CompositeKey,
		Decision:     string(resolution.Decision),
		ResolvedBy:   resolution.ResolvedBy,
		Notes:        resolution.Notes,
		CreatedAt:    resolution.CreatedAt,
	}
}
