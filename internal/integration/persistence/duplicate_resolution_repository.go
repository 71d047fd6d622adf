// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// duplicateResolutionRepository implements the adapter.DuplicateResolutionRepository interface.
type duplicateResolutionRepository struct {
	db *gorm.DB
}

// NewDuplicateResolutionRepository creates a new duplicate resolution repository instance.
func NewDuplicateResolutionRepository(db *gorm.DB) adapter.DuplicateResolutionRepository {
	return &duplicateResolutionRepository{
		db: db,
	}
}

// Get returns the resolution for (tenant, composite key).
func (r *duplicateResolutionRepository) Get(ctx context.Context, tenantID uuid.UUID, compositeKey string) (*entity.DuplicateResolution, error) {
	var resolutionModel model.DuplicateResolutionModel
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND composite_key = ?", tenantID, compositeKey).
		First(&resolutionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return resolutionModel.ToEntity(), nil
}

// Upsert stores or replaces the resolution for its (tenant, composite key).
func (r *duplicateResolutionRepository) Upsert(ctx context.Context, resolution *entity.DuplicateResolution) error {
	resolutionModel := model.DuplicateResolutionFromEntity(resolution)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "composite_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"decision", "resolved_by", "notes", "updated_at",
			}),
		}).
		Create(resolutionModel).Error
}
