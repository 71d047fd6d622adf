// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// matchHistoryRepository implements the adapter.MatchHistoryRepository
// interface. Appends happen inside the atomic workflows of the match
// repository; this one only reads.
type matchHistoryRepository struct {
	db *gorm.DB
}

// NewMatchHistoryRepository creates a new match history repository instance.
func NewMatchHistoryRepository(db *gorm.DB) adapter.MatchHistoryRepository {
	return &matchHistoryRepository{
		db: db,
	}
}

// Latest returns the most recent history entry for a match.
func (r *matchHistoryRepository) Latest(ctx context.Context, matchID uuid.UUID) (*entity.MatchHistoryEntry, error) {
	var historyModel model.MatchHistoryModel
	result := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC").
		First(&historyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return historyModel.ToEntity(), nil
}

// List returns a match's history, newest first.
func (r *matchHistoryRepository) List(ctx context.Context, matchID uuid.UUID) ([]entity.MatchHistoryEntry, error) {
	var historyModels []model.MatchHistoryModel
	result := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC").
		Find(&historyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.MatchHistoryEntry, len(historyModels))
	for i := range historyModels {
		entries[i] = *historyModels[i].ToEntity()
	}
	return entries, nil
}
