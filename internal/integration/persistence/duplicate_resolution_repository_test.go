package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

func TestDuplicateResolutionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewDuplicateResolutionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	const key = "2025-03-10|50000|school fees j smith"

	t.Run("Get returns nil when no resolution exists", func(t *testing.T) {
		got, err := repo.Get(ctx, tenantID, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Upsert inserts a new resolution", func(t *testing.T) {
		resolution := &entity.DuplicateResolution{
			ID:           uuid.New(),
			TenantID:     tenantID,
			CompositeKey: key,
			Decision:     valueobject.DuplicateDecisionFalsePositive,
			ResolvedBy:   uuid.New(),
			Notes:        "two siblings pay the same fee",
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, repo.Upsert(ctx, resolution))

		got, err := repo.Get(ctx, tenantID, key)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, valueobject.DuplicateDecisionFalsePositive, got.Decision)
		assert.Equal(t, "two siblings pay the same fee", got.Notes)
	})

	t.Run("Upsert replaces the decision on conflict", func(t *testing.T) {
		resolution := &entity.DuplicateResolution{
			ID:           uuid.New(),
			TenantID:     tenantID,
			CompositeKey: key,
			Decision:     valueobject.DuplicateDecisionConfirmedDuplicate,
			ResolvedBy:   uuid.New(),
			Notes:        "statement re-import",
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, repo.Upsert(ctx, resolution))

		got, err := repo.Get(ctx, tenantID, key)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, valueobject.DuplicateDecisionConfirmedDuplicate, got.Decision)
		assert.Equal(t, "statement re-import", got.Notes)

		var count int64
		require.NoError(t, db.Model(&model.DuplicateResolutionModel{}).
			Where("tenant_id = ?", tenantID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Get is scoped to the tenant", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New(), key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
