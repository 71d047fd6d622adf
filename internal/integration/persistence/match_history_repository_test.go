package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

func seedHistory(t *testing.T, db *gorm.DB, matchID uuid.UUID, action valueobject.HistoryAction, at time.Time) {
	t.Helper()

	entry := &entity.MatchHistoryEntry{
		ID:        uuid.New(),
		MatchID:   matchID,
		Action:    action,
		Actor:     uuid.New(),
		CreatedAt: at,
	}
	require.NoError(t, db.Create(model.MatchHistoryFromEntity(entry)).Error)
}

func TestMatchHistoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewMatchHistoryRepository(db)
	ctx := context.Background()

	matchID := uuid.New()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	seedHistory(t, db, matchID, valueobject.HistoryActionMatch, base)
	seedHistory(t, db, matchID, valueobject.HistoryActionUnmatch, base.Add(time.Minute))

	t.Run("Latest returns the most recent entry", func(t *testing.T) {
		got, err := repo.Latest(ctx, matchID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, valueobject.HistoryActionUnmatch, got.Action)
	})

	t.Run("Latest returns nil for an untouched match", func(t *testing.T) {
		got, err := repo.Latest(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("List returns newest first", func(t *testing.T) {
		got, err := repo.List(ctx, matchID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, valueobject.HistoryActionUnmatch, got[0].Action)
		assert.Equal(t, valueobject.HistoryActionMatch, got[1].Action)
	})
}
