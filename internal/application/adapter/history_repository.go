// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// MatchHistoryRepository reads the append-only manual override trail. Appends
// happen inside the atomic workflows of MatchRepository.
type MatchHistoryRepository interface {
	// Latest returns the most recent history entry for a match, or (nil, nil)
	// when the match has no manual history.
	Latest(ctx context.Context, matchID uuid.UUID) (*entity.MatchHistoryEntry, error)

	// List returns a match's history, newest first.
	List(ctx context.Context, matchID uuid.UUID) ([]entity.MatchHistoryEntry, error)
}
