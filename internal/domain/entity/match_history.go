// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// MatchHistoryEntry is one append-only record of a manual override. The most
// recent entry per match is the target of a single-step undo.
type MatchHistoryEntry struct {
	ID      uuid.UUID
	MatchID uuid.UUID

	PreviousLedgerTransactionID *uuid.UUID
	NewLedgerTransactionID      *uuid.UUID

	Action    valueobject.HistoryAction
	Actor     uuid.UUID
	Reason    string
	CreatedAt time.Time
}
