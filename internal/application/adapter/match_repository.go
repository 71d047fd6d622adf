// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// ManualMatchParams carries every write of a manual match so the repository
// can apply them in one transaction: the match update, the ledger reconciled
// flag, and the history append.
type ManualMatchParams struct {
	Match               *entity.Match // fully updated state to persist
	LedgerTransactionID uuid.UUID
	// PreviousLedgerTransactionID, when set, is the replaced link whose
	// reconciled flag must be reset in the same transaction.
	PreviousLedgerTransactionID *uuid.UUID
	History                     entity.MatchHistoryEntry
}

// UnmatchParams carries every write of an unmatch: the match update, the
// ledger reconciled-flag reset, and the history append.
type UnmatchParams struct {
	Match                       *entity.Match
	PreviousLedgerTransactionID uuid.UUID
	History                     entity.MatchHistoryEntry
}

// FeeCorrectionParams carries the four writes of an applied fee correction.
// All four commit together or not at all.
type FeeCorrectionParams struct {
	Match          *entity.Match // rewritten to FEE_ADJUSTED_MATCH with fee metadata
	LedgerTxnID    uuid.UUID
	NetAmountCents int64 // new ledger amount (bank-derived)
	Charge         entity.AccruedBankCharge
	Audit          entity.AuditLogEntry
}

// MatchRepository defines persistence operations for matches and their
// atomic mutation workflows.
type MatchRepository interface {
	// GetByID retrieves a match scoped to a tenant. Returns (nil, nil) when
	// absent or cross-tenant.
	GetByID(ctx context.Context, tenantID, matchID uuid.UUID) (*entity.Match, error)

	// ListByReconciliation returns all matches of a reconciliation, ordered
	// by creation.
	ListByReconciliation(ctx context.Context, tenantID, reconciliationID uuid.UUID) ([]entity.Match, error)

	// ListByStatus returns the tenant's matches with the given status that
	// still reference a ledger transaction.
	ListByStatus(ctx context.Context, tenantID uuid.UUID, status valueobject.MatchStatus) ([]entity.Match, error)

	// FindRecentBankEntry returns the most recent match whose bank snapshot
	// has the given date, amount, and credit flag, or (nil, nil).
	FindRecentBankEntry(
		ctx context.Context,
		tenantID uuid.UUID,
		date time.Time,
		amountCents int64,
		isCredit bool,
	) (*entity.Match, error)

	// IsLedgerTransactionMatched reports whether the ledger transaction is
	// linked by another active match of the same reconciliation.
	IsLedgerTransactionMatched(
		ctx context.Context,
		reconciliationID, ledgerTransactionID uuid.UUID,
		excludeMatchID uuid.UUID,
	) (bool, error)

	// ApplyManualMatch persists a manual match atomically: match update,
	// ledger reconciled flag, history append.
	ApplyManualMatch(ctx context.Context, params ManualMatchParams) error

	// ApplyUnmatch persists an unmatch atomically: match update, ledger
	// reconciled-flag reset, history append.
	ApplyUnmatch(ctx context.Context, params UnmatchParams) error

	// ApplyFeeCorrection persists a fee correction atomically: ledger amount
	// rewrite, accrued charge insert, match update, audit entry.
	ApplyFeeCorrection(ctx context.Context, params FeeCorrectionParams) error
}
