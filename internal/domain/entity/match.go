// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// Match pairs one bank statement line with at most one ledger transaction
// within a reconciliation. A ledger transaction appears in at most one active
// match per reconciliation.
type Match struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	ReconciliationID uuid.UUID

	// Bank side snapshot. Zero-valued when the row exists only because of an
	// unmatched ledger transaction (IN_XERO_ONLY).
	BankDate        time.Time
	BankDescription string
	BankAmountCents int64
	BankIsCredit    bool

	// Ledger side snapshot; nil reference when no ledger transaction is linked.
	LedgerTransactionID *uuid.UUID
	LedgerDate          *time.Time
	LedgerDescription   string
	LedgerAmountCents   int64
	LedgerIsCredit      bool

	Status     valueobject.MatchStatus
	Confidence *float64 // in [0,1]; nil for one-sided rows
	Reason     string

	// Fee correction metadata.
	IsFeeAdjusted  bool
	FeeType        string
	FeeAmountCents int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBankSide reports whether the match carries a bank statement snapshot.
func (m *Match) HasBankSide() bool {
	return !m.BankDate.IsZero() || m.BankDescription != "" || m.BankAmountCents != 0
}

// MatchSummary counts matches per status for a reconciliation run.
type MatchSummary struct {
	Total          int
	Matched        int
	InBankOnly     int
	InXeroOnly     int
	AmountMismatch int
	DateMismatch   int
	FeeAdjusted    int
}

// Add counts one match status into the summary.
func (s *MatchSummary) Add(status valueobject.MatchStatus) {
	s.Total++
	switch status {
	case valueobject.MatchStatusMatched:
		s.Matched++
	case valueobject.MatchStatusInBankOnly:
		s.InBankOnly++
	case valueobject.MatchStatusInXeroOnly:
		s.InXeroOnly++
	case valueobject.MatchStatusAmountMismatch:
		s.AmountMismatch++
	case valueobject.MatchStatusDateMismatch:
		s.DateMismatch++
	case valueobject.MatchStatusFeeAdjusted:
		s.FeeAdjusted++
	}
}
