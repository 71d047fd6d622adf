// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerTransaction is a transaction synced from the external accounting
// ledger. This core reads it, rewrites its amount during fee correction, and
// flips its reconciled flag; everything else about its lifecycle is owned by
// the sync process.
type LedgerTransaction struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	BankAccountID string
	Date          time.Time
	Description   string
	AmountCents   int64
	IsCredit      bool
	Reconciled    bool
	ReconciledAt  *time.Time
}
