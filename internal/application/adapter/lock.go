// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LockKey identifies the single-writer resource: one reconciliation period of
// one bank account of one tenant.
type LockKey struct {
	TenantID      uuid.UUID
	BankAccountID string
	PeriodStart   time.Time
}

// ReconciliationLocker serializes conflicting operations on the same
// reconciliation. Acquire blocks briefly (bounded retries) and returns a
// release function; failure to acquire surfaces as a transient error.
type ReconciliationLocker interface {
	Acquire(ctx context.Context, key LockKey) (release func(), err error)
}
