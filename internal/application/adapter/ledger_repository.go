// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// LedgerTransactionRepository reads the locally synced copy of the external
// ledger. Mutations to ledger rows happen inside the atomic workflows of
// MatchRepository; this interface is read-only.
type LedgerTransactionRepository interface {
	// GetByID retrieves a ledger transaction scoped to a tenant.
	// Returns (nil, nil) when absent or cross-tenant.
	GetByID(ctx context.Context, tenantID, ledgerTransactionID uuid.UUID) (*entity.LedgerTransaction, error)

	// ListForPeriod returns the tenant's ledger transactions for a bank
	// account and date range, ordered by primary key. That ordering is the
	// documented tie-break order of the matching engine and must be stable.
	ListForPeriod(
		ctx context.Context,
		tenantID uuid.UUID,
		bankAccountID string,
		from, to time.Time,
	) ([]entity.LedgerTransaction, error)

	// FindFeeLines returns unreconciled debit transactions in the range whose
	// description marks them as standalone bank fee lines.
	FindFeeLines(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.LedgerTransaction, error)
}
