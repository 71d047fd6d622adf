// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// AccruedBankCharge records the fee stripped out of a gross ledger amount by
// the fee inflation corrector. It stays ACCRUED until a later aggregate run
// matches it against a standalone fee line in the ledger.
type AccruedBankCharge struct {
	ID                  uuid.UUID
	TenantID            uuid.UUID
	LedgerTransactionID uuid.UUID

	NetAmountCents   int64 // bank-derived amount written back to the ledger
	FeeType          string
	FeeAmountCents   int64
	GrossAmountCents int64 // original inflated amount, preserved for audit
	ChargeDate       time.Time

	Status                     valueobject.AccruedChargeStatus
	MatchedLedgerTransactionID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
