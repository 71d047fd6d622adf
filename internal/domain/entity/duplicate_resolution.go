// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// DuplicateResolution stores a human ruling on an apparent re-imported bank
// entry, keyed by (tenant, composite key), so later imports of the same
// apparent entry are not re-flagged.
type DuplicateResolution struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	CompositeKey string
	Decision     valueobject.DuplicateDecision
	ResolvedBy   uuid.UUID
	Notes        string
	CreatedAt    time.Time
}

// DuplicateCandidate is one flagged entry from a duplicate detection run.
type DuplicateCandidate struct {
	Entry        BankTransaction
	CompositeKey string
	Confidence   float64
	Reason       string
}
