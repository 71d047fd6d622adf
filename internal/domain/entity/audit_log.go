// Package entity contains the core domain entities for the reconciliation service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is one structured before/after record destined for the
// append-only audit sink.
type AuditLogEntry struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Actor    uuid.UUID

	Action     string // e.g. "fee_correction.apply", "match.manual_match"
	EntityType string
	EntityID   uuid.UUID

	BeforeAmountCents *int64
	AfterAmountCents  *int64
	ChangedFields     []string
	Detail            string

	CreatedAt time.Time
}
