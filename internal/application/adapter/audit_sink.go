// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// AuditSink accepts structured before/after records. Append-only; entries are
// never updated or deleted.
type AuditSink interface {
	Record(ctx context.Context, entry entity.AuditLogEntry) error
}
