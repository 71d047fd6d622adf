// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

// auditLogRepository implements the adapter.AuditSink interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance.
func NewAuditLogRepository(db *gorm.DB) adapter.AuditSink {
	return &auditLogRepository{
		db: db,
	}
}

// Record appends one audit entry.
func (r *auditLogRepository) Record(ctx context.Context, entry entity.AuditLogEntry) error {
	return r.db.WithContext(ctx).Create(model.AuditLogFromEntity(&entry)).Error
}
