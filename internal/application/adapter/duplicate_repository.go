// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
)

// DuplicateResolutionRepository persists human rulings on apparent duplicate
// bank entries.
type DuplicateResolutionRepository interface {
	// Get returns the resolution for (tenant, composite key), or (nil, nil).
	Get(ctx context.Context, tenantID uuid.UUID, compositeKey string) (*entity.DuplicateResolution, error)

	// Upsert stores or replaces the resolution for its (tenant, composite key).
	Upsert(ctx context.Context, resolution *entity.DuplicateResolution) error
}
