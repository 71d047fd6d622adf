package duplicate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// ResolveDuplicateInput represents the input for recording a duplicate ruling.
type ResolveDuplicateInput struct {
	TenantID     uuid.UUID
	CompositeKey string
	Decision     valueobject.DuplicateDecision
	Actor        uuid.UUID
	Notes        string
}

// ResolveDuplicateOutput represents the recorded ruling.
type ResolveDuplicateOutput struct {
	Resolution *entity.DuplicateResolution
}

// ResolveDuplicateUseCase persists a human ruling for a flagged entry so
// subsequent imports of the same apparent entry are not re-flagged.
type ResolveDuplicateUseCase struct {
	resolutionRepo adapter.DuplicateResolutionRepository
	now            func() time.Time
}

// NewResolveDuplicateUseCase creates a new ResolveDuplicateUseCase instance.
func NewResolveDuplicateUseCase(resolutionRepo adapter.DuplicateResolutionRepository) *ResolveDuplicateUseCase {
	return &ResolveDuplicateUseCase{
		resolutionRepo: resolutionRepo,
		now:            time.Now,
	}
}

// Execute upserts the ruling keyed by (tenant, composite key).
func (uc *ResolveDuplicateUseCase) Execute(
	ctx context.Context,
	input ResolveDuplicateInput,
) (*ResolveDuplicateOutput, error) {
	switch input.Decision {
	case valueobject.DuplicateDecisionFalsePositive, valueobject.DuplicateDecisionConfirmedDuplicate:
	default:
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidDuplicateDecision,
			"decision must be FALSE_POSITIVE or CONFIRMED_DUPLICATE",
			domainerror.ErrInvalidDuplicateDecision,
		).WithDetail("decision", string(input.Decision))
	}

	resolution := &entity.DuplicateResolution{
		ID:           uuid.New(),
		TenantID:     input.TenantID,
		CompositeKey: input.CompositeKey,
		Decision:     input.Decision,
		ResolvedBy:   input.Actor,
		Notes:        input.Notes,
		CreatedAt:    uc.now(),
	}
	if err := uc.resolutionRepo.Upsert(ctx, resolution); err != nil {
		return nil, err
	}

	return &ResolveDuplicateOutput{Resolution: resolution}, nil
}
