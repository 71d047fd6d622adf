package duplicate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// DuplicateConfidenceThreshold is the minimum weighted confidence at which an
// entry is reported as a probable duplicate.
const DuplicateConfidenceThreshold = 0.8

// Confidence weights of the three compared attributes.
const (
	dateWeight        = 0.3
	amountWeight      = 0.4
	descriptionWeight = 0.3
)

// DetectDuplicatesInput represents the input for a duplicate scan over newly
// parsed statement entries.
type DetectDuplicatesInput struct {
	TenantID uuid.UUID
	Entries  []entity.BankTransaction
}

// DetectDuplicatesOutput represents the result of a duplicate scan.
type DetectDuplicatesOutput struct {
	Candidates []entity.DuplicateCandidate
	Checked    int
	Suppressed int
}

// DetectDuplicatesUseCase flags entries that likely appeared in an earlier
// import or earlier in the same batch. Persisted resolutions are consulted
// first so an entry a human already ruled on is never re-flagged.
type DetectDuplicatesUseCase struct {
	matchRepo      adapter.MatchRepository
	resolutionRepo adapter.DuplicateResolutionRepository
}

// NewDetectDuplicatesUseCase creates a new DetectDuplicatesUseCase instance.
func NewDetectDuplicatesUseCase(
	matchRepo adapter.MatchRepository,
	resolutionRepo adapter.DuplicateResolutionRepository,
) *DetectDuplicatesUseCase {
	return &DetectDuplicatesUseCase{
		matchRepo:      matchRepo,
		resolutionRepo: resolutionRepo,
	}
}

// Execute scans the entries in order and reports probable duplicates.
func (uc *DetectDuplicatesUseCase) Execute(
	ctx context.Context,
	input DetectDuplicatesInput,
) (*DetectDuplicatesOutput, error) {
	output := &DetectDuplicatesOutput{}

	for i := range input.Entries {
		entry := input.Entries[i]
		output.Checked++

		key := CompositeKey(entry.Date, entry.AmountCents, entry.Description)
		resolution, err := uc.resolutionRepo.Get(ctx, input.TenantID, key)
		if err != nil {
			return nil, err
		}
		if resolution != nil {
			output.Suppressed++
			continue
		}

		priorDescription, priorSource, err := uc.findPrior(ctx, input, i)
		if err != nil {
			return nil, err
		}
		if priorSource == "" {
			continue
		}

		confidence := dateWeight + amountWeight +
			descriptionWeight*valueobject.DescriptionSimilarity(
				normalizeDescription(entry.Description),
				normalizeDescription(priorDescription))
		if confidence < DuplicateConfidenceThreshold {
			continue
		}

		output.Candidates = append(output.Candidates, entity.DuplicateCandidate{
			Entry:        entry,
			CompositeKey: key,
			Confidence:   confidence,
			Reason: fmt.Sprintf("same date, amount, and direction as %s %q",
				priorSource, priorDescription),
		})
	}

	return output, nil
}

// findPrior locates the closest earlier sighting of the entry: first among
// the earlier entries of the same batch, then among persisted match
// snapshots. Only exact date+amount+direction sightings qualify.
func (uc *DetectDuplicatesUseCase) findPrior(
	ctx context.Context,
	input DetectDuplicatesInput,
	index int,
) (description, source string, err error) {
	entry := input.Entries[index]

	for j := index - 1; j >= 0; j-- {
		prev := input.Entries[j]
		if prev.Date.Equal(entry.Date) &&
			prev.AmountCents == entry.AmountCents &&
			prev.IsCredit == entry.IsCredit {
			return prev.Description, "earlier entry in this import", nil
		}
	}

	prior, err := uc.matchRepo.FindRecentBankEntry(
		ctx, input.TenantID, entry.Date, entry.AmountCents, entry.IsCredit)
	if err != nil {
		return "", "", err
	}
	if prior != nil {
		return prior.BankDescription, "previously imported entry", nil
	}
	return "", "", nil
}
