package feecorrection

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
)

// AggregateToleranceCents is how far the accrued total may sit from a
// standalone fee line and still count as that line.
const AggregateToleranceCents = 100

// MatchMonthlyFeeAggregatesInput represents the input for an aggregate run.
type MatchMonthlyFeeAggregatesInput struct {
	TenantID uuid.UUID
	Actor    uuid.UUID
	From     time.Time
	To       time.Time
}

// FeeAggregate is the accrued total for one fee type over the range.
type FeeAggregate struct {
	FeeType         string
	TotalFeeCents   int64
	ChargeCount     int
	ChargeIDs       []uuid.UUID
	Matched         bool
	FeeLineID       *uuid.UUID
	FeeLineCents    int64
	DifferenceCents int64
}

// MatchMonthlyFeeAggregatesOutput represents the result of an aggregate run.
type MatchMonthlyFeeAggregatesOutput struct {
	Aggregates []FeeAggregate
	Matched    int
	Unmatched  int
}

// MatchMonthlyFeeAggregatesUseCase settles accrued bank charges against the
// standalone fee lines the bank posts, usually once a month: charges are
// summed per fee type and matched to a fee line whose amount is within
// AggregateToleranceCents of the total.
type MatchMonthlyFeeAggregatesUseCase struct {
	accruedRepo adapter.AccruedChargeRepository
	ledgerRepo  adapter.LedgerTransactionRepository
	now         func() time.Time
}

// NewMatchMonthlyFeeAggregatesUseCase creates a new MatchMonthlyFeeAggregatesUseCase instance.
func NewMatchMonthlyFeeAggregatesUseCase(
	accruedRepo adapter.AccruedChargeRepository,
	ledgerRepo adapter.LedgerTransactionRepository,
) *MatchMonthlyFeeAggregatesUseCase {
	return &MatchMonthlyFeeAggregatesUseCase{
		accruedRepo: accruedRepo,
		ledgerRepo:  ledgerRepo,
		now:         time.Now,
	}
}

// Execute aggregates ACCRUED charges per fee type over the range and marks
// the ones covered by a standalone ledger fee line MATCHED. Unmatched
// aggregates are reported for manual follow-up.
func (uc *MatchMonthlyFeeAggregatesUseCase) Execute(
	ctx context.Context,
	input MatchMonthlyFeeAggregatesInput,
) (*MatchMonthlyFeeAggregatesOutput, error) {
	if input.To.Before(input.From) {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidPeriod,
			"aggregate range end precedes its start",
			domainerror.ErrInvalidPeriod,
		).WithDetail("from", input.From).WithDetail("to", input.To)
	}

	charges, err := uc.accruedRepo.ListAccrued(ctx, input.TenantID, input.From, input.To)
	if err != nil {
		return nil, err
	}

	feeLines, err := uc.ledgerRepo.FindFeeLines(ctx, input.TenantID, input.From, input.To)
	if err != nil {
		return nil, err
	}

	aggregates := groupByFeeType(charges)
	output := &MatchMonthlyFeeAggregatesOutput{}
	usedLines := make(map[uuid.UUID]bool)

	for i := range aggregates {
		agg := &aggregates[i]
		line := closestFeeLine(feeLines, usedLines, agg.TotalFeeCents)
		if line == nil {
			output.Unmatched++
			continue
		}

		audit := entity.AuditLogEntry{
			ID:         uuid.New(),
			TenantID:   input.TenantID,
			Actor:      input.Actor,
			Action:     "fee_correction.aggregate_match",
			EntityType: "accrued_bank_charge",
			EntityID:   line.ID,
			Detail: fmt.Sprintf("matched %d accrued %s charges totalling %dc to fee line of %dc",
				agg.ChargeCount, agg.FeeType, agg.TotalFeeCents, line.AmountCents),
			CreatedAt: uc.now(),
		}
		if err := uc.accruedRepo.MarkMatched(
			ctx, input.TenantID, agg.ChargeIDs, line.ID, audit); err != nil {
			return nil, err
		}

		usedLines[line.ID] = true
		lineID := line.ID
		agg.Matched = true
		agg.FeeLineID = &lineID
		agg.FeeLineCents = line.AmountCents
		agg.DifferenceCents = agg.TotalFeeCents - line.AmountCents
		output.Matched++
	}

	output.Aggregates = aggregates
	return output, nil
}

func groupByFeeType(charges []entity.AccruedBankCharge) []FeeAggregate {
	byType := make(map[string]*FeeAggregate)
	for i := range charges {
		c := charges[i]
		agg, ok := byType[c.FeeType]
		if !ok {
			agg = &FeeAggregate{FeeType: c.FeeType}
			byType[c.FeeType] = agg
		}
		agg.TotalFeeCents += c.FeeAmountCents
		agg.ChargeCount++
		agg.ChargeIDs = append(agg.ChargeIDs, c.ID)
	}

	aggregates := make([]FeeAggregate, 0, len(byType))
	for _, agg := range byType {
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].FeeType < aggregates[j].FeeType
	})
	return aggregates
}

func closestFeeLine(
	lines []entity.LedgerTransaction,
	used map[uuid.UUID]bool,
	totalCents int64,
) *entity.LedgerTransaction {
	var best *entity.LedgerTransaction
	var bestDiff int64
	for i := range lines {
		if used[lines[i].ID] {
			continue
		}
		diff := lines[i].AmountCents - totalCents
		if diff < 0 {
			diff = -diff
		}
		if diff > AggregateToleranceCents {
			continue
		}
		if best == nil || diff < bestDiff {
			best = &lines[i]
			bestDiff = diff
		}
	}
	return best
}
