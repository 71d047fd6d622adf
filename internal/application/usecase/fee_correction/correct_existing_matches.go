package feecorrection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/application/usecase/reconciliation"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// CorrectExistingMatchesInput represents the input for a correction sweep.
type CorrectExistingMatchesInput struct {
	TenantID uuid.UUID
	Actor    uuid.UUID
	DryRun   bool
}

// CorrectionCandidate is one AMOUNT_MISMATCH match the detector accepted.
type CorrectionCandidate struct {
	MatchID             uuid.UUID
	LedgerTransactionID uuid.UUID
	BankAmountCents     int64
	LedgerAmountCents   int64
	FeeType             string
	FeeAmountCents      int64
	Confidence          float64
	Explanation         string
}

// SkippedMatch is one AMOUNT_MISMATCH match the detector rejected.
type SkippedMatch struct {
	MatchID    uuid.UUID
	Confidence float64
	Reason     string
}

// CorrectExistingMatchesOutput represents the result of a correction sweep.
type CorrectExistingMatchesOutput struct {
	DryRun     bool
	Candidates []CorrectionCandidate
	Skipped    []SkippedMatch
	Applied    int
}

// CorrectExistingMatchesUseCase sweeps a tenant's AMOUNT_MISMATCH matches and
// rewrites the ones whose difference the detector attributes to a fee. Each
// applied correction is atomic across the ledger rewrite, the accrued charge,
// the match update, and the audit entry.
type CorrectExistingMatchesUseCase struct {
	detector      *Detector
	matchRepo     adapter.MatchRepository
	statusService *reconciliation.StatusService
	now           func() time.Time
}

// NewCorrectExistingMatchesUseCase creates a new CorrectExistingMatchesUseCase instance.
func NewCorrectExistingMatchesUseCase(
	detector *Detector,
	matchRepo adapter.MatchRepository,
	statusService *reconciliation.StatusService,
) *CorrectExistingMatchesUseCase {
	return &CorrectExistingMatchesUseCase{
		detector:      detector,
		matchRepo:     matchRepo,
		statusService: statusService,
		now:           time.Now,
	}
}

// Execute scans the tenant's AMOUNT_MISMATCH matches and applies (or, in
// dry-run, only reports) fee corrections.
func (uc *CorrectExistingMatchesUseCase) Execute(
	ctx context.Context,
	input CorrectExistingMatchesInput,
) (*CorrectExistingMatchesOutput, error) {
	matches, err := uc.matchRepo.ListByStatus(
		ctx, input.TenantID, valueobject.MatchStatusAmountMismatch)
	if err != nil {
		return nil, err
	}

	output := &CorrectExistingMatchesOutput{DryRun: input.DryRun}
	touched := make(map[uuid.UUID]struct{})

	for i := range matches {
		m := matches[i]
		if m.LedgerTransactionID == nil || !m.HasBankSide() {
			continue
		}

		det, err := uc.detector.Detect(
			ctx, m.BankAmountCents, m.LedgerAmountCents, m.LedgerDescription)
		if err != nil {
			return nil, err
		}
		if det == nil {
			output.Skipped = append(output.Skipped, SkippedMatch{
				MatchID: m.ID,
				Reason:  "ledger amount not above bank amount",
			})
			continue
		}
		if !det.IsMatch {
			output.Skipped = append(output.Skipped, SkippedMatch{
				MatchID:    m.ID,
				Confidence: det.Confidence,
				Reason:     det.Explanation,
			})
			continue
		}

		output.Candidates = append(output.Candidates, CorrectionCandidate{
			MatchID:             m.ID,
			LedgerTransactionID: *m.LedgerTransactionID,
			BankAmountCents:     m.BankAmountCents,
			LedgerAmountCents:   m.LedgerAmountCents,
			FeeType:             det.FeeType,
			FeeAmountCents:      det.ActualFeeCents,
			Confidence:          det.Confidence,
			Explanation:         det.Explanation,
		})
		if input.DryRun {
			continue
		}

		if err := uc.apply(ctx, input, &m, det); err != nil {
			return nil, err
		}
		output.Applied++
		touched[m.ReconciliationID] = struct{}{}
	}

	for reconciliationID := range touched {
		if _, err := uc.statusService.Recompute(ctx, input.TenantID, reconciliationID); err != nil {
			return nil, err
		}
	}

	return output, nil
}

func (uc *CorrectExistingMatchesUseCase) apply(
	ctx context.Context,
	input CorrectExistingMatchesInput,
	m *entity.Match,
	det *FeeDetection,
) error {
	grossCents := m.LedgerAmountCents
	netCents := m.BankAmountCents
	ledgerTxnID := *m.LedgerTransactionID

	m.Status = valueobject.MatchStatusFeeAdjusted
	confidence := det.Confidence
	m.Confidence = &confidence
	m.Reason = det.Explanation
	m.IsFeeAdjusted = true
	m.FeeType = det.FeeType
	m.FeeAmountCents = det.ActualFeeCents
	m.LedgerAmountCents = netCents

	charge := entity.AccruedBankCharge{
		ID:                  uuid.New(),
		TenantID:            input.TenantID,
		LedgerTransactionID: ledgerTxnID,
		NetAmountCents:      netCents,
		FeeType:             det.FeeType,
		FeeAmountCents:      det.ActualFeeCents,
		GrossAmountCents:    grossCents,
		ChargeDate:          m.BankDate,
		Status:              valueobject.AccruedChargeStatusAccrued,
	}

	audit := entity.AuditLogEntry{
		ID:                uuid.New(),
		TenantID:          input.TenantID,
		Actor:             input.Actor,
		Action:            "fee_correction.apply",
		EntityType:        "ledger_transaction",
		EntityID:          ledgerTxnID,
		BeforeAmountCents: &grossCents,
		AfterAmountCents:  &netCents,
		ChangedFields:     []string{"amount_cents"},
		Detail:            det.Explanation,
		CreatedAt:         uc.now(),
	}

	return uc.matchRepo.ApplyFeeCorrection(ctx, adapter.FeeCorrectionParams{
		Match:          m,
		LedgerTxnID:    ledgerTxnID,
		NetAmountCents: netCents,
		Charge:         charge,
		Audit:          audit,
	})
}
