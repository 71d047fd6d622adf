// Package feecorrection corrects matches broken by fee-inflated ledger
// amounts: the banking feed sometimes records the gross amount (net plus an
// undisclosed processing fee) while the statement shows the net, which the
// matching engine flags as AMOUNT_MISMATCH.
package feecorrection

import (
	"context"
	"fmt"
	"strings"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
)

// MinCorrectionConfidence is the minimum detection confidence required before
// a correction may be applied.
const MinCorrectionConfidence = 0.85

const (
	tightFeeDeltaCents = 50
	looseFeeDeltaCents = 200
)

// Fee types assigned by the description classifier.
const (
	FeeTypeCardProcessing = "card_processing"
	FeeTypeDebitOrder     = "debit_order"
	FeeTypeCashDeposit    = "cash_deposit"
	FeeTypeInternational  = "international_payment"
	FeeTypeEFT            = "eft"
)

// FeeDetection is the outcome of probing one amount pair for fee inflation.
type FeeDetection struct {
	IsMatch          bool
	Confidence       float64
	FeeType          string
	ExpectedFeeCents *int64 // nil when the schedule has no entry for the type
	ActualFeeCents   int64
	Explanation      string
}

// Detector decides whether a ledger/bank amount difference is explained by a
// known fee. The expected fee comes from the injected schedule provider.
type Detector struct {
	schedule adapter.FeeScheduleProvider
}

// NewDetector creates a new Detector instance.
func NewDetector(schedule adapter.FeeScheduleProvider) *Detector {
	return &Detector{schedule: schedule}
}

// Detect probes one bank/ledger amount pair. Returns (nil, nil) when fee
// inflation does not apply, i.e. the ledger amount is not above the bank
// amount.
func (d *Detector) Detect(
	ctx context.Context,
	bankCents, ledgerCents int64,
	description string,
) (*FeeDetection, error) {
	if ledgerCents <= bankCents {
		return nil, nil
	}

	actualFee := ledgerCents - bankCents
	feeType := classifyFeeType(description)

	entry, err := d.schedule.Lookup(ctx, feeType)
	if err != nil {
		return nil, err
	}

	det := &FeeDetection{
		FeeType:        feeType,
		ActualFeeCents: actualFee,
	}

	if entry != nil {
		expected := entry.ExpectedFeeCents
		det.ExpectedFeeCents = &expected

		delta := actualFee - expected
		if delta < 0 {
			delta = -delta
		}
		switch {
		case delta <= tightFeeDeltaCents:
			det.Confidence = 0.95
		case delta <= looseFeeDeltaCents:
			det.Confidence = 0.85
		default:
			det.Confidence = 0.1
		}
		det.Explanation = fmt.Sprintf(
			"fee of %dc vs expected %dc for %s", actualFee, expected, feeType)
	} else {
		if actualFee*10 <= ledgerCents {
			det.Confidence = 0.5
		} else {
			det.Confidence = 0.1
		}
		det.Explanation = fmt.Sprintf(
			"fee of %dc with no schedule entry for %s", actualFee, feeType)
	}

	det.IsMatch = det.Confidence >= MinCorrectionConfidence
	return det, nil
}

func classifyFeeType(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "card") || strings.Contains(desc, "pos "):
		return FeeTypeCardProcessing
	case strings.Contains(desc, "debit order") || strings.Contains(desc, "debicheck"):
		return FeeTypeDebitOrder
	case strings.Contains(desc, "cash"):
		return FeeTypeCashDeposit
	case strings.Contains(desc, "swift") || strings.Contains(desc, "international"):
		return FeeTypeInternational
	default:
		return FeeTypeEFT
	}
}
