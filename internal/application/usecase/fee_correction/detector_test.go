package feecorrection

import (
	"context"
	"testing"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
)

// scheduleStub serves a fixed fee table keyed by fee type.
type scheduleStub struct {
	entries map[string]int64
}

func (s *scheduleStub) Lookup(_ context.Context, transactionType string) (*adapter.FeeScheduleEntry, error) {
	cents, ok := s.entries[transactionType]
	if !ok {
		return nil, nil
	}
	return &adapter.FeeScheduleEntry{FeeType: transactionType, ExpectedFeeCents: cents}, nil
}

func testDetector() *Detector {
	return NewDetector(&scheduleStub{entries: map[string]int64{
		FeeTypeCardProcessing: 250,
		FeeTypeEFT:            150,
	}})
}

func TestDetector_Detect(t *testing.T) {
	ctx := context.Background()

	t.Run("ledger at or below bank amount is not fee inflation", func(t *testing.T) {
		det, err := testDetector().Detect(ctx, 10000, 10000, "card purchase")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det != nil {
			t.Errorf("expected nil detection, got %+v", det)
		}

		det, err = testDetector().Detect(ctx, 10000, 9000, "card purchase")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det != nil {
			t.Errorf("expected nil detection, got %+v", det)
		}
	})

	t.Run("fee near the scheduled amount scores 0.95", func(t *testing.T) {
		// Actual fee 275c vs scheduled 250c, delta 25c.
		det, err := testDetector().Detect(ctx, 10000, 10275, "card settlement batch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det == nil {
			t.Fatal("expected a detection")
		}
		if det.Confidence != 0.95 {
			t.Errorf("expected confidence 0.95, got %f", det.Confidence)
		}
		if !det.IsMatch {
			t.Error("expected IsMatch at 0.95 confidence")
		}
		if det.FeeType != FeeTypeCardProcessing {
			t.Errorf("expected %s, got %s", FeeTypeCardProcessing, det.FeeType)
		}
		if det.ExpectedFeeCents == nil || *det.ExpectedFeeCents != 250 {
			t.Errorf("expected expected fee 250, got %v", det.ExpectedFeeCents)
		}
		if det.ActualFeeCents != 275 {
			t.Errorf("expected actual fee 275, got %d", det.ActualFeeCents)
		}
	})

	t.Run("fee loosely near the scheduled amount scores 0.85", func(t *testing.T) {
		// Actual fee 400c vs scheduled 250c, delta 150c.
		det, err := testDetector().Detect(ctx, 10000, 10400, "card settlement batch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det.Confidence != 0.85 {
			t.Errorf("expected confidence 0.85, got %f", det.Confidence)
		}
		if !det.IsMatch {
			t.Error("expected IsMatch at the minimum correction confidence")
		}
	})

	t.Run("fee far from the scheduled amount scores 0.1", func(t *testing.T) {
		// Actual fee 1000c vs scheduled 250c, delta 750c.
		det, err := testDetector().Detect(ctx, 10000, 11000, "card settlement batch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det.Confidence != 0.1 {
			t.Errorf("expected confidence 0.1, got %f", det.Confidence)
		}
		if det.IsMatch {
			t.Error("expected IsMatch false below the minimum correction confidence")
		}
	})

	t.Run("unscheduled type with small relative fee scores 0.5", func(t *testing.T) {
		// Cash deposit has no schedule entry; fee is 5% of the ledger amount.
		det, err := testDetector().Detect(ctx, 9500, 10000, "cash deposit branch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det.FeeType != FeeTypeCashDeposit {
			t.Errorf("expected %s, got %s", FeeTypeCashDeposit, det.FeeType)
		}
		if det.ExpectedFeeCents != nil {
			t.Errorf("expected nil expected fee, got %v", det.ExpectedFeeCents)
		}
		if det.Confidence != 0.5 {
			t.Errorf("expected confidence 0.5, got %f", det.Confidence)
		}
		if det.IsMatch {
			t.Error("expected IsMatch false at 0.5 confidence")
		}
	})

	t.Run("unscheduled type with large relative fee scores 0.1", func(t *testing.T) {
		// Fee is 20% of the ledger amount.
		det, err := testDetector().Detect(ctx, 8000, 10000, "cash deposit branch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if det.Confidence != 0.1 {
			t.Errorf("expected confidence 0.1, got %f", det.Confidence)
		}
	})
}

func TestClassifyFeeType(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"CARD settlement merchant 123", FeeTypeCardProcessing},
		{"POS purchase grocer", FeeTypeCardProcessing},
		{"debit order insurance", FeeTypeDebitOrder},
		{"DebiCheck premium collection", FeeTypeDebitOrder},
		{"cash deposit atm", FeeTypeCashDeposit},
		{"SWIFT transfer inbound", FeeTypeInternational},
		{"international payment received", FeeTypeInternational},
		{"regular transfer", FeeTypeEFT},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := classifyFeeType(tt.description); got != tt.want {
				t.Errorf("classifyFeeType(%q) = %s, want %s", tt.description, got, tt.want)
			}
		})
	}
}
