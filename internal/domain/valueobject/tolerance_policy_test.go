package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
)

func TestTolerancePolicy_EffectiveToleranceCents(t *testing.T) {
	t.Run("absolute wins for small amounts when using higher tolerance", func(t *testing.T) {
		policy := DefaultTolerancePolicy()

		// 1% of R50.00 is 50c, below the 100c absolute floor.
		if got := policy.EffectiveToleranceCents(5000, 5000); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("percentage wins for large amounts when using higher tolerance", func(t *testing.T) {
		policy := DefaultTolerancePolicy()

		// 1% of R1000.00 is 1000c.
		if got := policy.EffectiveToleranceCents(100000, 99000); got != 1000 {
			t.Errorf("expected 1000, got %d", got)
		}
	})

	t.Run("lower tolerance selects the smaller bound", func(t *testing.T) {
		policy := DefaultTolerancePolicy()
		policy.UseHigherTolerance = false

		if got := policy.EffectiveToleranceCents(100000, 99000); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
		if got := policy.EffectiveToleranceCents(5000, 5000); got != 50 {
			t.Errorf("expected 50, got %d", got)
		}
	})

	t.Run("percentage scales with the larger absolute amount", func(t *testing.T) {
		policy := DefaultTolerancePolicy()

		// Negative amounts count by magnitude: 1% of 200000 is 2000c.
		if got := policy.EffectiveToleranceCents(-200000, 1000); got != 2000 {
			t.Errorf("expected 2000, got %d", got)
		}
	})
}

func TestTolerancePolicy_MatchesAmount(t *testing.T) {
	policy := DefaultTolerancePolicy()

	tests := []struct {
		name string
		a, b int64
		want bool
	}{
		{"exact", 10000, 10000, true},
		{"within absolute tolerance", 10000, 10050, true},
		{"at tolerance boundary", 10000, 10100, true},
		{"just outside tolerance", 10000, 10102, false},
		{"large amounts use percentage", 1000000, 1005000, true},
		{"large amounts beyond percentage", 1000000, 1020000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.MatchesAmount(tt.a, tt.b); got != tt.want {
				t.Errorf("MatchesAmount(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// A smaller deviation must never fail where a larger one matched.
func TestTolerancePolicy_MatchesAmountMonotonic(t *testing.T) {
	lower := DefaultTolerancePolicy()
	lower.UseHigherTolerance = false

	absoluteOnly := DefaultTolerancePolicy()
	absoluteOnly.Percent = 0
	absoluteOnly.AbsoluteCents = 250

	policies := map[string]TolerancePolicy{
		"default":         DefaultTolerancePolicy(),
		"lower tolerance": lower,
		"absolute only":   absoluteOnly,
	}

	const base = int64(10000)
	for name, policy := range policies {
		t.Run(name, func(t *testing.T) {
			largerMatched := false
			for deviation := int64(1500); deviation >= 0; deviation-- {
				got := policy.MatchesAmount(base, base+deviation)
				if largerMatched && !got {
					t.Fatalf("deviation %d rejected although %d matched", deviation, deviation+1)
				}
				if got {
					largerMatched = true
				}
			}
			if !largerMatched {
				t.Fatal("expected at least the exact amount to match")
			}
		})
	}
}

func TestTolerancePolicy_WithinDateTolerance(t *testing.T) {
	policy := DefaultTolerancePolicy()
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	if !policy.WithinDateTolerance(base, base.AddDate(0, 0, 3)) {
		t.Error("expected 3 days apart to be within tolerance")
	}
	if !policy.WithinDateTolerance(base.AddDate(0, 0, 3), base) {
		t.Error("expected tolerance to be symmetric")
	}
	if policy.WithinDateTolerance(base, base.AddDate(0, 0, 4)) {
		t.Error("expected 4 days apart to be outside tolerance")
	}
}

func TestTolerancePolicy_ConfidencePenalty(t *testing.T) {
	policy := DefaultTolerancePolicy()

	t.Run("exact match costs nothing", func(t *testing.T) {
		if got := policy.ConfidencePenalty(10000, 10000); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})

	t.Run("edge of band costs the full penalty", func(t *testing.T) {
		if got := policy.ConfidencePenalty(5000, 5100); got != -policy.MaxConfidencePenalty {
			t.Errorf("expected %f, got %f", -policy.MaxConfidencePenalty, got)
		}
	})

	t.Run("half-band deviation costs half", func(t *testing.T) {
		got := policy.ConfidencePenalty(10000, 10050)
		want := -policy.MaxConfidencePenalty / 2
		if got != want {
			t.Errorf("expected %f, got %f", want, got)
		}
	})
}

func TestTolerancePolicy_Validate(t *testing.T) {
	t.Run("default policy is valid", func(t *testing.T) {
		if err := DefaultTolerancePolicy().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("negative absolute tolerance rejected", func(t *testing.T) {
		policy := DefaultTolerancePolicy()
		policy.AbsoluteCents = -1

		err := policy.Validate()
		if !errors.Is(err, domainerror.ErrInvalidTolerance) {
			t.Errorf("expected ErrInvalidTolerance, got %v", err)
		}
	})

	t.Run("absolute tolerance above cap rejected", func(t *testing.T) {
		policy := DefaultTolerancePolicy()
		policy.AbsoluteCents = MaxAbsoluteToleranceCents + 1

		if err := policy.Validate(); err == nil {
			t.Error("expected error for absolute tolerance above cap")
		}
	})

	t.Run("percentage above cap rejected", func(t *testing.T) {
		policy := DefaultTolerancePolicy()
		policy.Percent = MaxPercentTolerance + 0.01

		err := policy.Validate()
		var recErr *domainerror.ReconciliationError
		if !errors.As(err, &recErr) {
			t.Fatalf("expected ReconciliationError, got %v", err)
		}
		if recErr.Code != domainerror.ErrCodeInvalidTolerance {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTolerance, recErr.Code)
		}
	})
}
