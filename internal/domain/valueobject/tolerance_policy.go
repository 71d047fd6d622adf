// Package valueobject contains domain value objects for the reconciliation core.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
)

// Bounds for tolerance validation. Values outside these ranges are rejected
// outright rather than clamped.
const (
	MaxAbsoluteToleranceCents int64   = 100000 // R1000.00
	MaxPercentTolerance       float64 = 0.5
)

// TolerancePolicy decides whether two amounts, dates, or descriptions are
// close enough to pair, and how much confidence a near-miss costs.
type TolerancePolicy struct {
	// Amount tolerance: combined per UseHigherTolerance
	AbsoluteCents int64
	Percent       float64

	// UseHigherTolerance selects max(absolute, percent-derived) as the
	// effective tolerance; false selects min.
	UseHigherTolerance bool

	// Date tolerance in days, inclusive.
	DateToleranceDays int

	// Minimum normalized description similarity for a candidate.
	SimilarityThreshold float64

	// Cap on the confidence reduction applied for in-tolerance deviation.
	MaxConfidencePenalty float64
}

// DefaultTolerancePolicy returns the policy used when no configuration is supplied.
func DefaultTolerancePolicy() TolerancePolicy {
	return TolerancePolicy{
		AbsoluteCents:        100,
		Percent:              0.01,
		UseHigherTolerance:   true,
		DateToleranceDays:    3,
		SimilarityThreshold:  0.65,
		MaxConfidencePenalty: 0.2,
	}
}

// Validate checks the configured tolerances, failing fast with a coded error.
func (p TolerancePolicy) Validate() error {
	if p.AbsoluteCents < 0 || p.AbsoluteCents > MaxAbsoluteToleranceCents {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidTolerance,
			"absolute tolerance out of range",
			domainerror.ErrInvalidTolerance,
		).WithDetail("absolute_cents", p.AbsoluteCents)
	}
	if p.Percent < 0 || p.Percent > MaxPercentTolerance {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidTolerance,
			"percentage tolerance out of range",
			domainerror.ErrInvalidTolerance,
		).WithDetail("percent", p.Percent)
	}
	return nil
}

// EffectiveToleranceCents computes the tolerance applied to a pair of amounts.
// The percentage component scales with the larger absolute amount.
func (p TolerancePolicy) EffectiveToleranceCents(aCents, bCents int64) int64 {
	larger := absCents(aCents)
	if absCents(bCents) > larger {
		larger = absCents(bCents)
	}

	pctTolerance := decimal.NewFromInt(larger).
		Mul(decimal.NewFromFloat(p.Percent)).
		IntPart()

	if p.UseHigherTolerance {
		if pctTolerance > p.AbsoluteCents {
			return pctTolerance
		}
		return p.AbsoluteCents
	}
	if pctTolerance < p.AbsoluteCents {
		return pctTolerance
	}
	return p.AbsoluteCents
}

// MatchesAmount reports whether the two amounts agree within the effective tolerance.
func (p TolerancePolicy) MatchesAmount(aCents, bCents int64) bool {
	deviation := absCents(aCents - bCents)
	return deviation <= p.EffectiveToleranceCents(aCents, bCents)
}

// WithinDateTolerance reports whether two dates are at most DateToleranceDays
// apart, inclusive.
func (p TolerancePolicy) WithinDateTolerance(a, b time.Time) bool {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days <= p.DateToleranceDays
}

// ConfidencePenalty returns a non-positive adjustment proportional to how far
// into the tolerance band the deviation sits. An exact match costs nothing;
// a deviation at the edge of the band costs MaxConfidencePenalty.
func (p TolerancePolicy) ConfidencePenalty(aCents, bCents int64) float64 {
	deviation := absCents(aCents - bCents)
	if deviation == 0 {
		return 0
	}

	effective := p.EffectiveToleranceCents(aCents, bCents)
	if effective == 0 {
		return -p.MaxConfidencePenalty
	}

	penalty := p.MaxConfidencePenalty * float64(deviation) / float64(effective)
	if penalty > p.MaxConfidencePenalty {
		penalty = p.MaxConfidencePenalty
	}
	return -penalty
}

func absCents(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
