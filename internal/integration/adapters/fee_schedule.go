// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
)

// DefaultFeeSchedule returns the built-in expected fees per transaction type,
// in cents. Banks publish these per account tier; the defaults cover a
// standard business account.
func DefaultFeeSchedule() map[string]int64 {
	return map[string]int64{
		"card_processing":       250,
		"debit_order":           350,
		"cash_deposit":          1200,
		"international_payment": 4500,
		"eft":                   150,
	}
}

// staticFeeSchedule implements the adapter.FeeScheduleProvider interface over
// an in-memory table.
type staticFeeSchedule struct {
	entries map[string]int64
}

// NewStaticFeeSchedule creates a fee schedule provider over the given table.
// A nil table falls back to DefaultFeeSchedule.
func NewStaticFeeSchedule(entries map[string]int64) adapter.FeeScheduleProvider {
	if entries == nil {
		entries = DefaultFeeSchedule()
	}
	return &staticFeeSchedule{
		entries: entries,
	}
}

// Lookup returns the schedule entry for a transaction type, or (nil, nil)
// when the schedule has no entry for it.
func (s *staticFeeSchedule) Lookup(_ context.Context, transactionType string) (*adapter.FeeScheduleEntry, error) {
	expected, ok := s.entries[transactionType]
	if !ok {
		return nil, nil
	}
	return &adapter.FeeScheduleEntry{
		FeeType:          transactionType,
		ExpectedFeeCents: expected,
	}, nil
}
