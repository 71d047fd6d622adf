// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// FeeScheduleEntry is the expected fee for one transaction type.
type FeeScheduleEntry struct {
	FeeType          string
	ExpectedFeeCents int64
}

// FeeScheduleProvider resolves the expected fee for a detected transaction
// type. Injected into the fee inflation corrector so tests can substitute it.
type FeeScheduleProvider interface {
	// Lookup returns the schedule entry for a transaction type, or (nil, nil)
	// when the schedule has no entry for it.
	Lookup(ctx context.Context, transactionType string) (*FeeScheduleEntry, error)
}
