// Package entity contains the core domain entities for the reconciliation service.
package entity

import "time"

// BankTransaction is one parsed bank statement line. It is an input to the
// matching engine and is never persisted on its own; the order supplied by
// the statement parser is significant for tie-breaking.
type BankTransaction struct {
	Date        time.Time
	Description string
	AmountCents int64
	IsCredit    bool
}

// ParsedStatement is the statement-level output of the external document
// parser: ordered entries plus the period bounds and balances printed on the
// statement itself.
type ParsedStatement struct {
	PeriodStart         time.Time
	PeriodEnd           time.Time
	OpeningBalanceCents int64
	ClosingBalanceCents int64
	Entries             []BankTransaction
}
