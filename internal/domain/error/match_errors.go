// Package error defines domain-specific errors for the reconciliation service.
package error

import "errors"

// Match and manual-override domain errors.
var (
	// ErrMatchNotFound is returned when a match is absent or belongs to another tenant.
	ErrMatchNotFound = errors.New("match not found")

	// ErrLedgerTransactionNotFound is returned when a referenced ledger
	// transaction is absent or belongs to another tenant.
	ErrLedgerTransactionNotFound = errors.New("ledger transaction not found")

	// ErrAmountIncompatible is returned when a manual match exceeds the fixed
	// sanity tolerance between the bank amount and the ledger amount.
	ErrAmountIncompatible = errors.New("amounts differ beyond manual match tolerance")

	// ErrNotCurrentlyMatched is returned when unmatching a match with no linked
	// ledger transaction.
	ErrNotCurrentlyMatched = errors.New("match is not currently matched")

	// ErrNoHistoryToUndo is returned when a match has no manual history entries.
	ErrNoHistoryToUndo = errors.New("no manual match history to undo")

	// ErrNoPreviousTransaction is returned when an undo would need to restore a
	// previous ledger transaction that does not exist.
	ErrNoPreviousTransaction = errors.New("no previous transaction to restore")

	// ErrLedgerTransactionInUse is returned when a ledger transaction is
	// already linked to another active match in the reconciliation.
	ErrLedgerTransactionInUse = errors.New("ledger transaction already matched")
)
