// Package valueobject contains domain value objects for the reconciliation core.
package valueobject

// MatchStatus classifies how a bank statement line relates to the ledger.
type MatchStatus string

const (
	MatchStatusMatched        MatchStatus = "MATCHED"
	MatchStatusInBankOnly     MatchStatus = "IN_BANK_ONLY"
	MatchStatusInXeroOnly     MatchStatus = "IN_XERO_ONLY"
	MatchStatusAmountMismatch MatchStatus = "AMOUNT_MISMATCH"
	MatchStatusDateMismatch   MatchStatus = "DATE_MISMATCH"
	MatchStatusFeeAdjusted    MatchStatus = "FEE_ADJUSTED_MATCH"
)

// IsResolved reports whether the status counts as settled when deriving the
// reconciliation status. Date mismatches and fee-adjusted matches are linked
// to a ledger transaction, so they do not block reconciliation.
func (s MatchStatus) IsResolved() bool {
	switch s {
	case MatchStatusMatched, MatchStatusFeeAdjusted, MatchStatusDateMismatch:
		return true
	default:
		return false
	}
}

// ReconciliationStatus is the derived state of a reconciliation period.
type ReconciliationStatus string

const (
	ReconciliationStatusInProgress  ReconciliationStatus = "IN_PROGRESS"
	ReconciliationStatusReconciled  ReconciliationStatus = "RECONCILED"
	ReconciliationStatusDiscrepancy ReconciliationStatus = "DISCREPANCY"
)

// AccruedChargeStatus tracks whether an accrued bank charge has been matched
// to a standalone fee line in the ledger.
type AccruedChargeStatus string

const (
	AccruedChargeStatusAccrued AccruedChargeStatus = "ACCRUED"
	AccruedChargeStatusMatched AccruedChargeStatus = "MATCHED"
)

// DuplicateDecision is a human ruling on an apparent re-imported bank entry.
type DuplicateDecision string

const (
	DuplicateDecisionFalsePositive      DuplicateDecision = "FALSE_POSITIVE"
	DuplicateDecisionConfirmedDuplicate DuplicateDecision = "CONFIRMED_DUPLICATE"
)

// HistoryAction is the kind of manual override recorded in match history.
type HistoryAction string

const (
	HistoryActionMatch   HistoryAction = "MATCH"
	HistoryActionUnmatch HistoryAction = "UNMATCH"
)
