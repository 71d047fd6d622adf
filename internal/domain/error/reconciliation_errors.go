// Package error defines domain-specific errors for the reconciliation service.
package error

import "errors"

// Reconciliation domain errors.
var (
	// ErrReconciliationNotFound is returned when a reconciliation is absent or
	// belongs to another tenant.
	ErrReconciliationNotFound = errors.New("reconciliation not found")

	// ErrReconciliationFinalized is returned when mutating a reconciliation
	// that was explicitly completed.
	ErrReconciliationFinalized = errors.New("reconciliation already finalized")

	// ErrReconciliationNotBalanced is returned when completing a reconciliation
	// whose derived status is not RECONCILED.
	ErrReconciliationNotBalanced = errors.New("reconciliation is not in a reconciled state")

	// ErrInvalidTolerance is returned when a tolerance configuration is out of range.
	ErrInvalidTolerance = errors.New("invalid tolerance configuration")

	// ErrInvalidPeriod is returned when a statement period is malformed.
	ErrInvalidPeriod = errors.New("invalid statement period")

	// ErrEmptyStatement is returned when a parsed statement carries no entries.
	ErrEmptyStatement = errors.New("statement has no entries")

	// ErrInvalidDuplicateDecision is returned when a duplicate resolution uses
	// an unknown decision value.
	ErrInvalidDuplicateDecision = errors.New("invalid duplicate decision")
)

// ReconciliationErrorCode defines error codes for this service.
// Format: AAA-XXYYYY where AAA is the area, XX the category, YYYY the error.
type ReconciliationErrorCode string

const (
	// Reconciliation errors (RCN)
	ErrCodeReconciliationNotFound ReconciliationErrorCode = "RCN-010001"
	ErrCodeReconciliationFinal    ReconciliationErrorCode = "RCN-010002"
	ErrCodeInvalidTolerance       ReconciliationErrorCode = "RCN-010003"
	ErrCodeInvalidPeriod          ReconciliationErrorCode = "RCN-010004"
	ErrCodeEmptyStatement         ReconciliationErrorCode = "RCN-010005"
	ErrCodeNotBalanced            ReconciliationErrorCode = "RCN-010006"
	ErrCodeLockNotAcquired        ReconciliationErrorCode = "RCN-020001"

	// Match / manual override errors (MAT)
	ErrCodeMatchNotFound        ReconciliationErrorCode = "MAT-010001"
	ErrCodeLedgerTxnNotFound    ReconciliationErrorCode = "MAT-010002"
	ErrCodeAmountIncompatible   ReconciliationErrorCode = "MAT-010003"
	ErrCodeNotCurrentlyMatched  ReconciliationErrorCode = "MAT-010004"
	ErrCodeNoHistoryToUndo      ReconciliationErrorCode = "MAT-010005"
	ErrCodeNoPreviousTxnToUndo  ReconciliationErrorCode = "MAT-010006"
	ErrCodeLedgerTxnAlreadyUsed ReconciliationErrorCode = "MAT-010007"

	// Fee correction errors (FEE)
	ErrCodeFeeCorrectionBelowThreshold ReconciliationErrorCode = "FEE-010001"
	ErrCodeFeeCorrectionNotApplicable  ReconciliationErrorCode = "FEE-010002"

	// Duplicate detection errors (DUP)
	ErrCodeInvalidDuplicateDecision ReconciliationErrorCode = "DUP-010001"

	// Auth errors (AUT)
	ErrCodeMissingToken ReconciliationErrorCode = "AUT-010001"
	ErrCodeInvalidToken ReconciliationErrorCode = "AUT-010002"
	ErrCodeRateLimited  ReconciliationErrorCode = "AUT-020001"
)

// ReconciliationError is a coded domain error carrying enough structured
// context to render an actionable message without re-deriving it from logs.
type ReconciliationError struct {
	Code    ReconciliationErrorCode
	Message string
	Err     error
	Details map[string]any
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// WithDetail attaches a structured key/value to the error and returns it.
func (e *ReconciliationError) WithDetail(key string, value any) *ReconciliationError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewReconciliationError creates a new ReconciliationError with the given code and message.
func NewReconciliationError(code ReconciliationErrorCode, message string, err error) *ReconciliationError {
	return &ReconciliationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
