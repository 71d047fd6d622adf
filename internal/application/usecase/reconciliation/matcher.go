// Package reconciliation contains bank statement reconciliation use cases.
package reconciliation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// Confidence multipliers per classification. A candidate's confidence starts
// at the normalized description similarity and is scaled down the further the
// pair sits from an exact match.
const (
	confFactorToleranceMatch = 0.95
	confFactorFeeAdjusted    = 0.9
	confFactorDateMismatch   = 0.9
	confFactorAmountMismatch = 0.8
	confFactorNonCandidate   = 0.5
)

// FeeRange bounds the plausible undisclosed fee for the gross/net inflation
// heuristic. Feed-specific; always supplied from configuration.
type FeeRange struct {
	MinCents int64
	MaxCents int64
}

// Matcher pairs bank statement lines with ledger transactions. It is pure
// over its inputs: the used-ledger bookkeeping lives in a set local to one
// Run call and is never shared across runs.
type Matcher struct {
	policy   valueobject.TolerancePolicy
	feeRange FeeRange
}

// NewMatcher creates a matcher with the given tolerance policy and fee range.
func NewMatcher(policy valueobject.TolerancePolicy, feeRange FeeRange) *Matcher {
	return &Matcher{
		policy:   policy,
		feeRange: feeRange,
	}
}

// candidate is one scored (bank txn, ledger txn) pairing.
type candidate struct {
	ledgerIdx  int
	status     valueobject.MatchStatus
	confidence float64
	reason     string
	eligible   bool
}

// Run produces one match per bank transaction and one per leftover ledger
// transaction, plus a summary of counts per status.
//
// Bank transactions are processed in supplied order; ledger transactions are
// iterated in the order given by the caller (stable by primary key, as
// returned by the store), which fixes the tie-break between candidates of
// equal confidence.
func (m *Matcher) Run(
	tenantID, reconciliationID uuid.UUID,
	bank []entity.BankTransaction,
	ledger []entity.LedgerTransaction,
) ([]entity.Match, entity.MatchSummary) {
	matches := make([]entity.Match, 0, len(bank)+len(ledger))
	var summary entity.MatchSummary

	used := make(map[int]bool, len(ledger))

	for _, bankTxn := range bank {
		best, found := m.bestCandidate(bankTxn, ledger, used)

		if found && best.confidence >= m.policy.SimilarityThreshold {
			used[best.ledgerIdx] = true
			match := m.buildMatch(tenantID, reconciliationID, bankTxn, &ledger[best.ledgerIdx], best)
			matches = append(matches, match)
			summary.Add(match.Status)
			continue
		}

		match := m.buildMatch(tenantID, reconciliationID, bankTxn, nil, candidate{
			status: valueobject.MatchStatusInBankOnly,
			reason: "no ledger transaction found within tolerance",
		})
		matches = append(matches, match)
		summary.Add(match.Status)
	}

	for i := range ledger {
		if used[i] {
			continue
		}
		match := m.buildLedgerOnlyMatch(tenantID, reconciliationID, &ledger[i])
		matches = append(matches, match)
		summary.Add(match.Status)
	}

	return matches, summary
}

// bestCandidate evaluates every unused ledger transaction against the bank
// transaction and returns the eligible candidate with the strictly highest
// confidence. Ties keep the first encountered in ledger order.
func (m *Matcher) bestCandidate(
	bankTxn entity.BankTransaction,
	ledger []entity.LedgerTransaction,
	used map[int]bool,
) (candidate, bool) {
	var best candidate
	found := false

	for i := range ledger {
		if used[i] {
			continue
		}

		cand := m.evaluate(bankTxn, &ledger[i])
		cand.ledgerIdx = i
		if !cand.eligible {
			continue
		}
		if !found || cand.confidence > best.confidence {
			best = cand
			found = true
		}
	}

	return best, found
}

// evaluate classifies one (bank, ledger) pairing in priority order.
func (m *Matcher) evaluate(bankTxn entity.BankTransaction, ledgerTxn *entity.LedgerTransaction) candidate {
	similarity := valueobject.DescriptionSimilarity(
		normalizeDescription(bankTxn.Description),
		normalizeDescription(ledgerTxn.Description),
	)

	signOK := bankTxn.IsCredit == ledgerTxn.IsCredit
	exactAmount := signOK && bankTxn.AmountCents == ledgerTxn.AmountCents
	amountOK := signOK && m.policy.MatchesAmount(bankTxn.AmountCents, ledgerTxn.AmountCents)
	dateOK := m.policy.WithinDateTolerance(bankTxn.Date, ledgerTxn.Date)
	similarOK := similarity >= m.policy.SimilarityThreshold

	switch {
	case exactAmount && dateOK && similarOK:
		return candidate{
			status:     valueobject.MatchStatusMatched,
			confidence: similarity,
			eligible:   true,
		}

	case amountOK && dateOK && similarOK:
		return candidate{
			status:     valueobject.MatchStatusMatched,
			confidence: similarity * confFactorToleranceMatch,
			reason: fmt.Sprintf(
				"amounts differ by %dc, within tolerance",
				absDiff(bankTxn.AmountCents, ledgerTxn.AmountCents),
			),
			eligible: true,
		}

	case signOK && !amountOK && dateOK && similarOK:
		if m.looksFeeInflated(bankTxn.AmountCents, ledgerTxn.AmountCents) {
			return candidate{
				status:     valueobject.MatchStatusFeeAdjusted,
				confidence: similarity * confFactorFeeAdjusted,
				reason: fmt.Sprintf(
					"ledger amount exceeds bank amount by %dc, consistent with an undisclosed fee",
					ledgerTxn.AmountCents-bankTxn.AmountCents,
				),
				eligible: true,
			}
		}
		return candidate{
			status:     valueobject.MatchStatusAmountMismatch,
			confidence: similarity * confFactorAmountMismatch,
			reason: fmt.Sprintf(
				"amounts differ by %dc, outside tolerance",
				absDiff(bankTxn.AmountCents, ledgerTxn.AmountCents),
			),
			eligible: true,
		}

	case amountOK && !dateOK && similarOK:
		return candidate{
			status:     valueobject.MatchStatusDateMismatch,
			confidence: similarity * confFactorDateMismatch,
			reason: fmt.Sprintf(
				"dates differ by %d days, outside tolerance",
				daysApart(bankTxn.Date, ledgerTxn.Date),
			),
			eligible: true,
		}

	default:
		return candidate{
			confidence: similarity * confFactorNonCandidate,
			eligible:   false,
		}
	}
}

// looksFeeInflated applies the gross/net heuristic: the ledger reports more
// than the bank by an amount inside the plausible fee range.
func (m *Matcher) looksFeeInflated(bankCents, ledgerCents int64) bool {
	diff := ledgerCents - bankCents
	return diff >= m.feeRange.MinCents && diff <= m.feeRange.MaxCents
}

func (m *Matcher) buildMatch(
	tenantID, reconciliationID uuid.UUID,
	bankTxn entity.BankTransaction,
	ledgerTxn *entity.LedgerTransaction,
	cand candidate,
) entity.Match {
	match := entity.Match{
		ID:               uuid.New(),
		TenantID:         tenantID,
		ReconciliationID: reconciliationID,
		BankDate:         bankTxn.Date,
		BankDescription:  bankTxn.Description,
		BankAmountCents:  bankTxn.AmountCents,
		BankIsCredit:     bankTxn.IsCredit,
		Status:           cand.status,
		Reason:           cand.reason,
	}

	if ledgerTxn != nil {
		ledgerID := ledgerTxn.ID
		ledgerDate := ledgerTxn.Date
		confidence := cand.confidence
		match.LedgerTransactionID = &ledgerID
		match.LedgerDate = &ledgerDate
		match.LedgerDescription = ledgerTxn.Description
		match.LedgerAmountCents = ledgerTxn.AmountCents
		match.LedgerIsCredit = ledgerTxn.IsCredit
		match.Confidence = &confidence
	}

	return match
}

func (m *Matcher) buildLedgerOnlyMatch(
	tenantID, reconciliationID uuid.UUID,
	ledgerTxn *entity.LedgerTransaction,
) entity.Match {
	ledgerID := ledgerTxn.ID
	ledgerDate := ledgerTxn.Date
	return entity.Match{
		ID:                  uuid.New(),
		TenantID:            tenantID,
		ReconciliationID:    reconciliationID,
		LedgerTransactionID: &ledgerID,
		LedgerDate:          &ledgerDate,
		LedgerDescription:   ledgerTxn.Description,
		LedgerAmountCents:   ledgerTxn.AmountCents,
		LedgerIsCredit:      ledgerTxn.IsCredit,
		Status:              valueobject.MatchStatusInXeroOnly,
		Reason:              "ledger transaction has no bank statement counterpart",
	}
}

func normalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

func daysApart(a, b time.Time) int {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
