// Package valueobject contains domain value objects for the reconciliation core.
package valueobject

import "github.com/shopspring/decimal"

// BalanceLine is one signed statement line for balance arithmetic.
type BalanceLine struct {
	AmountCents int64
	IsCredit    bool
}

// CalculateClosingBalance returns opening + credits - debits in integer cents.
// Summation runs through decimal and converts to int64 exactly once at the
// end, so repeated small entries cannot accumulate rounding drift. Pure; the
// result is independent of line order for a fixed multiset.
func CalculateClosingBalance(openingCents int64, lines []BalanceLine) int64 {
	total := decimal.NewFromInt(openingCents)
	for _, line := range lines {
		amount := decimal.NewFromInt(line.AmountCents)
		if line.IsCredit {
			total = total.Add(amount)
		} else {
			total = total.Sub(amount)
		}
	}
	return total.IntPart()
}
