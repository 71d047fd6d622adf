package valueobject

import "testing"

func TestCalculateClosingBalance(t *testing.T) {
	t.Run("credits add and debits subtract", func(t *testing.T) {
		lines := []BalanceLine{
			{AmountCents: 5000, IsCredit: true},
			{AmountCents: 2000, IsCredit: false},
		}

		if got := CalculateClosingBalance(10000, lines); got != 13000 {
			t.Errorf("expected 13000, got %d", got)
		}
	})

	t.Run("no lines returns the opening balance", func(t *testing.T) {
		if got := CalculateClosingBalance(12345, nil); got != 12345 {
			t.Errorf("expected 12345, got %d", got)
		}
	})

	t.Run("balance may go negative", func(t *testing.T) {
		lines := []BalanceLine{
			{AmountCents: 5000, IsCredit: false},
		}

		if got := CalculateClosingBalance(1000, lines); got != -4000 {
			t.Errorf("expected -4000, got %d", got)
		}
	})

	t.Run("order of lines does not matter", func(t *testing.T) {
		forward := []BalanceLine{
			{AmountCents: 333, IsCredit: true},
			{AmountCents: 111, IsCredit: false},
			{AmountCents: 999, IsCredit: true},
		}
		reversed := []BalanceLine{
			{AmountCents: 999, IsCredit: true},
			{AmountCents: 111, IsCredit: false},
			{AmountCents: 333, IsCredit: true},
		}

		if CalculateClosingBalance(0, forward) != CalculateClosingBalance(0, reversed) {
			t.Error("expected closing balance to be independent of line order")
		}
	})

	t.Run("many small entries accumulate exactly", func(t *testing.T) {
		lines := make([]BalanceLine, 10000)
		for i := range lines {
			lines[i] = BalanceLine{AmountCents: 1, IsCredit: true}
		}

		if got := CalculateClosingBalance(0, lines); got != 10000 {
			t.Errorf("expected 10000, got %d", got)
		}
	})
}
