package reconciliation

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

func testMatcher() *Matcher {
	return NewMatcher(valueobject.DefaultTolerancePolicy(), FeeRange{MinCents: 100, MaxCents: 5000})
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func bankTxn(d int, desc string, cents int64, credit bool) entity.BankTransaction {
	return entity.BankTransaction{Date: day(d), Description: desc, AmountCents: cents, IsCredit: credit}
}

func ledgerTxn(d int, desc string, cents int64, credit bool) entity.LedgerTransaction {
	return entity.LedgerTransaction{
		ID:          uuid.New(),
		Date:        day(d),
		Description: desc,
		AmountCents: cents,
		IsCredit:    credit,
	}
}

func TestMatcher_Run(t *testing.T) {
	tenantID := uuid.New()
	recID := uuid.New()

	t.Run("exact match scores full similarity", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "SCHOOL FEES J SMITH", 50000, true)}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "School Fees J Smith", 50000, true)}

		matches, summary := testMatcher().Run(tenantID, recID, bank, ledger)

		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
		if matches[0].Status != valueobject.MatchStatusMatched {
			t.Errorf("expected MATCHED, got %s", matches[0].Status)
		}
		if matches[0].Confidence == nil || *matches[0].Confidence != 1 {
			t.Errorf("expected confidence 1, got %v", matches[0].Confidence)
		}
		if summary.Matched != 1 || summary.Total != 1 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("amounts within tolerance still match with reduced confidence", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "school fee payment", 10000, true)}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "school fee payment", 10050, true)}

		matches, _ := testMatcher().Run(tenantID, recID, bank, ledger)

		if matches[0].Status != valueobject.MatchStatusMatched {
			t.Fatalf("expected MATCHED, got %s", matches[0].Status)
		}
		if matches[0].Confidence == nil || *matches[0].Confidence != 0.95 {
			t.Errorf("expected confidence 0.95, got %v", matches[0].Confidence)
		}
		if matches[0].Reason == "" {
			t.Error("expected a reason for the tolerance match")
		}
	})

	t.Run("fee inflated ledger amount classifies as fee adjusted", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "card settlement", 10000, true)}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "card settlement", 10350, true)}

		matches, summary := testMatcher().Run(tenantID, recID, bank, ledger)

		if matches[0].Status != valueobject.MatchStatusFeeAdjusted {
			t.Fatalf("expected FEE_ADJUSTED_MATCH, got %s", matches[0].Status)
		}
		if matches[0].Confidence == nil || *matches[0].Confidence != 0.9 {
			t.Errorf("expected confidence 0.9, got %v", matches[0].Confidence)
		}
		if summary.FeeAdjusted != 1 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("amount difference beyond fee range is a mismatch", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "supplier payment", 10000, false)}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "supplier payment", 20000, false)}

		matches, _ := testMatcher().Run(tenantID, recID, bank, ledger)

		if matches[0].Status != valueobject.MatchStatusAmountMismatch {
			t.Fatalf("expected AMOUNT_MISMATCH, got %s", matches[0].Status)
		}
		if matches[0].LedgerTransactionID == nil {
			t.Error("expected the mismatch to stay linked to the ledger transaction")
		}
	})

	t.Run("dates outside tolerance classify as date mismatch", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "monthly rent", 80000, false)}
		ledger := []entity.LedgerTransaction{ledgerTxn(15, "monthly rent", 80000, false)}

		matches, _ := testMatcher().Run(tenantID, recID, bank, ledger)

		if matches[0].Status != valueobject.MatchStatusDateMismatch {
			t.Fatalf("expected DATE_MISMATCH, got %s", matches[0].Status)
		}
	})

	t.Run("opposite direction never pairs", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "refund acme", 5000, true)}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "refund acme", 5000, false)}

		matches, summary := testMatcher().Run(tenantID, recID, bank, ledger)

		if len(matches) != 2 {
			t.Fatalf("expected 2 one-sided rows, got %d", len(matches))
		}
		if summary.InBankOnly != 1 || summary.InXeroOnly != 1 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("dissimilar descriptions never pair", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "electricity prepaid", 5000, false)}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "salary advance q4", 5000, false)}

		matches, _ := testMatcher().Run(tenantID, recID, bank, ledger)

		if matches[0].Status != valueobject.MatchStatusInBankOnly {
			t.Errorf("expected IN_BANK_ONLY, got %s", matches[0].Status)
		}
	})

	t.Run("each ledger transaction is consumed at most once", func(t *testing.T) {
		bank := []entity.BankTransaction{
			bankTxn(10, "school fees j smith", 50000, true),
			bankTxn(10, "school fees j smith", 50000, true),
		}
		ledger := []entity.LedgerTransaction{ledgerTxn(10, "school fees j smith", 50000, true)}

		matches, summary := testMatcher().Run(tenantID, recID, bank, ledger)

		if summary.Matched != 1 || summary.InBankOnly != 1 {
			t.Errorf("unexpected summary: %+v", summary)
		}
		if len(matches) != 2 {
			t.Errorf("expected 2 rows, got %d", len(matches))
		}
	})

	t.Run("highest confidence candidate wins", func(t *testing.T) {
		bank := []entity.BankTransaction{bankTxn(10, "school fees j smith", 50000, true)}
		near := ledgerTxn(10, "school fees j smyth", 50000, true)
		exact := ledgerTxn(10, "school fees j smith", 50000, true)
		ledger := []entity.LedgerTransaction{near, exact}

		matches, _ := testMatcher().Run(tenantID, recID, bank, ledger)

		matched := matches[0]
		if matched.LedgerTransactionID == nil || *matched.LedgerTransactionID != exact.ID {
			t.Error("expected the exact-description candidate to win")
		}
	})

	t.Run("leftover ledger transactions become ledger-only rows", func(t *testing.T) {
		ledger := []entity.LedgerTransaction{ledgerTxn(12, "unbanked invoice", 7500, true)}

		matches, summary := testMatcher().Run(tenantID, recID, nil, ledger)

		if len(matches) != 1 {
			t.Fatalf("expected 1 row, got %d", len(matches))
		}
		if matches[0].Status != valueobject.MatchStatusInXeroOnly {
			t.Errorf("expected IN_XERO_ONLY, got %s", matches[0].Status)
		}
		if matches[0].HasBankSide() {
			t.Error("expected no bank snapshot on a ledger-only row")
		}
		if summary.InXeroOnly != 1 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("empty inputs produce an empty run", func(t *testing.T) {
		matches, summary := testMatcher().Run(tenantID, recID, nil, nil)

		if len(matches) != 0 || summary.Total != 0 {
			t.Errorf("expected empty run, got %d rows, summary %+v", len(matches), summary)
		}
	})
}
