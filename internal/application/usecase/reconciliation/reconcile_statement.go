// Package reconciliation contains bank statement reconciliation use cases.
package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// ReconcileStatementInput represents the input for reconciling a parsed bank statement.
type ReconcileStatementInput struct {
	TenantID      uuid.UUID
	BankAccountID string
	Statement     entity.ParsedStatement
	Actor         uuid.UUID
}

// ReconcileStatementOutput represents the result of a reconciliation run.
type ReconcileStatementOutput struct {
	ReconciliationID       uuid.UUID
	PeriodStart            time.Time
	PeriodEnd              time.Time
	OpeningBalanceCents    int64
	ClosingBalanceCents    int64
	CalculatedBalanceCents int64
	DiscrepancyCents       int64
	Summary                entity.MatchSummary
	Status                 valueobject.ReconciliationStatus
}

// ReconcileStatementUseCase replaces the match set of a reconciliation period
// from a freshly parsed statement. Matching is sequential by design: match
// selection depends on which ledger transactions earlier statement lines have
// already claimed.
type ReconcileStatementUseCase struct {
	reconciliationRepo    adapter.ReconciliationRepository
	ledgerRepo            adapter.LedgerTransactionRepository
	locker                adapter.ReconciliationLocker
	matcher               *Matcher
	balanceToleranceCents int64
}

// NewReconcileStatementUseCase creates a new ReconcileStatementUseCase instance.
func NewReconcileStatementUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	ledgerRepo adapter.LedgerTransactionRepository,
	locker adapter.ReconciliationLocker,
	matcher *Matcher,
	balanceToleranceCents int64,
) *ReconcileStatementUseCase {
	return &ReconcileStatementUseCase{
		reconciliationRepo:    reconciliationRepo,
		ledgerRepo:            ledgerRepo,
		locker:                locker,
		matcher:               matcher,
		balanceToleranceCents: balanceToleranceCents,
	}
}

// Execute runs a full statement reconciliation. Idempotent: re-running with an
// identical statement and ledger set produces the same summary.
func (uc *ReconcileStatementUseCase) Execute(
	ctx context.Context,
	input ReconcileStatementInput,
) (*ReconcileStatementOutput, error) {
	if err := validateStatement(input.Statement); err != nil {
		return nil, err
	}

	// Single writer per (tenant, account, period): concurrent re-imports must
	// not discard and rebuild the same match set simultaneously.
	release, err := uc.locker.Acquire(ctx, adapter.LockKey{
		TenantID:      input.TenantID,
		BankAccountID: input.BankAccountID,
		PeriodStart:   input.Statement.PeriodStart,
	})
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := uc.reconciliationRepo.FindByPeriod(
		ctx, input.TenantID, input.BankAccountID, input.Statement.PeriodStart,
	)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		rec = &entity.Reconciliation{
			ID:            uuid.New(),
			TenantID:      input.TenantID,
			BankAccountID: input.BankAccountID,
			PeriodStart:   input.Statement.PeriodStart,
			PeriodEnd:     input.Statement.PeriodEnd,
		}
	} else if rec.IsFinalized() {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeReconciliationFinal,
			"reconciliation is finalized and cannot be re-imported",
			domainerror.ErrReconciliationFinalized,
		).WithDetail("reconciliation_id", rec.ID)
	}

	lines := make([]valueobject.BalanceLine, len(input.Statement.Entries))
	for i, e := range input.Statement.Entries {
		lines[i] = valueobject.BalanceLine{AmountCents: e.AmountCents, IsCredit: e.IsCredit}
	}
	calculated := valueobject.CalculateClosingBalance(input.Statement.OpeningBalanceCents, lines)

	rec.PeriodEnd = input.Statement.PeriodEnd
	rec.OpeningBalanceCents = input.Statement.OpeningBalanceCents
	rec.ClosingBalanceCents = input.Statement.ClosingBalanceCents
	rec.CalculatedBalanceCents = calculated
	rec.DiscrepancyCents = input.Statement.ClosingBalanceCents - calculated

	ledgerTxns, err := uc.ledgerRepo.ListForPeriod(
		ctx, input.TenantID, input.BankAccountID,
		input.Statement.PeriodStart, input.Statement.PeriodEnd,
	)
	if err != nil {
		return nil, err
	}

	matches, summary := uc.matcher.Run(input.TenantID, rec.ID, input.Statement.Entries, ledgerTxns)

	rec.Status = DeriveStatus(matches, rec.DiscrepancyCents, uc.balanceToleranceCents)

	// Full replace of the match set, the balances, and the derived status in
	// one transaction. Prior matches for the reconciliation are discarded.
	if err := uc.reconciliationRepo.ReplaceMatches(ctx, rec, matches); err != nil {
		return nil, err
	}

	if rec.Status == valueobject.ReconciliationStatusReconciled {
		if err := uc.reconciliationRepo.SetStatus(ctx, rec.ID, rec.Status, true); err != nil {
			return nil, err
		}
	}

	return &ReconcileStatementOutput{
		ReconciliationID:       rec.ID,
		PeriodStart:            rec.PeriodStart,
		PeriodEnd:              rec.PeriodEnd,
		OpeningBalanceCents:    rec.OpeningBalanceCents,
		ClosingBalanceCents:    rec.ClosingBalanceCents,
		CalculatedBalanceCents: rec.CalculatedBalanceCents,
		DiscrepancyCents:       rec.DiscrepancyCents,
		Summary:                summary,
		Status:                 rec.Status,
	}, nil
}

func validateStatement(statement entity.ParsedStatement) error {
	if statement.PeriodStart.IsZero() || statement.PeriodEnd.IsZero() ||
		statement.PeriodEnd.Before(statement.PeriodStart) {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidPeriod,
			"statement period is invalid",
			domainerror.ErrInvalidPeriod,
		).WithDetail("period_start", statement.PeriodStart).
			WithDetail("period_end", statement.PeriodEnd)
	}
	if len(statement.Entries) == 0 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeEmptyStatement,
			"statement has no entries",
			domainerror.ErrEmptyStatement,
		)
	}
	return nil
}
