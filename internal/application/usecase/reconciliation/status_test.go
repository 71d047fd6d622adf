package reconciliation

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crechebooks/reconciliation/internal/domain/entity"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
	"github.com/crechebooks/reconciliation/internal/integration/persistence"
	"github.com/crechebooks/reconciliation/internal/integration/persistence/model"
)

func matchesWith(statuses ...valueobject.MatchStatus) []entity.Match {
	matches := make([]entity.Match, len(statuses))
	for i, s := range statuses {
		matches[i] = entity.Match{Status: s}
	}
	return matches
}

func TestDeriveStatus(t *testing.T) {
	const tolerance = 100

	tests := []struct {
		name             string
		matches          []entity.Match
		discrepancyCents int64
		want             valueobject.ReconciliationStatus
	}{
		{
			name:    "all matched with zero discrepancy reconciles",
			matches: matchesWith(valueobject.MatchStatusMatched, valueobject.MatchStatusMatched),
			want:    valueobject.ReconciliationStatusReconciled,
		},
		{
			name: "fee adjusted and date mismatch count as resolved",
			matches: matchesWith(
				valueobject.MatchStatusMatched,
				valueobject.MatchStatusFeeAdjusted,
				valueobject.MatchStatusDateMismatch,
			),
			want: valueobject.ReconciliationStatusReconciled,
		},
		{
			name:    "bank-only row blocks reconciliation",
			matches: matchesWith(valueobject.MatchStatusMatched, valueobject.MatchStatusInBankOnly),
			want:    valueobject.ReconciliationStatusDiscrepancy,
		},
		{
			name:    "ledger-only row blocks reconciliation",
			matches: matchesWith(valueobject.MatchStatusInXeroOnly),
			want:    valueobject.ReconciliationStatusDiscrepancy,
		},
		{
			name:    "amount mismatch blocks reconciliation",
			matches: matchesWith(valueobject.MatchStatusAmountMismatch),
			want:    valueobject.ReconciliationStatusDiscrepancy,
		},
		{
			name:             "balance discrepancy beyond tolerance blocks reconciliation",
			matches:          matchesWith(valueobject.MatchStatusMatched),
			discrepancyCents: 101,
			want:             valueobject.ReconciliationStatusDiscrepancy,
		},
		{
			name:             "negative discrepancy within tolerance reconciles",
			matches:          matchesWith(valueobject.MatchStatusMatched),
			discrepancyCents: -100,
			want:             valueobject.ReconciliationStatusReconciled,
		},
		{
			name: "no matches with balanced statement reconciles",
			want: valueobject.ReconciliationStatusReconciled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.matches, tt.discrepancyCents, tolerance)
			if got != tt.want {
				t.Errorf("DeriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatusService_RecomputeUnknownReconciliation(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.ReconciliationModel{}, &model.MatchModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	svc := NewStatusService(
		persistence.NewReconciliationRepository(db),
		persistence.NewMatchRepository(db),
		100,
	)

	_, err = svc.Recompute(context.Background(), uuid.New(), uuid.New())

	var recErr *domainerror.ReconciliationError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected ReconciliationError, got %v", err)
	}
	if recErr.Code != domainerror.ErrCodeReconciliationNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeReconciliationNotFound, recErr.Code)
	}
}
