package duplicate

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	"github.com/crechebooks/reconciliation/internal/domain/entity"
	"github.com/crechebooks/reconciliation/internal/domain/valueobject"
)

// matchRepoStub only serves FindRecentBankEntry; the embedded interface
// panics on anything else, which would flag an unexpected call.
type matchRepoStub struct {
	adapter.MatchRepository
	prior *entity.Match
}

func (s *matchRepoStub) FindRecentBankEntry(
	_ context.Context, _ uuid.UUID, _ time.Time, _ int64, _ bool,
) (*entity.Match, error) {
	return s.prior, nil
}

type resolutionRepoStub struct {
	resolutions map[string]*entity.DuplicateResolution
}

func (s *resolutionRepoStub) Get(_ context.Context, _ uuid.UUID, key string) (*entity.DuplicateResolution, error) {
	return s.resolutions[key], nil
}

func (s *resolutionRepoStub) Upsert(_ context.Context, resolution *entity.DuplicateResolution) error {
	if s.resolutions == nil {
		s.resolutions = map[string]*entity.DuplicateResolution{}
	}
	s.resolutions[resolution.CompositeKey] = resolution
	return nil
}

func entry(desc string, cents int64) entity.BankTransaction {
	return entity.BankTransaction{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: desc,
		AmountCents: cents,
		IsCredit:    true,
	}
}

func TestDetectDuplicatesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("identical entry earlier in the batch is flagged", func(t *testing.T) {
		uc := NewDetectDuplicatesUseCase(&matchRepoStub{}, &resolutionRepoStub{})

		out, err := uc.Execute(ctx, DetectDuplicatesInput{
			TenantID: tenantID,
			Entries: []entity.BankTransaction{
				entry("school fees j smith", 50000),
				entry("school fees j smith", 50000),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(out.Candidates))
		}
		if out.Candidates[0].Confidence < DuplicateConfidenceThreshold {
			t.Errorf("expected confidence >= %f, got %f",
				DuplicateConfidenceThreshold, out.Candidates[0].Confidence)
		}
		if out.Checked != 2 {
			t.Errorf("expected 2 checked, got %d", out.Checked)
		}
	})

	t.Run("previously imported entry is flagged", func(t *testing.T) {
		prior := &entity.Match{BankDescription: "school fees j smith ref 123"}
		uc := NewDetectDuplicatesUseCase(&matchRepoStub{prior: prior}, &resolutionRepoStub{})

		out, err := uc.Execute(ctx, DetectDuplicatesInput{
			TenantID: tenantID,
			Entries:  []entity.BankTransaction{entry("school fees j smith ref 456", 50000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(out.Candidates))
		}
	})

	t.Run("no prior sighting means no candidate", func(t *testing.T) {
		uc := NewDetectDuplicatesUseCase(&matchRepoStub{}, &resolutionRepoStub{})

		out, err := uc.Execute(ctx, DetectDuplicatesInput{
			TenantID: tenantID,
			Entries:  []entity.BankTransaction{entry("one-off deposit", 12345)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Candidates) != 0 {
			t.Errorf("expected no candidates, got %d", len(out.Candidates))
		}
	})

	t.Run("dissimilar descriptions stay below the threshold", func(t *testing.T) {
		prior := &entity.Match{BankDescription: "completely unrelated narrative"}
		uc := NewDetectDuplicatesUseCase(&matchRepoStub{prior: prior}, &resolutionRepoStub{})

		out, err := uc.Execute(ctx, DetectDuplicatesInput{
			TenantID: tenantID,
			Entries:  []entity.BankTransaction{entry("school fees j smith", 50000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Candidates) != 0 {
			t.Errorf("expected no candidates, got %d", len(out.Candidates))
		}
	})

	t.Run("persisted resolution suppresses re-flagging", func(t *testing.T) {
		e := entry("school fees j smith", 50000)
		key := CompositeKey(e.Date, e.AmountCents, e.Description)

		resolutions := &resolutionRepoStub{resolutions: map[string]*entity.DuplicateResolution{
			key: {
				CompositeKey: key,
				Decision:     valueobject.DuplicateDecisionFalsePositive,
			},
		}}
		uc := NewDetectDuplicatesUseCase(&matchRepoStub{}, resolutions)

		out, err := uc.Execute(ctx, DetectDuplicatesInput{
			TenantID: tenantID,
			Entries:  []entity.BankTransaction{e, e},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Candidates) != 0 {
			t.Errorf("expected no candidates, got %d", len(out.Candidates))
		}
		if out.Suppressed != 2 {
			t.Errorf("expected 2 suppressed, got %d", out.Suppressed)
		}
	})
}

func TestResolveDuplicateUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("valid decision is persisted", func(t *testing.T) {
		repo := &resolutionRepoStub{}
		uc := NewResolveDuplicateUseCase(repo)

		out, err := uc.Execute(ctx, ResolveDuplicateInput{
			TenantID:     tenantID,
			CompositeKey: "2025-03-10|50000|school fees",
			Decision:     valueobject.DuplicateDecisionConfirmedDuplicate,
			Actor:        uuid.New(),
			Notes:        "same payment imported twice",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored := repo.resolutions["2025-03-10|50000|school fees"]
		if stored == nil {
			t.Fatal("expected the resolution to be stored")
		}
		if stored.Decision != valueobject.DuplicateDecisionConfirmedDuplicate {
			t.Errorf("unexpected decision: %s", stored.Decision)
		}
		if out.Resolution.ID == uuid.Nil {
			t.Error("expected a generated resolution ID")
		}
	})

	t.Run("unknown decision is rejected", func(t *testing.T) {
		uc := NewResolveDuplicateUseCase(&resolutionRepoStub{})

		_, err := uc.Execute(ctx, ResolveDuplicateInput{
			TenantID:     tenantID,
			CompositeKey: "k",
			Decision:     valueobject.DuplicateDecision("MAYBE"),
		})
		if err == nil {
			t.Fatal("expected an error for an unknown decision")
		}
	})
}
