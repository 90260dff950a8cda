package memory

import (
	"context"
	"testing"

	"quotekit/internal/domain/entities"
)

func TestSeededStoreServesACompleteForm(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	company, err := s.Companies().GetByID(ctx, FixtureCompanyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.ID == "" || company.Currency != "SEK" {
		t.Fatalf("unexpected fixture company: %+v", company)
	}
	if company.Settings.RangeLowPercent != 10 || company.Settings.RangeHighPercent != 15 {
		t.Fatalf("expected default settings on fixture, got %+v", company.Settings)
	}

	jobType, err := s.JobTypes().GetByID(ctx, FixtureJobTypeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobType.CompanyID != company.ID || jobType.BasePrice == nil {
		t.Fatalf("unexpected fixture job type: %+v", jobType)
	}

	questions, err := s.Questions().ListByJobTypeID(ctx, FixtureJobTypeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 fixture questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.Position != i {
			t.Fatalf("questions not in display order: %+v", questions)
		}
	}
}

func TestLeadRepository(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	t.Run("missing lead reads as zero value", func(t *testing.T) {
		l, err := s.Leads().GetByID(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != "" {
			t.Fatalf("expected zero lead, got %+v", l)
		}
	})

	t.Run("update status on missing lead is a no-op", func(t *testing.T) {
		l, err := s.Leads().UpdateStatus(ctx, "nope", entities.LeadStatusWon)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != "" {
			t.Fatalf("expected zero lead, got %+v", l)
		}
	})

	t.Run("create, list and move", func(t *testing.T) {
		if _, err := s.Leads().Create(ctx, entities.Lead{ID: "l-1", CompanyID: "c-1", Status: entities.LeadStatusNew}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := s.Leads().Create(ctx, entities.Lead{ID: "l-2", CompanyID: "c-1", Status: entities.LeadStatusNew}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		leads, err := s.Leads().ListByCompanyID(ctx, "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(leads) != 2 {
			t.Fatalf("expected 2 leads, got %d", len(leads))
		}

		moved, err := s.Leads().UpdateStatus(ctx, "l-1", entities.LeadStatusQuoted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved.Status != entities.LeadStatusQuoted || moved.UpdatedAt.IsZero() {
			t.Fatalf("unexpected lead after move: %+v", moved)
		}
	})
}

func TestQuestionRepositoryOrdering(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, q := range []entities.Question{
		{ID: "q-c", JobTypeID: "j-1", Position: 2},
		{ID: "q-a", JobTypeID: "j-1", Position: 0},
		{ID: "q-b", JobTypeID: "j-1", Position: 1},
		{ID: "q-other", JobTypeID: "j-2", Position: 0},
	} {
		if _, err := s.Questions().Create(ctx, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := s.Questions().ListByJobTypeID(ctx, "j-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 || out[0].ID != "q-a" || out[1].ID != "q-b" || out[2].ID != "q-c" {
		t.Fatalf("expected position order, got %+v", out)
	}
}
