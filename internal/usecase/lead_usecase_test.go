package usecase

import (
	"context"
	"errors"
	"testing"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	mock_interfaces "quotekit/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateLeadCommand{Name: " ", Email: "kund@example.se"})
		if !errors.Is(err, ErrInvalidLeadName) {
			t.Fatalf("expected ErrInvalidLeadName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateLeadCommand{Name: "Anna", Email: "anna"})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("job type not owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		jobTypeRepo := mock_interfaces.NewMockIJobTypeRepository(ctrl)
		uc := NewLeadUseCase(nil, companyRepo, jobTypeRepo, nil, nil)

		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		jobTypeRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.JobType{ID: "j-1", CompanyID: "other"}, nil)

		_, err := uc.Create(context.Background(), CreateLeadCommand{
			CompanyID: "c-1", JobTypeID: "j-1", Name: "Anna", Email: "anna@example.se",
		})
		if !errors.Is(err, ErrJobTypeNotOwned) {
			t.Fatalf("expected ErrJobTypeNotOwned, got %v", err)
		}
	})

	t.Run("create stores estimate snapshot and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		jobTypeRepo := mock_interfaces.NewMockIJobTypeRepository(ctrl)
		questionRepo := mock_interfaces.NewMockIQuestionRepository(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewLeadUseCase(repo, companyRepo, jobTypeRepo, questionRepo, notifier)

		jobType, questions := testForm()
		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		jobTypeRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(jobType, nil)
		questionRepo.EXPECT().ListByJobTypeID(gomock.Any(), "j-1").Return(questions, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID == "" || l.CompanyID != "c-1" || l.JobTypeID != "j-1" {
					t.Fatalf("unexpected lead: %+v", l)
				}
				if l.Status != entities.LeadStatusNew {
					t.Fatalf("expected status new, got %s", l.Status)
				}
				// 100000 +25% = 125000 SEK; band 112500..143750.
				if l.EstimatedPriceLow != 11_250_000 || l.EstimatedPriceHigh != 14_375_000 {
					t.Fatalf("unexpected estimate snapshot: %d..%d", l.EstimatedPriceLow, l.EstimatedPriceHigh)
				}
				// avg 12 812 500 above the 5 000 000 low threshold, below 20 000 000.
				if l.Value != pricing.LeadValueMedium {
					t.Fatalf("expected medium value, got %s", l.Value)
				}
				if len(l.Responses) != 1 || l.Responses[0].QuestionID != "q-size" {
					t.Fatalf("expected responses stored verbatim, got %+v", l.Responses)
				}
				if l.CreatedAt.IsZero() || l.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return l, nil
			},
		)
		notifier.EXPECT().NotifyNewLead(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), CreateLeadCommand{
			CompanyID: "c-1",
			JobTypeID: "j-1",
			Name:      " Anna Svensson ",
			Email:     "anna@example.se",
			Phone:     "070-123 45 67",
			Responses: []ResponseInput{
				{QuestionID: "q-size", AnswerOptionIDs: []string{"opt-large"}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		jobTypeRepo := mock_interfaces.NewMockIJobTypeRepository(ctrl)
		questionRepo := mock_interfaces.NewMockIQuestionRepository(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewLeadUseCase(repo, companyRepo, jobTypeRepo, questionRepo, notifier)

		jobType, questions := testForm()
		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		jobTypeRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(jobType, nil)
		questionRepo.EXPECT().ListByJobTypeID(gomock.Any(), "j-1").Return(questions, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil },
		)
		notifier.EXPECT().NotifyNewLead(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("ses down"))

		lead, err := uc.Create(context.Background(), CreateLeadCommand{
			CompanyID: "c-1", JobTypeID: "j-1", Name: "Anna", Email: "anna@example.se",
		})
		if err != nil {
			t.Fatalf("expected submission to survive notifier failure, got %v", err)
		}
		if lead.ID == "" {
			t.Fatal("expected stored lead")
		}
	})

	t.Run("estimate error aborts before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		jobTypeRepo := mock_interfaces.NewMockIJobTypeRepository(ctrl)
		questionRepo := mock_interfaces.NewMockIQuestionRepository(ctrl)
		uc := NewLeadUseCase(repo, companyRepo, jobTypeRepo, questionRepo, nil)

		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(testCompany(), nil)
		jobTypeRepo.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.JobType{ID: "j-1", CompanyID: "c-1"}, nil)
		questionRepo.EXPECT().ListByJobTypeID(gomock.Any(), "j-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), CreateLeadCommand{
			CompanyID: "c-1", JobTypeID: "j-1", Name: "Anna", Email: "anna@example.se",
		})
		if !errors.Is(err, pricing.ErrMissingBasePrice) {
			t.Fatalf("expected ErrMissingBasePrice, got %v", err)
		}
	})
}

func TestLeadUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "l-1", "archived")
		if !errors.Is(err, ErrInvalidLeadStatus) {
			t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "l-1", entities.LeadStatusWon)
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("backwards move allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusWon}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "l-1", entities.LeadStatusContacted).
			Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusContacted}, nil)

		lead, err := uc.UpdateStatus(context.Background(), "l-1", entities.LeadStatusContacted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Status != entities.LeadStatusContacted {
			t.Fatalf("expected contacted, got %s", lead.Status)
		}
	})
}

func TestLeadUseCase_ListByCompanyID(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ListByCompanyID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("list passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().ListByCompanyID(gomock.Any(), "c-1").Return([]entities.Lead{{ID: "l-1"}, {ID: "l-2"}}, nil)

		leads, err := uc.ListByCompanyID(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(leads) != 2 {
			t.Fatalf("expected 2 leads, got %d", len(leads))
		}
	})
}
