package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadName   = errors.New("invalid lead name")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

type CreateLeadCommand struct {
	CompanyID string
	JobTypeID string
	Name      string
	Email     string
	Phone     string
	Responses []ResponseInput
}

// ILeadUseCase exposes lead ingestion and the CRM board operations.

type ILeadUseCase interface {
	Create(ctx context.Context, cmd CreateLeadCommand) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}

type LeadUseCase struct {
	repo         interfaces.ILeadRepository
	companyRepo  interfaces.ICompanyRepository
	jobTypeRepo  interfaces.IJobTypeRepository
	questionRepo interfaces.IQuestionRepository
	notifier     interfaces.ILeadNotifier
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	repo interfaces.ILeadRepository,
	companyRepo interfaces.ICompanyRepository,
	jobTypeRepo interfaces.IJobTypeRepository,
	questionRepo interfaces.IQuestionRepository,
	notifier interfaces.ILeadNotifier,
) *LeadUseCase {
	return &LeadUseCase{
		repo:         repo,
		companyRepo:  companyRepo,
		jobTypeRepo:  jobTypeRepo,
		questionRepo: questionRepo,
		notifier:     notifier,
	}
}

// Create ingests a public estimator submission: it recomputes the estimate
// server-side from persisted form data, scores the lead's value and stores
// the snapshot. The notification email is best-effort and never fails the
// submission.
func (u *LeadUseCase) Create(ctx context.Context, cmd CreateLeadCommand) (entities.Lead, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}
	email := strings.TrimSpace(cmd.Email)
	if !emailPattern.MatchString(email) {
		return entities.Lead{}, ErrInvalidEmail
	}

	companyID := strings.TrimSpace(cmd.CompanyID)
	if companyID == "" {
		return entities.Lead{}, ErrInvalidCompanyID
	}
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return entities.Lead{}, err
	}
	if company.ID == "" {
		return entities.Lead{}, ErrCompanyNotFound
	}

	jobTypeID := strings.TrimSpace(cmd.JobTypeID)
	if jobTypeID == "" {
		return entities.Lead{}, ErrInvalidJobTypeID
	}
	jobType, err := u.jobTypeRepo.GetByID(ctx, jobTypeID)
	if err != nil {
		return entities.Lead{}, err
	}
	if jobType.ID == "" {
		return entities.Lead{}, ErrJobTypeNotFound
	}
	if jobType.CompanyID != company.ID {
		return entities.Lead{}, ErrJobTypeNotOwned
	}

	questions, err := u.questionRepo.ListByJobTypeID(ctx, jobType.ID)
	if err != nil {
		return entities.Lead{}, err
	}

	answers, err := buildSelectedAnswers(questions, cmd.Responses)
	if err != nil {
		return entities.Lead{}, err
	}

	estimate, err := pricing.CalculateEstimate(jobType.PricingJob(), answers, company.Settings.RangeConfig())
	if err != nil {
		return entities.Lead{}, err
	}

	value := pricing.ScoreLeadValue(
		estimate.PriceLow,
		estimate.PriceHigh,
		estimate.Currency,
		&company.Settings.ValueThresholds,
	)

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:                 uuid.NewString(),
		CompanyID:          company.ID,
		JobTypeID:          jobType.ID,
		Name:               name,
		Email:              email,
		Phone:              strings.TrimSpace(cmd.Phone),
		Responses:          toLeadResponses(cmd.Responses),
		EstimatedPriceLow:  estimate.PriceLow,
		EstimatedPriceHigh: estimate.PriceHigh,
		Currency:           estimate.Currency,
		Value:              value,
		Status:             entities.LeadStatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	saved, err := u.repo.Create(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.NotifyNewLead(ctx, company, saved); err != nil {
			log.Printf("[lead][usecase] lead %s stored but notification failed: %v", saved.ID, err)
		}
	}
	return saved, nil
}

func toLeadResponses(responses []ResponseInput) []entities.LeadResponse {
	out := make([]entities.LeadResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, entities.LeadResponse{
			QuestionID:      r.QuestionID,
			AnswerOptionIDs: r.AnswerOptionIDs,
			RawAnswer:       r.RawAnswer,
		})
	}
	return out
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Lead, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

// UpdateStatus moves a lead between Kanban columns. Any valid status can
// follow any other; the board allows dragging backwards.
func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	if !status.Valid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Lead{}, err
	}
	return u.repo.UpdateStatus(ctx, strings.TrimSpace(id), status)
}
