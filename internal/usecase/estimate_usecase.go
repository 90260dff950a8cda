package usecase

import (
	"context"
	"errors"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"
)

var (
	ErrJobTypeNotOwned = errors.New("job type does not belong to this company")
)

// DraftModifierInput is one unsaved modifier from the builder's live preview.
// Value is optional: a half-typed row arrives without a number and prices as
// a no-op instead of failing the preview.
type DraftModifierInput struct {
	Kind  string
	Value *float64
}

// FormDefinition is everything the embeddable widget needs to render one job
// type's estimator flow.
type FormDefinition struct {
	Company   entities.Company
	JobType   entities.JobType
	Questions []entities.Question
}

// WidgetConfig bootstraps the embed script for a company.
type WidgetConfig struct {
	Company  entities.Company
	JobTypes []entities.JobType
}

// IEstimateUseCase computes quotes and previews and serves the public widget
// surface. Quote is the public estimator path; the preview operations back
// the form builder.

type IEstimateUseCase interface {
	Quote(ctx context.Context, companyID, jobTypeID string, responses []ResponseInput) (pricing.EstimateResult, error)
	PreviewJobType(ctx context.Context, jobTypeID string) (pricing.EstimateResult, error)
	PreviewDraft(ctx context.Context, companyID string, basePrice pricing.Money, mods []DraftModifierInput) (pricing.PreviewResult, error)
	FormDefinition(ctx context.Context, companyID, jobTypeID string) (FormDefinition, error)
	WidgetConfig(ctx context.Context, companyID string) (WidgetConfig, error)
}

type EstimateUseCase struct {
	companyRepo  interfaces.ICompanyRepository
	jobTypeRepo  interfaces.IJobTypeRepository
	questionRepo interfaces.IQuestionRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	companyRepo interfaces.ICompanyRepository,
	jobTypeRepo interfaces.IJobTypeRepository,
	questionRepo interfaces.IQuestionRepository,
) *EstimateUseCase {
	return &EstimateUseCase{
		companyRepo:  companyRepo,
		jobTypeRepo:  jobTypeRepo,
		questionRepo: questionRepo,
	}
}

// loadForm resolves the company, the job type and the form questions, and
// verifies ownership. Every estimate path goes through here.
func (u *EstimateUseCase) loadForm(ctx context.Context, companyID, jobTypeID string) (entities.Company, entities.JobType, []entities.Question, error) {
	company, err := u.getCompany(ctx, companyID)
	if err != nil {
		return entities.Company{}, entities.JobType{}, nil, err
	}

	jobType, err := u.getJobType(ctx, jobTypeID)
	if err != nil {
		return entities.Company{}, entities.JobType{}, nil, err
	}
	if jobType.CompanyID != company.ID {
		return entities.Company{}, entities.JobType{}, nil, ErrJobTypeNotOwned
	}

	questions, err := u.questionRepo.ListByJobTypeID(ctx, jobType.ID)
	if err != nil {
		return entities.Company{}, entities.JobType{}, nil, err
	}
	return company, jobType, questions, nil
}

func (u *EstimateUseCase) getCompany(ctx context.Context, id string) (entities.Company, error) {
	if id == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}
	c, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if c.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return c, nil
}

func (u *EstimateUseCase) getJobType(ctx context.Context, id string) (entities.JobType, error) {
	if id == "" {
		return entities.JobType{}, ErrInvalidJobTypeID
	}
	j, err := u.jobTypeRepo.GetByID(ctx, id)
	if err != nil {
		return entities.JobType{}, err
	}
	if j.ID == "" {
		return entities.JobType{}, ErrJobTypeNotFound
	}
	return j, nil
}

// Quote prices a public estimator submission against persisted form data.
func (u *EstimateUseCase) Quote(ctx context.Context, companyID, jobTypeID string, responses []ResponseInput) (pricing.EstimateResult, error) {
	company, jobType, questions, err := u.loadForm(ctx, companyID, jobTypeID)
	if err != nil {
		return pricing.EstimateResult{}, err
	}

	answers, err := buildSelectedAnswers(questions, responses)
	if err != nil {
		return pricing.EstimateResult{}, err
	}

	return pricing.CalculateEstimate(jobType.PricingJob(), answers, company.Settings.RangeConfig())
}

// PreviewJobType prices the form with the first option of every choice
// question selected, giving the builder a representative sample estimate.
// Number and text questions contribute nothing.
func (u *EstimateUseCase) PreviewJobType(ctx context.Context, jobTypeID string) (pricing.EstimateResult, error) {
	jobType, err := u.getJobType(ctx, jobTypeID)
	if err != nil {
		return pricing.EstimateResult{}, err
	}
	company, err := u.getCompany(ctx, jobType.CompanyID)
	if err != nil {
		return pricing.EstimateResult{}, err
	}
	questions, err := u.questionRepo.ListByJobTypeID(ctx, jobType.ID)
	if err != nil {
		return pricing.EstimateResult{}, err
	}

	responses := make([]ResponseInput, 0, len(questions))
	for _, q := range questions {
		if !q.Type.IsChoice() || len(q.Options) == 0 {
			continue
		}
		responses = append(responses, ResponseInput{
			QuestionID:      q.ID,
			AnswerOptionIDs: []string{q.Options[0].ID},
		})
	}

	answers, err := buildSelectedAnswers(questions, responses)
	if err != nil {
		return pricing.EstimateResult{}, err
	}
	return pricing.CalculateEstimate(jobType.PricingJob(), answers, company.Settings.RangeConfig())
}

// FormDefinition loads the public estimator form for a company's job type.
func (u *EstimateUseCase) FormDefinition(ctx context.Context, companyID, jobTypeID string) (FormDefinition, error) {
	company, jobType, questions, err := u.loadForm(ctx, companyID, jobTypeID)
	if err != nil {
		return FormDefinition{}, err
	}
	return FormDefinition{Company: company, JobType: jobType, Questions: questions}, nil
}

// WidgetConfig loads the embed bootstrap data for a company.
func (u *EstimateUseCase) WidgetConfig(ctx context.Context, companyID string) (WidgetConfig, error) {
	company, err := u.getCompany(ctx, companyID)
	if err != nil {
		return WidgetConfig{}, err
	}
	jobTypes, err := u.jobTypeRepo.ListByCompanyID(ctx, company.ID)
	if err != nil {
		return WidgetConfig{}, err
	}
	return WidgetConfig{Company: company, JobTypes: jobTypes}, nil
}

// PreviewDraft prices unsaved builder input. Unknown kinds still fail; empty
// values price as no-ops.
func (u *EstimateUseCase) PreviewDraft(ctx context.Context, companyID string, basePrice pricing.Money, mods []DraftModifierInput) (pricing.PreviewResult, error) {
	company, err := u.getCompany(ctx, companyID)
	if err != nil {
		return pricing.PreviewResult{}, err
	}

	modifiers := make([]pricing.Modifier, 0, len(mods))
	for _, m := range mods {
		kind, err := pricing.NormalizeOptionKind(m.Kind)
		if err != nil {
			return pricing.PreviewResult{}, err
		}
		var value float64
		if m.Value != nil {
			value = *m.Value
		}
		modifiers = append(modifiers, pricing.Modifier{Kind: kind, Value: value})
	}

	return pricing.PreviewEstimate(basePrice, modifiers, company.Settings.RangeConfig(), company.Locale)
}
