// Package memory is an in-process storage backend used for local development
// and demos. It implements the same repository ports as the DynamoDB
// implementations, guarded by a single mutex, and can be pre-seeded with a
// demo tenant so the estimator works without any AWS setup.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"
)

type Store struct {
	mu        sync.Mutex
	companies map[string]entities.Company
	jobTypes  map[string]entities.JobType
	questions map[string]entities.Question
	leads     map[string]entities.Lead
}

func NewStore() *Store {
	return &Store{
		companies: make(map[string]entities.Company),
		jobTypes:  make(map[string]entities.JobType),
		questions: make(map[string]entities.Question),
		leads:     make(map[string]entities.Lead),
	}
}

// Fixture IDs are stable so local clients and the widget snippet can be
// pointed at them directly.
const (
	FixtureCompanyID = "demo-company"
	FixtureJobTypeID = "demo-bathroom"
)

// NewSeededStore returns a store pre-loaded with a demo contractor and a
// priced bathroom renovation form.
func NewSeededStore() *Store {
	s := NewStore()
	now := time.Now().UTC()

	s.companies[FixtureCompanyID] = entities.Company{
		ID:        FixtureCompanyID,
		Name:      "Demo Bygg AB",
		Email:     "demo@quotekit.test",
		Currency:  "SEK",
		Locale:    pricing.LocaleSvSE,
		Settings:  entities.NewCompanySettings(entities.CompanySettingsInput{}, "SEK"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	basePrice := pricing.Money(15_000_000) // 150 000 SEK
	s.jobTypes[FixtureJobTypeID] = entities.JobType{
		ID:          FixtureJobTypeID,
		CompanyID:   FixtureCompanyID,
		Name:        "Badrumsrenovering",
		Description: "Totalrenovering av badrum inklusive tätskikt.",
		BasePrice:   &basePrice,
		Currency:    "SEK",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rate := 1450.0
	seedQuestions := []entities.Question{
		{
			ID: "demo-q-size", JobTypeID: FixtureJobTypeID, CompanyID: FixtureCompanyID,
			Text: "Hur stort är badrummet?", Type: entities.QuestionTypeSingleChoice, Position: 0,
			Options: []entities.AnswerOption{
				{ID: "demo-opt-small", Label: "Under 4 m²", ModifierKind: "fixed_subtract", ModifierValue: 15000, Position: 0},
				{ID: "demo-opt-medium", Label: "4–7 m²", ModifierKind: "fixed_add", ModifierValue: 0, Position: 1},
				{ID: "demo-opt-large", Label: "Över 7 m²", ModifierKind: "percentage_add", ModifierValue: 25, Position: 2},
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-q-extras", JobTypeID: FixtureJobTypeID, CompanyID: FixtureCompanyID,
			Text: "Vilka tillval vill du ha?", Type: entities.QuestionTypeMultipleChoice, Position: 1,
			Options: []entities.AnswerOption{
				{ID: "demo-opt-heat", Label: "Golvvärme", ModifierKind: "fixed_add", ModifierValue: 8500, Position: 0},
				{ID: "demo-opt-rad", Label: "Handdukstork", ModifierKind: "fixed_add", ModifierValue: 2400, Position: 1},
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-q-tiles", JobTypeID: FixtureJobTypeID, CompanyID: FixtureCompanyID,
			Text: "Hur många kvadratmeter kakel?", Type: entities.QuestionTypeNumber, Position: 2,
			Unit: "m²", UnitRate: &rate,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-q-notes", JobTypeID: FixtureJobTypeID, CompanyID: FixtureCompanyID,
			Text: "Något mer vi bör veta?", Type: entities.QuestionTypeText, Position: 3,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, q := range seedQuestions {
		s.questions[q.ID] = q
	}
	return s
}

func (s *Store) Companies() *CompanyRepository { return &CompanyRepository{store: s} }
func (s *Store) JobTypes() *JobTypeRepository  { return &JobTypeRepository{store: s} }
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{store: s}
}
func (s *Store) Leads() *LeadRepository { return &LeadRepository{store: s} }

// CompanyRepository is the in-memory ICompanyRepository.

type CompanyRepository struct{ store *Store }

var _ interfaces.ICompanyRepository = (*CompanyRepository)(nil)

func (r *CompanyRepository) Create(_ context.Context, c entities.Company) (entities.Company, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.companies[c.ID] = c
	return c, nil
}

func (r *CompanyRepository) GetByID(_ context.Context, id string) (entities.Company, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.companies[id], nil
}

func (r *CompanyRepository) Update(_ context.Context, c entities.Company) (entities.Company, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.companies[c.ID] = c
	return c, nil
}

// JobTypeRepository is the in-memory IJobTypeRepository.

type JobTypeRepository struct{ store *Store }

var _ interfaces.IJobTypeRepository = (*JobTypeRepository)(nil)

func (r *JobTypeRepository) Create(_ context.Context, j entities.JobType) (entities.JobType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.jobTypes[j.ID] = j
	return j, nil
}

func (r *JobTypeRepository) GetByID(_ context.Context, id string) (entities.JobType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.jobTypes[id], nil
}

func (r *JobTypeRepository) ListByCompanyID(_ context.Context, companyID string) ([]entities.JobType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entities.JobType
	for _, j := range r.store.jobTypes {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *JobTypeRepository) Update(_ context.Context, j entities.JobType) (entities.JobType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.jobTypes[j.ID] = j
	return j, nil
}

func (r *JobTypeRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.jobTypes, id)
	return nil
}

// QuestionRepository is the in-memory IQuestionRepository.

type QuestionRepository struct{ store *Store }

var _ interfaces.IQuestionRepository = (*QuestionRepository)(nil)

func (r *QuestionRepository) Create(_ context.Context, q entities.Question) (entities.Question, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.questions[q.ID] = q
	return q, nil
}

func (r *QuestionRepository) GetByID(_ context.Context, id string) (entities.Question, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.questions[id], nil
}

func (r *QuestionRepository) ListByJobTypeID(_ context.Context, jobTypeID string) ([]entities.Question, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entities.Question
	for _, q := range r.store.questions {
		if q.JobTypeID == jobTypeID {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *QuestionRepository) Update(_ context.Context, q entities.Question) (entities.Question, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.questions[q.ID] = q
	return q, nil
}

func (r *QuestionRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.questions, id)
	return nil
}

// LeadRepository is the in-memory ILeadRepository.

type LeadRepository struct{ store *Store }

var _ interfaces.ILeadRepository = (*LeadRepository)(nil)

func (r *LeadRepository) Create(_ context.Context, l entities.Lead) (entities.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.leads[l.ID] = l
	return l, nil
}

func (r *LeadRepository) GetByID(_ context.Context, id string) (entities.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.leads[id], nil
}

func (r *LeadRepository) ListByCompanyID(_ context.Context, companyID string) ([]entities.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entities.Lead
	for _, l := range r.store.leads {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LeadRepository) UpdateStatus(_ context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	l, ok := r.store.leads[id]
	if !ok {
		return entities.Lead{}, nil
	}
	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	r.store.leads[id] = l
	return l, nil
}
