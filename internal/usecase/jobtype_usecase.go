package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobTypeNotFound    = errors.New("job type not found")
	ErrInvalidJobTypeID   = errors.New("invalid job type id")
	ErrInvalidJobTypeName = errors.New("invalid job type name")
	ErrInvalidBasePrice   = errors.New("invalid base price")
)

type CreateJobTypeCommand struct {
	CompanyID   string
	Name        string
	Description string
	BasePrice   *pricing.Money
}

type UpdateJobTypeCommand struct {
	Name        *string
	Description *string
	BasePrice   *pricing.Money
}

// IJobTypeUseCase exposes job type (priced service) operations.

type IJobTypeUseCase interface {
	Create(ctx context.Context, cmd CreateJobTypeCommand) (entities.JobType, error)
	GetByID(ctx context.Context, id string) (entities.JobType, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.JobType, error)
	Update(ctx context.Context, id string, cmd UpdateJobTypeCommand) (entities.JobType, error)
	Delete(ctx context.Context, id string) error
}

type JobTypeUseCase struct {
	repo        interfaces.IJobTypeRepository
	companyRepo interfaces.ICompanyRepository
}

var _ IJobTypeUseCase = (*JobTypeUseCase)(nil)

func NewJobTypeUseCase(repo interfaces.IJobTypeRepository, companyRepo interfaces.ICompanyRepository) *JobTypeUseCase {
	return &JobTypeUseCase{repo: repo, companyRepo: companyRepo}
}

func (u *JobTypeUseCase) Create(ctx context.Context, cmd CreateJobTypeCommand) (entities.JobType, error) {
	companyID := strings.TrimSpace(cmd.CompanyID)
	if companyID == "" {
		return entities.JobType{}, ErrInvalidCompanyID
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.JobType{}, ErrInvalidJobTypeName
	}
	if cmd.BasePrice != nil && *cmd.BasePrice < 0 {
		return entities.JobType{}, ErrInvalidBasePrice
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return entities.JobType{}, err
	}
	if company.ID == "" {
		return entities.JobType{}, ErrCompanyNotFound
	}

	now := time.Now().UTC()
	j := entities.JobType{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		BasePrice:   cmd.BasePrice,
		Currency:    company.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobTypeUseCase) GetByID(ctx context.Context, id string) (entities.JobType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobType{}, ErrInvalidJobTypeID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobType{}, err
	}
	if j.ID == "" {
		return entities.JobType{}, ErrJobTypeNotFound
	}
	return j, nil
}

func (u *JobTypeUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.JobType, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

func (u *JobTypeUseCase) Update(ctx context.Context, id string, cmd UpdateJobTypeCommand) (entities.JobType, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.JobType{}, err
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return entities.JobType{}, ErrInvalidJobTypeName
		}
		j.Name = name
	}
	if cmd.Description != nil {
		j.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.BasePrice != nil {
		if *cmd.BasePrice < 0 {
			return entities.JobType{}, ErrInvalidBasePrice
		}
		j.BasePrice = cmd.BasePrice
	}

	j.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, j)
}

func (u *JobTypeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
