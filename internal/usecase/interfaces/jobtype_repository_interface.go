package interfaces

import (
	"context"

	"quotekit/internal/domain/entities"
)

// IJobTypeRepository abstracts persistence for JobType.

type IJobTypeRepository interface {
	Create(ctx context.Context, j entities.JobType) (entities.JobType, error)
	GetByID(ctx context.Context, id string) (entities.JobType, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.JobType, error)
	Update(ctx context.Context, j entities.JobType) (entities.JobType, error)
	Delete(ctx context.Context, id string) error
}
