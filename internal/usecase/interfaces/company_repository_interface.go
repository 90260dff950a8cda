package interfaces

import (
	"context"

	"quotekit/internal/domain/entities"
)

// ICompanyRepository abstracts persistence for Company tenants.

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	Update(ctx context.Context, c entities.Company) (entities.Company, error)
}
