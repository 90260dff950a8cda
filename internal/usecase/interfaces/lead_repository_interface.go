package interfaces

import (
	"context"

	"quotekit/internal/domain/entities"
)

// ILeadRepository abstracts persistence for CRM leads.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}
