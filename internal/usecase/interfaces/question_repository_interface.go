package interfaces

import (
	"context"

	"quotekit/internal/domain/entities"
)

// IQuestionRepository abstracts persistence for estimator questions.
//
// ListByJobTypeID must return questions sorted by Position: display order is
// also modifier application order, so callers rely on it.

type IQuestionRepository interface {
	Create(ctx context.Context, q entities.Question) (entities.Question, error)
	GetByID(ctx context.Context, id string) (entities.Question, error)
	ListByJobTypeID(ctx context.Context, jobTypeID string) ([]entities.Question, error)
	Update(ctx context.Context, q entities.Question) (entities.Question, error)
	Delete(ctx context.Context, id string) error
}
