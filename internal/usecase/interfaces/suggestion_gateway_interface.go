package interfaces

import (
	"context"

	"quotekit/internal/domain/entities"
)

// ISuggestionGateway asks an external model for question suggestions while a
// company builds its estimator form.

type ISuggestionGateway interface {
	SuggestQuestions(ctx context.Context, trade string, count int) ([]entities.QuestionSuggestion, error)
}
