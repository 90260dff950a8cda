package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"quotekit/internal/domain/entities"
	"quotekit/internal/usecase/interfaces"
)

var ErrInvalidTrade = errors.New("invalid trade")

const (
	defaultSuggestionCount = 5
	maxSuggestionCount     = 10
)

// ISuggestionUseCase proposes estimator questions for a trade.

type ISuggestionUseCase interface {
	SuggestQuestions(ctx context.Context, trade string, count int) ([]entities.QuestionSuggestion, error)
}

type SuggestionUseCase struct {
	gateway interfaces.ISuggestionGateway
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

func NewSuggestionUseCase(gateway interfaces.ISuggestionGateway) *SuggestionUseCase {
	return &SuggestionUseCase{gateway: gateway}
}

// SuggestQuestions asks the model gateway for question ideas. A gateway
// failure degrades to a generic static list instead of erroring: suggestions
// are an assist in the form builder, never a blocker.
func (u *SuggestionUseCase) SuggestQuestions(ctx context.Context, trade string, count int) ([]entities.QuestionSuggestion, error) {
	trade = strings.TrimSpace(trade)
	if trade == "" {
		return nil, ErrInvalidTrade
	}
	if count <= 0 {
		count = defaultSuggestionCount
	}
	if count > maxSuggestionCount {
		count = maxSuggestionCount
	}

	if u.gateway == nil {
		return fallbackSuggestions(count), nil
	}

	suggestions, err := u.gateway.SuggestQuestions(ctx, trade, count)
	if err != nil {
		log.Printf("[suggestion][usecase] gateway failed for trade %q, serving fallback: %v", trade, err)
		return fallbackSuggestions(count), nil
	}
	if len(suggestions) == 0 {
		return fallbackSuggestions(count), nil
	}
	if len(suggestions) > count {
		suggestions = suggestions[:count]
	}
	return suggestions, nil
}

// fallbackSuggestions is trade-agnostic on purpose: it has to make sense for
// any trade the gateway failed on.
func fallbackSuggestions(count int) []entities.QuestionSuggestion {
	all := []entities.QuestionSuggestion{
		{
			Text:    "How large is the area to work on?",
			Type:    entities.QuestionTypeSingleChoice,
			Options: []string{"Small", "Medium", "Large"},
		},
		{
			Text:    "When would you like the work done?",
			Type:    entities.QuestionTypeSingleChoice,
			Options: []string{"As soon as possible", "Within a month", "Flexible"},
		},
		{
			Text: "How many rooms are affected?",
			Type: entities.QuestionTypeNumber,
		},
		{
			Text:    "Is the property currently occupied?",
			Type:    entities.QuestionTypeSingleChoice,
			Options: []string{"Yes", "No"},
		},
		{
			Text: "Anything else we should know?",
			Type: entities.QuestionTypeText,
		},
	}
	if count < len(all) {
		return all[:count]
	}
	return all
}
