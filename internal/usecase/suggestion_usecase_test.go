package usecase

import (
	"context"
	"errors"
	"testing"

	"quotekit/internal/domain/entities"
	mock_interfaces "quotekit/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSuggestionUseCase_SuggestQuestions(t *testing.T) {
	t.Run("invalid trade", func(t *testing.T) {
		uc := NewSuggestionUseCase(nil)
		_, err := uc.SuggestQuestions(context.Background(), "  ", 5)
		if !errors.Is(err, ErrInvalidTrade) {
			t.Fatalf("expected ErrInvalidTrade, got %v", err)
		}
	})

	t.Run("gateway success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISuggestionGateway(ctrl)
		uc := NewSuggestionUseCase(gateway)

		want := []entities.QuestionSuggestion{
			{Text: "How many radiators?", Type: entities.QuestionTypeNumber},
			{Text: "Type of boiler?", Type: entities.QuestionTypeSingleChoice, Options: []string{"Gas", "Electric"}},
		}
		gateway.EXPECT().SuggestQuestions(gomock.Any(), "plumbing", 2).Return(want, nil)

		got, err := uc.SuggestQuestions(context.Background(), "plumbing", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Text != "How many radiators?" {
			t.Fatalf("unexpected suggestions: %+v", got)
		}
	})

	t.Run("gateway failure degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISuggestionGateway(ctrl)
		uc := NewSuggestionUseCase(gateway)

		gateway.EXPECT().SuggestQuestions(gomock.Any(), "plumbing", 3).Return(nil, errors.New("timeout"))

		got, err := uc.SuggestQuestions(context.Background(), "plumbing", 3)
		if err != nil {
			t.Fatalf("expected fallback, got error %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 fallback suggestions, got %d", len(got))
		}
	})

	t.Run("empty gateway result degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISuggestionGateway(ctrl)
		uc := NewSuggestionUseCase(gateway)

		gateway.EXPECT().SuggestQuestions(gomock.Any(), "painting", 5).Return(nil, nil)

		got, err := uc.SuggestQuestions(context.Background(), "painting", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("expected fallback suggestions")
		}
	})

	t.Run("count is clamped and defaulted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISuggestionGateway(ctrl)
		uc := NewSuggestionUseCase(gateway)

		gateway.EXPECT().SuggestQuestions(gomock.Any(), "electrical", defaultSuggestionCount).Return(nil, errors.New("down"))
		if _, err := uc.SuggestQuestions(context.Background(), "electrical", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gateway.EXPECT().SuggestQuestions(gomock.Any(), "electrical", maxSuggestionCount).Return(nil, errors.New("down"))
		if _, err := uc.SuggestQuestions(context.Background(), "electrical", 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("oversized gateway result is truncated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockISuggestionGateway(ctrl)
		uc := NewSuggestionUseCase(gateway)

		many := make([]entities.QuestionSuggestion, 8)
		for i := range many {
			many[i] = entities.QuestionSuggestion{Text: "Q", Type: entities.QuestionTypeText}
		}
		gateway.EXPECT().SuggestQuestions(gomock.Any(), "plumbing", 2).Return(many, nil)

		got, err := uc.SuggestQuestions(context.Background(), "plumbing", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected truncation to 2, got %d", len(got))
		}
	})
}
