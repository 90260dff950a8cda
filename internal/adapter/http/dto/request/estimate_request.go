package request

import (
	"quotekit/internal/usecase"
)

// AnswerRequest is one submitted answer on the public estimator. Choice
// questions send option IDs, number and text questions send the raw value.
type AnswerRequest struct {
	QuestionID      string   `json:"question_id" binding:"required"`
	AnswerOptionIDs []string `json:"answer_option_ids"`
	RawAnswer       string   `json:"raw_answer"`
}

func toResponseInputs(answers []AnswerRequest) []usecase.ResponseInput {
	out := make([]usecase.ResponseInput, 0, len(answers))
	for _, a := range answers {
		out = append(out, usecase.ResponseInput{
			QuestionID:      a.QuestionID,
			AnswerOptionIDs: a.AnswerOptionIDs,
			RawAnswer:       a.RawAnswer,
		})
	}
	return out
}

type QuoteRequest struct {
	Answers []AnswerRequest `json:"answers"`
}

func (r QuoteRequest) ToInputs() []usecase.ResponseInput {
	return toResponseInputs(r.Answers)
}

type DraftModifierRequest struct {
	Kind  string   `json:"kind" binding:"required"`
	Value *float64 `json:"value"`
}

// PreviewDraftRequest prices unsaved builder input. BasePrice is in minor
// currency units, modifier values in the units their kind implies.
type PreviewDraftRequest struct {
	CompanyID string                 `json:"company_id" binding:"required"`
	BasePrice int64                  `json:"base_price"`
	Modifiers []DraftModifierRequest `json:"modifiers"`
}

func (r PreviewDraftRequest) ToInputs() []usecase.DraftModifierInput {
	out := make([]usecase.DraftModifierInput, 0, len(r.Modifiers))
	for _, m := range r.Modifiers {
		out = append(out, usecase.DraftModifierInput{Kind: m.Kind, Value: m.Value})
	}
	return out
}
