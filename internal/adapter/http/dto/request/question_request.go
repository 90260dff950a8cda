package request

import (
	"quotekit/internal/domain/entities"
	"quotekit/internal/usecase"
)

type AnswerOptionRequest struct {
	Label         string  `json:"label" binding:"required"`
	ModifierKind  string  `json:"modifier_kind" binding:"required"`
	ModifierValue float64 `json:"modifier_value"`
}

func toOptionInputs(opts []AnswerOptionRequest) []usecase.OptionInput {
	if opts == nil {
		return nil
	}
	out := make([]usecase.OptionInput, 0, len(opts))
	for _, o := range opts {
		out = append(out, usecase.OptionInput{
			Label:         o.Label,
			ModifierKind:  o.ModifierKind,
			ModifierValue: o.ModifierValue,
		})
	}
	return out
}

type CreateQuestionRequest struct {
	JobTypeID string                `json:"job_type_id" binding:"required"`
	Text      string                `json:"text" binding:"required"`
	Type      string                `json:"type" binding:"required"`
	Unit      string                `json:"unit"`
	UnitRate  *float64              `json:"unit_rate"`
	Options   []AnswerOptionRequest `json:"options"`
}

func (r CreateQuestionRequest) ToCommand() usecase.CreateQuestionCommand {
	return usecase.CreateQuestionCommand{
		JobTypeID: r.JobTypeID,
		Text:      r.Text,
		Type:      entities.QuestionType(r.Type),
		Unit:      r.Unit,
		UnitRate:  r.UnitRate,
		Options:   toOptionInputs(r.Options),
	}
}

type UpdateQuestionRequest struct {
	Text     *string               `json:"text"`
	Unit     *string               `json:"unit"`
	UnitRate *float64              `json:"unit_rate"`
	Options  []AnswerOptionRequest `json:"options"`
}

func (r UpdateQuestionRequest) ToCommand() usecase.UpdateQuestionCommand {
	return usecase.UpdateQuestionCommand{
		Text:     r.Text,
		Unit:     r.Unit,
		UnitRate: r.UnitRate,
		Options:  toOptionInputs(r.Options),
	}
}

type ReorderQuestionsRequest struct {
	QuestionIDs []string `json:"question_ids" binding:"required"`
}

type ImportTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}
