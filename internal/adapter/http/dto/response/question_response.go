package response

import (
	"time"

	"quotekit/internal/domain/entities"
)

type AnswerOptionResponse struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	ModifierKind  string  `json:"modifier_kind"`
	ModifierValue float64 `json:"modifier_value"`
	Position      int     `json:"position"`
}

type QuestionResponse struct {
	ID        string                 `json:"id"`
	JobTypeID string                 `json:"job_type_id"`
	Text      string                 `json:"text"`
	Type      string                 `json:"type"`
	Position  int                    `json:"position"`
	Unit      string                 `json:"unit,omitempty"`
	UnitRate  *float64               `json:"unit_rate,omitempty"`
	Options   []AnswerOptionResponse `json:"options,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func FromQuestion(q entities.Question) QuestionResponse {
	resp := QuestionResponse{
		ID:        q.ID,
		JobTypeID: q.JobTypeID,
		Text:      q.Text,
		Type:      string(q.Type),
		Position:  q.Position,
		Unit:      q.Unit,
		UnitRate:  q.UnitRate,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, AnswerOptionResponse{
			ID:            opt.ID,
			Label:         opt.Label,
			ModifierKind:  opt.ModifierKind,
			ModifierValue: opt.ModifierValue,
			Position:      opt.Position,
		})
	}
	return resp
}

func FromQuestions(questions []entities.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, FromQuestion(q))
	}
	return out
}
