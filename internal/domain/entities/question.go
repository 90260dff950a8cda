package entities

import "time"

// QuestionType determines how an answer is collected and priced: choice
// questions price through their options, number questions through an
// optional per-unit rate, text questions are never priced.

type QuestionType string

const (
	QuestionTypeSingleChoice   QuestionType = "single_choice"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeNumber         QuestionType = "number"
	QuestionTypeText           QuestionType = "text"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice, QuestionTypeNumber, QuestionTypeText:
		return true
	}
	return false
}

func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultipleChoice
}

// AnswerOption carries the answer-option authoring vocabulary (fixed_add,
// fixed_subtract, percentage_add, percentage_subtract, multiply) exactly as
// the editor stores it. Normalization into the canonical modifier enum
// happens at pricing time, never here.
type AnswerOption struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	ModifierKind  string  `json:"modifier_kind"`
	ModifierValue float64 `json:"modifier_value"`
	Position      int     `json:"position"`
}

// Question belongs to a job type's estimator form. Position is the display
// order, which is also the order modifiers are applied in, so reordering
// questions changes compounded results.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_type_id-index): job_type_id
type Question struct {
	ID        string         `json:"id"`
	JobTypeID string         `json:"job_type_id"`
	CompanyID string         `json:"company_id"`
	Text      string         `json:"text"`
	Type      QuestionType   `json:"type"`
	Position  int            `json:"position"`
	Unit      string         `json:"unit,omitempty"`
	UnitRate  *float64       `json:"unit_rate,omitempty"`
	Options   []AnswerOption `json:"options,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// OptionByID resolves one of the question's persisted options. Lead ingestion
// uses this to re-derive modifiers from stored data instead of trusting
// anything the client submitted.
func (q Question) OptionByID(id string) (AnswerOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return AnswerOption{}, false
}
