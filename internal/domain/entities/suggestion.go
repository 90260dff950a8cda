package entities

// QuestionSuggestion is a model-suggested estimator question. Options are
// plain labels; pricing is always configured by the form author afterwards.
type QuestionSuggestion struct {
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}
