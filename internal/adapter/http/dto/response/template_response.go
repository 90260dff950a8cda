package response

import (
	"quotekit/internal/domain/entities"
)

type TemplateResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Trade         string `json:"trade"`
	QuestionCount int    `json:"question_count"`
}

func FromTemplates(templates []entities.ServiceTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateResponse{
			ID:            t.ID,
			Name:          t.Name,
			Trade:         t.Trade,
			QuestionCount: len(t.Questions),
		})
	}
	return out
}

type SuggestionResponse struct {
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

func FromSuggestions(suggestions []entities.QuestionSuggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionResponse{
			Text:    s.Text,
			Type:    string(s.Type),
			Options: s.Options,
		})
	}
	return out
}
