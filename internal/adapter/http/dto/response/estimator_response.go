package response

import (
	"quotekit/internal/domain/entities"
)

// PublicOptionResponse deliberately omits modifier kind and value: the widget
// renders labels and the server computes every price.
type PublicOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PublicQuestionResponse struct {
	ID       string                 `json:"id"`
	Text     string                 `json:"text"`
	Type     string                 `json:"type"`
	Position int                    `json:"position"`
	Unit     string                 `json:"unit,omitempty"`
	Options  []PublicOptionResponse `json:"options,omitempty"`
}

// FormDefinitionResponse is what the embeddable widget fetches to render one
// job type's estimator flow.
type FormDefinitionResponse struct {
	CompanyID   string                   `json:"company_id"`
	CompanyName string                   `json:"company_name"`
	JobTypeID   string                   `json:"job_type_id"`
	JobTypeName string                   `json:"job_type_name"`
	Currency    string                   `json:"currency"`
	Locale      string                   `json:"locale"`
	Questions   []PublicQuestionResponse `json:"questions"`
}

func FromFormDefinition(company entities.Company, jobType entities.JobType, questions []entities.Question) FormDefinitionResponse {
	resp := FormDefinitionResponse{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		JobTypeID:   jobType.ID,
		JobTypeName: jobType.Name,
		Currency:    jobType.Currency,
		Locale:      string(company.Locale),
		Questions:   make([]PublicQuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		pq := PublicQuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Type:     string(q.Type),
			Position: q.Position,
			Unit:     q.Unit,
		}
		for _, opt := range q.Options {
			pq.Options = append(pq.Options, PublicOptionResponse{ID: opt.ID, Label: opt.Label})
		}
		resp.Questions = append(resp.Questions, pq)
	}
	return resp
}

type WidgetJobTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// WidgetConfigResponse bootstraps the embed script: which job types exist and
// how to format money client-side.
type WidgetConfigResponse struct {
	CompanyID   string                  `json:"company_id"`
	CompanyName string                  `json:"company_name"`
	Currency    string                  `json:"currency"`
	Locale      string                  `json:"locale"`
	JobTypes    []WidgetJobTypeResponse `json:"job_types"`
}

func FromWidgetConfig(company entities.Company, jobTypes []entities.JobType) WidgetConfigResponse {
	resp := WidgetConfigResponse{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Currency:    company.Currency,
		Locale:      string(company.Locale),
		JobTypes:    make([]WidgetJobTypeResponse, 0, len(jobTypes)),
	}
	for _, j := range jobTypes {
		resp.JobTypes = append(resp.JobTypes, WidgetJobTypeResponse{
			ID:          j.ID,
			Name:        j.Name,
			Description: j.Description,
		})
	}
	return resp
}
