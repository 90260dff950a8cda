package response

import (
	"time"

	"quotekit/internal/domain/entities"
)

type LeadAnswerResponse struct {
	QuestionID      string   `json:"question_id"`
	AnswerOptionIDs []string `json:"answer_option_ids,omitempty"`
	RawAnswer       string   `json:"raw_answer,omitempty"`
}

type LeadResponse struct {
	ID                 string               `json:"id"`
	CompanyID          string               `json:"company_id"`
	JobTypeID          string               `json:"job_type_id"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Phone              string               `json:"phone,omitempty"`
	Answers            []LeadAnswerResponse `json:"answers,omitempty"`
	EstimatedPriceLow  int64                `json:"estimated_price_low"`
	EstimatedPriceHigh int64                `json:"estimated_price_high"`
	Currency           string               `json:"currency"`
	Value              string               `json:"value"`
	Status             string               `json:"status"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	resp := LeadResponse{
		ID:                 l.ID,
		CompanyID:          l.CompanyID,
		JobTypeID:          l.JobTypeID,
		Name:               l.Name,
		Email:              l.Email,
		Phone:              l.Phone,
		EstimatedPriceLow:  int64(l.EstimatedPriceLow),
		EstimatedPriceHigh: int64(l.EstimatedPriceHigh),
		Currency:           l.Currency,
		Value:              string(l.Value),
		Status:             string(l.Status),
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
	for _, a := range l.Responses {
		resp.Answers = append(resp.Answers, LeadAnswerResponse{
			QuestionID:      a.QuestionID,
			AnswerOptionIDs: a.AnswerOptionIDs,
			RawAnswer:       a.RawAnswer,
		})
	}
	return resp
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}

// EstimateSnapshotResponse is the range persisted on the lead at submission
// time. The final price stays server-side; customers only ever see the band.
type EstimateSnapshotResponse struct {
	PriceLow  int64  `json:"price_low"`
	PriceHigh int64  `json:"price_high"`
	Currency  string `json:"currency"`
}

// CreatedLeadResponse is the public submission result: the lead reference
// plus the estimate snapshot the customer already walked through.
type CreatedLeadResponse struct {
	LeadID   string                   `json:"lead_id"`
	Estimate EstimateSnapshotResponse `json:"estimate"`
}

func FromCreatedLead(l entities.Lead) CreatedLeadResponse {
	return CreatedLeadResponse{
		LeadID: l.ID,
		Estimate: EstimateSnapshotResponse{
			PriceLow:  int64(l.EstimatedPriceLow),
			PriceHigh: int64(l.EstimatedPriceHigh),
			Currency:  l.Currency,
		},
	}
}
