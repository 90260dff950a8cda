package response

import (
	"time"

	"quotekit/internal/domain/entities"
)

type JobTypeResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BasePrice   *int64    `json:"base_price,omitempty"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromJobType(j entities.JobType) JobTypeResponse {
	resp := JobTypeResponse{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		Name:        j.Name,
		Description: j.Description,
		Currency:    j.Currency,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
	if j.BasePrice != nil {
		v := int64(*j.BasePrice)
		resp.BasePrice = &v
	}
	return resp
}

func FromJobTypes(jobTypes []entities.JobType) []JobTypeResponse {
	out := make([]JobTypeResponse, 0, len(jobTypes))
	for _, j := range jobTypes {
		out = append(out, FromJobType(j))
	}
	return out
}
