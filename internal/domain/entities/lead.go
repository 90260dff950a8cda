package entities

import (
	"time"

	"quotekit/internal/domain/pricing"
)

// LeadStatus is the Kanban column a lead sits in on the dashboard.

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQuoted    LeadStatus = "quoted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// LeadResponse records what the customer answered. Option IDs reference
// persisted AnswerOptions; RawAnswer keeps free-text/number input verbatim
// for the CRM view (it is never priced directly).
type LeadResponse struct {
	QuestionID      string   `json:"question_id"`
	AnswerOptionIDs []string `json:"answer_option_ids,omitempty"`
	RawAnswer       string   `json:"raw_answer,omitempty"`
}

// Lead is a customer submission with its estimate snapshot. The estimate is
// computed server-side at creation time from persisted answer options and is
// never recomputed afterward, even if the form's pricing changes later.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
type Lead struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"company_id"`
	JobTypeID string         `json:"job_type_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Responses []LeadResponse `json:"responses,omitempty"`

	EstimatedPriceLow  pricing.Money     `json:"estimated_price_low"`
	EstimatedPriceHigh pricing.Money     `json:"estimated_price_high"`
	Currency           string            `json:"currency"`
	Value              pricing.LeadValue `json:"value"`

	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
