package entities

import (
	"time"

	"quotekit/internal/domain/pricing"
)

// JobType is a priced service a company offers ("Window cleaning", "Roof
// replacement"). BasePrice is in minor units and stays nil while the form
// author is still drafting; an unpriced job type cannot produce estimates.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
type JobType struct {
	ID          string         `json:"id"`
	CompanyID   string         `json:"company_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	BasePrice   *pricing.Money `json:"base_price,omitempty"`
	Currency    string         `json:"currency"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (j JobType) PricingJob() pricing.Job {
	return pricing.Job{BasePrice: j.BasePrice, Currency: j.Currency}
}
