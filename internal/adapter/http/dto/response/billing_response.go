package response

import (
	"encoding/json"

	"quotekit/internal/usecase"
)

type PlanResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	Currency     string  `json:"currency"`
	LeadLimit    int     `json:"lead_limit"`
}

func FromPlans(plans []usecase.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice,
			Currency:     p.Currency,
			LeadLimit:    p.LeadLimit,
		})
	}
	return out
}

type CheckoutResponse struct {
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	PlanID    string          `json:"plan_id"`
	Response  json.RawMessage `json:"response,omitempty"`
}

func FromCheckoutResult(res usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		PaymentID: res.PaymentID,
		Status:    res.Status,
		PlanID:    res.PlanID,
		Response:  res.Response,
	}
}
