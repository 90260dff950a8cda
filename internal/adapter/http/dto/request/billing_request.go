package request

import "encoding/json"

// CheckoutRequest starts a subscription checkout. Payload is forwarded to the
// payment provider after server-side enrichment; the charged amount always
// comes from the plan catalog, never from the client.
type CheckoutRequest struct {
	CompanyID string          `json:"company_id" binding:"required"`
	PlanID    string          `json:"plan_id" binding:"required"`
	Payload   json.RawMessage `json:"payload"`
}
