package interfaces

import (
	"context"
	"encoding/json"
)

// CheckoutCharge is a provider-agnostic charge order. Amount, Description and
// ExternalReference come from the server-side plan catalog and always win
// over anything in Method, which carries the client's provider-specific
// payment method details verbatim.
type CheckoutCharge struct {
	Amount            float64
	Currency          string
	Description       string
	ExternalReference string
	Method            json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago)
// used for contractor subscription checkout. The provider response payload is
// returned raw for traceability. MockMode reports whether the gateway
// fabricates approved responses instead of charging.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, charge CheckoutCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	MockMode() bool
}
