package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"quotekit/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges subscription checkouts through Mercado Pago. In
// mock mode it fabricates approved responses so the checkout flow can be run
// end to end without provider credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) MockMode() bool {
	return g != nil && g.mockMode
}

// CreatePayment charges one subscription period. The client's payment method
// details are decoded into the provider request, then the charge fields are
// stamped on top: the amount a customer is billed never comes from the
// client payload.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, charge interfaces.CheckoutCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g.MockMode() {
		return g.mockPayment(charge)
	}

	if g == nil || g.client == nil {
		log.Printf("[billing][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] create start amount=%v reference=%s", charge.Amount, charge.ExternalReference)

	var req payment.Request
	if len(charge.Method) > 0 {
		if err := json.Unmarshal(charge.Method, &req); err != nil {
			log.Printf("[billing][gateway] payment method decode failed err=%v", err)
			return "", "", nil, err
		}
	}
	req.TransactionAmount = charge.Amount
	req.Description = charge.Description
	req.ExternalReference = charge.ExternalReference

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[billing][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[billing][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPayment fabricates the approved response a real charge would produce,
// echoing the charge fields so downstream reconciliation can be exercised.
func (g *MercadoPagoGateway) mockPayment(charge interfaces.CheckoutCharge) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	b, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"transaction_amount": charge.Amount,
		"currency_id":        charge.Currency,
		"description":        charge.Description,
		"external_reference": charge.ExternalReference,
		"date_created":       now,
		"date_approved":      now,
	})
	if err != nil {
		log.Printf("[billing][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[billing][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
