package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"quotekit/internal/usecase/interfaces"
)

var (
	ErrPlanNotFound               = errors.New("subscription plan not found")
	ErrInvalidCheckoutPayload     = errors.New("invalid checkout payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// Plan is a contractor subscription tier. Prices are in major currency units
// because that is what the payment provider's transaction_amount field takes.
type Plan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	Currency     string  `json:"currency"`
	LeadLimit    int     `json:"lead_limit"`
}

var plans = []Plan{
	{ID: "starter", Name: "Starter", MonthlyPrice: 349, Currency: "SEK", LeadLimit: 25},
	{ID: "pro", Name: "Pro", MonthlyPrice: 699, Currency: "SEK", LeadLimit: 200},
	{ID: "unlimited", Name: "Unlimited", MonthlyPrice: 1299, Currency: "SEK", LeadLimit: 0},
}

type CheckoutResult struct {
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	PlanID    string          `json:"plan_id"`
	Response  json.RawMessage `json:"response,omitempty"`
}

// IBillingUseCase handles contractor subscription checkout.

type IBillingUseCase interface {
	Plans() []Plan
	Checkout(ctx context.Context, companyID, planID string, payload json.RawMessage) (CheckoutResult, error)
}

type BillingUseCase struct {
	companyRepo interfaces.ICompanyRepository
	gateway     interfaces.IPaymentGateway
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(companyRepo interfaces.ICompanyRepository, gateway interfaces.IPaymentGateway) *BillingUseCase {
	return &BillingUseCase{companyRepo: companyRepo, gateway: gateway}
}

func (u *BillingUseCase) Plans() []Plan {
	return plans
}

func planByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Checkout charges one subscription period through the payment provider. The
// charged amount, description and tenant reference always come from the plan
// catalog and the company record; the client payload only carries payment
// method details and is handed to the gateway untouched.
func (u *BillingUseCase) Checkout(ctx context.Context, companyID, planID string, payload json.RawMessage) (CheckoutResult, error) {
	log.Printf("[billing][usecase] checkout start company_id=%q plan_id=%q payload_len=%d", companyID, planID, len(payload))

	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return CheckoutResult{}, ErrInvalidCompanyID
	}
	plan, ok := planByID(strings.TrimSpace(planID))
	if !ok {
		return CheckoutResult{}, ErrPlanNotFound
	}

	// A mock-mode gateway fabricates the charge, so a missing or malformed
	// method payload is tolerated there; a real charge needs real details.
	mockMode := u.gateway != nil && u.gateway.MockMode()
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[billing][usecase] invalid payload company_id=%s", companyID)
			return CheckoutResult{}, ErrInvalidCheckoutPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return CheckoutResult{}, errors.New("payment gateway not configured")
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if company.ID == "" {
		return CheckoutResult{}, ErrCompanyNotFound
	}

	charge := interfaces.CheckoutCharge{
		Amount:            plan.MonthlyPrice,
		Currency:          plan.Currency,
		Description:       fmt.Sprintf("QuoteKit %s subscription", plan.Name),
		ExternalReference: company.ID,
		Method:            payload,
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, charge)
	if err != nil {
		log.Printf("[billing][usecase] payment gateway failed company_id=%s err=%v", companyID, err)
		if isGatewayUnauthorized(err) {
			return CheckoutResult{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return CheckoutResult{}, ErrPaymentGatewayBadRequest
		}
		return CheckoutResult{}, err
	}

	log.Printf("[billing][usecase] checkout success company_id=%s payment_id=%s status=%s", companyID, providerPaymentID, providerStatus)
	return CheckoutResult{
		PaymentID: providerPaymentID,
		Status:    providerStatus,
		PlanID:    plan.ID,
		Response:  providerResp,
	}, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
