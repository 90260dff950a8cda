package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quotekit/internal/domain/entities"
	"quotekit/internal/usecase/interfaces"
	mock_interfaces "quotekit/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillingUseCase_Plans(t *testing.T) {
	uc := NewBillingUseCase(nil, nil)
	got := uc.Plans()
	if len(got) == 0 {
		t.Fatal("expected a plan catalog")
	}
	for _, p := range got {
		if p.ID == "" || p.MonthlyPrice <= 0 || p.Currency == "" {
			t.Fatalf("incomplete plan: %+v", p)
		}
	}
}

func TestBillingUseCase_Checkout(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), "  ", "starter", json.RawMessage("{}"))
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), "c-1", "platinum", json.RawMessage("{}"))
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewBillingUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), "c-1", "starter", json.RawMessage("not-json"))
		if !errors.Is(err, ErrInvalidCheckoutPayload) {
			t.Fatalf("expected ErrInvalidCheckoutPayload, got %v", err)
		}
	})

	t.Run("charge built from the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingUseCase(companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Company{ID: "c-1", Name: "Rör & Son"}, nil)
		gateway.EXPECT().MockMode().Return(false).AnyTimes()
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, charge interfaces.CheckoutCharge) (string, string, json.RawMessage, error) {
				if charge.ExternalReference != "c-1" {
					t.Fatalf("expected external reference c-1, got %q", charge.ExternalReference)
				}
				// The client payload never sets the amount; the catalog does.
				if charge.Amount != 349 || charge.Currency != "SEK" {
					t.Fatalf("expected catalog amount 349 SEK, got %v %s", charge.Amount, charge.Currency)
				}
				var m map[string]any
				if err := json.Unmarshal(charge.Method, &m); err != nil {
					t.Fatalf("method payload not json: %v", err)
				}
				if m["payment_method_id"] != "visa" {
					t.Fatalf("expected method details passed through, got %v", m)
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)

		res, err := uc.Checkout(context.Background(), "c-1", "starter",
			json.RawMessage(`{"payment_method_id":"visa","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentID != "pay-1" || res.Status != "approved" || res.PlanID != "starter" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway unauthorized mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingUseCase(companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Company{ID: "c-1"}, nil)
		gateway.EXPECT().MockMode().Return(false).AnyTimes()
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`mercadopago create payment failed: {"error":"unauthorized","status":401}`))

		_, err := uc.Checkout(context.Background(), "c-1", "pro", json.RawMessage("{}"))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("mock gateway tolerates a missing method payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		companyRepo := mock_interfaces.NewMockICompanyRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingUseCase(companyRepo, gateway)

		companyRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Company{ID: "c-1"}, nil)
		gateway.EXPECT().MockMode().Return(true).AnyTimes()
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, charge interfaces.CheckoutCharge) (string, string, json.RawMessage, error) {
				if string(charge.Method) != "{}" {
					t.Fatalf("expected empty method payload, got %q", charge.Method)
				}
				if charge.Amount != 1299 {
					t.Fatalf("expected catalog amount 1299, got %v", charge.Amount)
				}
				return "mock-1", "approved", json.RawMessage(`{"id":"mock-1","status":"approved"}`), nil
			},
		)

		res, err := uc.Checkout(context.Background(), "c-1", "unlimited", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentID != "mock-1" || res.Status != "approved" {
			t.Fatalf("unexpected mock result: %+v", res)
		}
	})
}
