package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotekit/internal/adapter/http/handlers/mocks"
	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/public/estimator/:company_id/:job_type_id/quote", h.Quote)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/estimator/c-1/j-1/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown answer option maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/public/estimator/:company_id/:job_type_id/quote", h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "c-1", "j-1", gomock.Any()).Return(pricing.EstimateResult{}, usecase.ErrUnknownAnswerOption)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/estimator/c-1/j-1/quote", bytes.NewBufferString(`{"answers":[{"question_id":"q-1","answer_option_ids":["nope"]}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/public/estimator/:company_id/:job_type_id/quote", h.Quote)

		uc.EXPECT().Quote(gomock.Any(), "c-1", "j-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, responses []usecase.ResponseInput) (pricing.EstimateResult, error) {
				if len(responses) != 1 || responses[0].QuestionID != "q-1" {
					t.Fatalf("unexpected responses: %+v", responses)
				}
				return pricing.EstimateResult{
					BasePrice:  10_000_000,
					FinalPrice: 12_500_000,
					PriceLow:   11_250_000,
					PriceHigh:  14_375_000,
					Currency:   "SEK",
					Breakdown: []pricing.ModifierApplication{
						{QuestionID: "q-1", Kind: pricing.AddPercent, Value: 25, PriceBefore: 10_000_000, PriceAfter: 12_500_000},
					},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/public/estimator/c-1/j-1/quote", bytes.NewBufferString(`{"answers":[{"question_id":"q-1","answer_option_ids":["opt-1"]}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_price"] != float64(12_500_000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		steps, _ := body["breakdown"].([]any)
		if len(steps) != 1 {
			t.Fatalf("expected 1 breakdown step, got %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_PreviewDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown kind maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/preview", h.PreviewDraft)

		uc.EXPECT().PreviewDraft(gomock.Any(), "c-1", pricing.Money(100_000), gomock.Any()).Return(pricing.PreviewResult{}, pricing.ErrUnknownModifierKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/preview", bytes.NewBufferString(`{"company_id":"c-1","base_price":100000,"modifiers":[{"kind":"bogus"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/preview", h.PreviewDraft)

		uc.EXPECT().PreviewDraft(gomock.Any(), "c-1", pricing.Money(100_000), gomock.Any()).Return(pricing.PreviewResult{
			FinalPrice: 125_000,
			PriceLow:   112_500,
			PriceHigh:  143_750,
			Breakdown:  []pricing.PreviewStep{{Description: "+25 %", PriceAfter: 125_000}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/preview", bytes.NewBufferString(`{"company_id":"c-1","base_price":100000,"modifiers":[{"kind":"percentage_add","value":25}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_PublicSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("form definition hides modifier config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/public/estimator/:company_id/:job_type_id", h.GetFormDefinition)

		uc.EXPECT().FormDefinition(gomock.Any(), "c-1", "j-1").Return(usecase.FormDefinition{
			Company: entities.Company{ID: "c-1", Name: "Demo Bygg", Locale: "sv-SE"},
			JobType: entities.JobType{ID: "j-1", CompanyID: "c-1", Name: "Badrum", Currency: "SEK"},
			Questions: []entities.Question{
				{
					ID:   "q-1",
					Text: "Hur stort är badrummet?",
					Type: entities.QuestionTypeSingleChoice,
					Options: []entities.AnswerOption{
						{ID: "opt-1", Label: "Litet", ModifierKind: "fixed_subtract", ModifierValue: 5000},
					},
				},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/estimator/c-1/j-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("modifier")) {
			t.Fatalf("form definition leaked modifier config: %s", w.Body.String())
		}
	})

	t.Run("widget config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/public/widget/:company_id", h.GetWidgetConfig)

		uc.EXPECT().WidgetConfig(gomock.Any(), "c-1").Return(usecase.WidgetConfig{
			Company:  entities.Company{ID: "c-1", Name: "Demo Bygg", Currency: "SEK", Locale: "sv-SE"},
			JobTypes: []entities.JobType{{ID: "j-1", Name: "Badrum"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/widget/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["locale"] != "sv-SE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("company not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/public/widget/:company_id", h.GetWidgetConfig)

		uc.EXPECT().WidgetConfig(gomock.Any(), "missing").Return(usecase.WidgetConfig{}, usecase.ErrCompanyNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/widget/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidResponse); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(pricing.ErrMissingBasePrice); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrJobTypeNotOwned); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(pricing.ErrUnknownModifierKind); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapDraftPreviewError(pricing.ErrUnknownModifierKind); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
