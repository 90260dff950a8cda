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

func TestJobTypeHandler_CreateJobType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing company id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobTypeUseCase(ctrl)
		h := NewJobTypeHandler(uc)

		r := gin.New()
		r.POST("/v1/job-types", h.CreateJobType)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-types", bytes.NewBufferString(`{"name":"Badrum"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with base price in minor units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobTypeUseCase(ctrl)
		h := NewJobTypeHandler(uc)

		r := gin.New()
		r.POST("/v1/job-types", h.CreateJobType)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateJobTypeCommand) (entities.JobType, error) {
				if cmd.BasePrice == nil || *cmd.BasePrice != pricing.Money(15_000_000) {
					t.Fatalf("unexpected base price: %+v", cmd.BasePrice)
				}
				price := *cmd.BasePrice
				return entities.JobType{ID: "j-1", CompanyID: cmd.CompanyID, Name: cmd.Name, BasePrice: &price, Currency: "SEK"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/job-types", bytes.NewBufferString(`{"company_id":"c-1","name":"Badrum","base_price":15000000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["base_price"] != float64(15_000_000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("draft without base price omits the field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobTypeUseCase(ctrl)
		h := NewJobTypeHandler(uc)

		r := gin.New()
		r.POST("/v1/job-types", h.CreateJobType)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.JobType{ID: "j-1", CompanyID: "c-1", Name: "Badrum", Currency: "SEK"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-types", bytes.NewBufferString(`{"company_id":"c-1","name":"Badrum"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("base_price")) {
			t.Fatalf("expected base_price omitted, got %s", w.Body.String())
		}
	})
}

func TestJobTypeHandler_DeleteJobType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobTypeUseCase(ctrl)
		h := NewJobTypeHandler(uc)

		r := gin.New()
		r.DELETE("/v1/job-types/:job_type_id", h.DeleteJobType)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrJobTypeNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/job-types/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobTypeUseCase(ctrl)
		h := NewJobTypeHandler(uc)

		r := gin.New()
		r.DELETE("/v1/job-types/:job_type_id", h.DeleteJobType)

		uc.EXPECT().Delete(gomock.Any(), "j-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/job-types/j-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapJobTypeError(t *testing.T) {
	if got := mapJobTypeError(usecase.ErrInvalidBasePrice); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobTypeError(usecase.ErrJobTypeNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapJobTypeError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
