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

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.POST("/v1/questions", h.CreateQuestion)

		req := httptest.NewRequest(http.MethodPost, "/v1/questions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown modifier kind maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.POST("/v1/questions", h.CreateQuestion)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Question{}, pricing.ErrUnknownModifierKind)

		payload := `{"job_type_id":"j-1","text":"Size?","type":"single_choice","options":[{"label":"Small","modifier_kind":"bogus"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/questions", bytes.NewBufferString(payload))
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
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.POST("/v1/questions", h.CreateQuestion)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateQuestionCommand) (entities.Question, error) {
				if cmd.JobTypeID != "j-1" || cmd.Type != entities.QuestionTypeSingleChoice {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Question{
					ID:        "q-1",
					JobTypeID: cmd.JobTypeID,
					Text:      cmd.Text,
					Type:      cmd.Type,
					Options: []entities.AnswerOption{
						{ID: "opt-1", Label: "Small", ModifierKind: "fixed_subtract", ModifierValue: 5000},
					},
				}, nil
			})

		payload := `{"job_type_id":"j-1","text":"Size?","type":"single_choice","options":[{"label":"Small","modifier_kind":"fixed_subtract","modifier_value":5000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/questions", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuestionHandler_ReorderQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.PUT("/v1/job-types/:job_type_id/questions/order", h.ReorderQuestions)

		uc.EXPECT().Reorder(gomock.Any(), "j-1", []string{"q-1"}).Return(nil, usecase.ErrQuestionOrderMismatch)

		req := httptest.NewRequest(http.MethodPut, "/v1/job-types/j-1/questions/order", bytes.NewBufferString(`{"question_ids":["q-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns questions in new order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.PUT("/v1/job-types/:job_type_id/questions/order", h.ReorderQuestions)

		uc.EXPECT().Reorder(gomock.Any(), "j-1", []string{"q-2", "q-1"}).Return([]entities.Question{
			{ID: "q-2", JobTypeID: "j-1", Position: 0},
			{ID: "q-1", JobTypeID: "j-1", Position: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/job-types/j-1/questions/order", bytes.NewBufferString(`{"question_ids":["q-2","q-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "q-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuestionHandler_Templates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list templates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.GET("/v1/templates", h.ListTemplates)

		uc.EXPECT().Templates().Return([]entities.ServiceTemplate{
			{ID: "interior-painting", Name: "Interior painting", Trade: "painting", Questions: make([]entities.TemplateQuestion, 3)},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["question_count"] != float64(3) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("import unknown template maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.POST("/v1/job-types/:job_type_id/template-import", h.ImportTemplate)

		uc.EXPECT().ImportTemplate(gomock.Any(), "j-1", "bogus").Return(nil, usecase.ErrTemplateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-types/j-1/template-import", bytes.NewBufferString(`{"template_id":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("import success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		h := NewQuestionHandler(uc)

		r := gin.New()
		r.POST("/v1/job-types/:job_type_id/template-import", h.ImportTemplate)

		uc.EXPECT().ImportTemplate(gomock.Any(), "j-1", "interior-painting").Return([]entities.Question{
			{ID: "q-1", JobTypeID: "j-1", Type: entities.QuestionTypeNumber},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-types/j-1/template-import", bytes.NewBufferString(`{"template_id":"interior-painting"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapQuestionError(t *testing.T) {
	if got := mapQuestionError(usecase.ErrInvalidQuestionText); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuestionError(usecase.ErrQuestionOrderMismatch); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuestionError(usecase.ErrQuestionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuestionError(usecase.ErrTemplateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuestionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
