package handlers

import (
	"errors"
	"net/http"
	request "quotekit/internal/adapter/http/dto/request"
	response "quotekit/internal/adapter/http/dto/response"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase"
	"quotekit/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuestionPayload = pkg.NewDomainErrorSimple("INVALID_QUESTION_INPUT", "Invalid question payload", http.StatusBadRequest)
)

// QuestionHandler handles the form builder's question endpoints, including
// reordering and template import.

type QuestionHandler struct {
	usecase usecase.IQuestionUseCase
}

func NewQuestionHandler(uc usecase.IQuestionUseCase) *QuestionHandler {
	return &QuestionHandler{usecase: uc}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var payload request.CreateQuestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	question, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuestion(question))
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.usecase.GetByID(c.Request.Context(), c.Param("question_id"))
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestion(question))
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.usecase.ListByJobTypeID(c.Request.Context(), c.Param("job_type_id"))
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestions(questions))
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var payload request.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	question, err := h.usecase.Update(c.Request.Context(), c.Param("question_id"), payload.ToCommand())
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestion(question))
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("question_id")); err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderQuestions rewrites the display order of a job type's form. Order is
// pricing-significant, so the payload must list every question exactly once.
func (h *QuestionHandler) ReorderQuestions(c *gin.Context) {
	var payload request.ReorderQuestionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	questions, err := h.usecase.Reorder(c.Request.Context(), c.Param("job_type_id"), payload.QuestionIDs)
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestions(questions))
}

func (h *QuestionHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTemplates(h.usecase.Templates()))
}

func (h *QuestionHandler) ImportTemplate(c *gin.Context) {
	var payload request.ImportTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	questions, err := h.usecase.ImportTemplate(c.Request.Context(), c.Param("job_type_id"), payload.TemplateID)
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuestions(questions))
}

func mapQuestionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuestionID),
		errors.Is(err, usecase.ErrInvalidQuestionText),
		errors.Is(err, usecase.ErrInvalidQuestionType),
		errors.Is(err, usecase.ErrInvalidAnswerOption),
		errors.Is(err, usecase.ErrInvalidJobTypeID),
		errors.Is(err, usecase.ErrQuestionOrderMismatch),
		errors.Is(err, pricing.ErrUnknownModifierKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuestionNotFound):
		return pkg.NewDomainErrorSimple("QUESTION_NOT_FOUND", "Question not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobTypeNotFound):
		return pkg.NewDomainErrorSimple("JOB_TYPE_NOT_FOUND", "Job type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Service template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
