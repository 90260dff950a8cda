package handlers

import (
	"errors"
	"net/http"
	response "quotekit/internal/adapter/http/dto/response"
	"quotekit/internal/usecase"
	"quotekit/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler serves AI question suggestions for the form builder.
// Gateway degradation is handled below the usecase, so this endpoint only
// fails on invalid input.

type SuggestionHandler struct {
	usecase usecase.ISuggestionUseCase
}

func NewSuggestionHandler(uc usecase.ISuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{usecase: uc}
}

func (h *SuggestionHandler) SuggestQuestions(c *gin.Context) {
	count, _ := strconv.Atoi(c.Query("count"))

	suggestions, err := h.usecase.SuggestQuestions(c.Request.Context(), c.Query("trade"), count)
	if err != nil {
		appErr := mapSuggestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSuggestions(suggestions))
}

func mapSuggestionError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidTrade) {
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
