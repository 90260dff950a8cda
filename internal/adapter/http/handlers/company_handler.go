package handlers

import (
	"errors"
	"net/http"
	request "quotekit/internal/adapter/http/dto/request"
	response "quotekit/internal/adapter/http/dto/response"
	"quotekit/internal/usecase"
	"quotekit/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCompanyPayload = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Invalid company payload", http.StatusBadRequest)
)

// CompanyHandler handles the tenant dashboard's company endpoints.

type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var payload request.CreateCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCompany(company))
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.usecase.GetByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

// UpdateCompanySettings replaces the settings wholesale; fields absent from
// the payload return to their defaults.
func (h *CompanyHandler) UpdateCompanySettings(c *gin.Context) {
	var payload request.CompanySettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.UpdateSettings(c.Request.Context(), c.Param("company_id"), payload.ToInput())
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func mapCompanyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidCompanyName),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
