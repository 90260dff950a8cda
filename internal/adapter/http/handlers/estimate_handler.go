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
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the public estimator surface and the form builder's
// price previews. Every price it returns is computed server-side.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetFormDefinition returns the widget's rendering data for one job type.
// Option modifier config is withheld on purpose.
func (h *EstimateHandler) GetFormDefinition(c *gin.Context) {
	form, err := h.usecase.FormDefinition(c.Request.Context(), c.Param("company_id"), c.Param("job_type_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFormDefinition(form.Company, form.JobType, form.Questions))
}

// GetWidgetConfig returns the embed bootstrap data for a company.
func (h *EstimateHandler) GetWidgetConfig(c *gin.Context) {
	cfg, err := h.usecase.WidgetConfig(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWidgetConfig(cfg.Company, cfg.JobTypes))
}

// Quote prices a public estimator submission without creating a lead.
func (h *EstimateHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Quote(c.Request.Context(), c.Param("company_id"), c.Param("job_type_id"), payload.ToInputs())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

// PreviewJobType prices the form with the first option of every choice
// question selected, for the builder's sample estimate.
func (h *EstimateHandler) PreviewJobType(c *gin.Context) {
	result, err := h.usecase.PreviewJobType(c.Request.Context(), c.Param("job_type_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

// PreviewDraft prices unsaved builder input. Unknown modifier kinds here are
// client input, so they map to 400 rather than the 500 a corrupted stored
// form would produce.
func (h *EstimateHandler) PreviewDraft(c *gin.Context) {
	var payload request.PreviewDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.PreviewDraft(c.Request.Context(), payload.CompanyID, pricing.Money(payload.BasePrice), payload.ToInputs())
	if err != nil {
		appErr := mapDraftPreviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreviewResult(result))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidJobTypeID),
		errors.Is(err, usecase.ErrInvalidResponse),
		errors.Is(err, usecase.ErrUnknownAnswerOption):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrMissingBasePrice):
		return pkg.NewDomainErrorSimple("MISSING_BASE_PRICE", "Job type has no base price configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobTypeNotFound), errors.Is(err, usecase.ErrJobTypeNotOwned):
		return pkg.NewDomainErrorSimple("JOB_TYPE_NOT_FOUND", "Job type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapDraftPreviewError(err error) *pkg.AppError {
	if errors.Is(err, pricing.ErrUnknownModifierKind) {
		return pkg.NewDomainErrorSimple("UNKNOWN_MODIFIER_KIND", "Unknown modifier kind", http.StatusBadRequest)
	}
	return mapEstimateError(err)
}
