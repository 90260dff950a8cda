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
	errInvalidJobTypePayload = pkg.NewDomainErrorSimple("INVALID_JOB_TYPE_INPUT", "Invalid job type payload", http.StatusBadRequest)
)

// JobTypeHandler handles the form builder's job type endpoints.

type JobTypeHandler struct {
	usecase usecase.IJobTypeUseCase
}

func NewJobTypeHandler(uc usecase.IJobTypeUseCase) *JobTypeHandler {
	return &JobTypeHandler{usecase: uc}
}

func (h *JobTypeHandler) CreateJobType(c *gin.Context) {
	var payload request.CreateJobTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobTypePayload.HTTPStatus, errInvalidJobTypePayload.ToHTTPError())
		return
	}

	jobType, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapJobTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobType(jobType))
}

func (h *JobTypeHandler) GetJobType(c *gin.Context) {
	jobType, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_type_id"))
	if err != nil {
		appErr := mapJobTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobType(jobType))
}

func (h *JobTypeHandler) ListJobTypes(c *gin.Context) {
	jobTypes, err := h.usecase.ListByCompanyID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapJobTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobTypes(jobTypes))
}

func (h *JobTypeHandler) UpdateJobType(c *gin.Context) {
	var payload request.UpdateJobTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobTypePayload.HTTPStatus, errInvalidJobTypePayload.ToHTTPError())
		return
	}

	jobType, err := h.usecase.Update(c.Request.Context(), c.Param("job_type_id"), payload.ToCommand())
	if err != nil {
		appErr := mapJobTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobType(jobType))
}

func (h *JobTypeHandler) DeleteJobType(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("job_type_id")); err != nil {
		appErr := mapJobTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapJobTypeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobTypeID),
		errors.Is(err, usecase.ErrInvalidJobTypeName),
		errors.Is(err, usecase.ErrInvalidBasePrice),
		errors.Is(err, usecase.ErrInvalidCompanyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobTypeNotFound):
		return pkg.NewDomainErrorSimple("JOB_TYPE_NOT_FOUND", "Job type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
