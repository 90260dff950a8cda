package request

import (
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase"
)

// Money fields are minor currency units throughout the API.

type CreateJobTypeRequest struct {
	CompanyID   string `json:"company_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   *int64 `json:"base_price"`
}

func (r CreateJobTypeRequest) ToCommand() usecase.CreateJobTypeCommand {
	cmd := usecase.CreateJobTypeCommand{
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
	}
	if r.BasePrice != nil {
		v := pricing.Money(*r.BasePrice)
		cmd.BasePrice = &v
	}
	return cmd
}

type UpdateJobTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BasePrice   *int64  `json:"base_price"`
}

func (r UpdateJobTypeRequest) ToCommand() usecase.UpdateJobTypeCommand {
	cmd := usecase.UpdateJobTypeCommand{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.BasePrice != nil {
		v := pricing.Money(*r.BasePrice)
		cmd.BasePrice = &v
	}
	return cmd
}
