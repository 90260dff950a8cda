package request

import (
	"quotekit/internal/usecase"
)

type CreateLeadRequest struct {
	CompanyID string          `json:"company_id" binding:"required"`
	JobTypeID string          `json:"job_type_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Email     string          `json:"email" binding:"required"`
	Phone     string          `json:"phone"`
	Answers   []AnswerRequest `json:"answers"`
}

func (r CreateLeadRequest) ToCommand() usecase.CreateLeadCommand {
	return usecase.CreateLeadCommand{
		CompanyID: r.CompanyID,
		JobTypeID: r.JobTypeID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Responses: toResponseInputs(r.Answers),
	}
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
