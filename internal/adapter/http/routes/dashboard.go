package routes

import (
	"quotekit/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCompanies = "/companies"
	PathJobTypes  = "/job-types"
	PathQuestions = "/questions"
	PathLeads     = "/leads"
	PathTemplates = "/templates"
	PathBilling   = "/billing"
)

// addDashboardRoutes wires the contractor-facing endpoints: tenant settings,
// the form builder, the lead CRM and billing.
func addDashboardRoutes(
	rg *gin.RouterGroup,
	companyHandler *handlers.CompanyHandler,
	jobTypeHandler *handlers.JobTypeHandler,
	questionHandler *handlers.QuestionHandler,
	estimateHandler *handlers.EstimateHandler,
	leadHandler *handlers.LeadHandler,
	suggestionHandler *handlers.SuggestionHandler,
	billingHandler *handlers.BillingHandler,
) {
	companies := rg.Group(PathCompanies)
	{
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:company_id", companyHandler.GetCompany)
		companies.PUT("/:company_id/settings", companyHandler.UpdateCompanySettings)
		companies.GET("/:company_id/job-types", jobTypeHandler.ListJobTypes)
		companies.GET("/:company_id/leads", leadHandler.ListLeads)
	}

	jobTypes := rg.Group(PathJobTypes)
	{
		jobTypes.POST("", jobTypeHandler.CreateJobType)
		jobTypes.GET("/:job_type_id", jobTypeHandler.GetJobType)
		jobTypes.PUT("/:job_type_id", jobTypeHandler.UpdateJobType)
		jobTypes.DELETE("/:job_type_id", jobTypeHandler.DeleteJobType)
		jobTypes.GET("/:job_type_id/questions", questionHandler.ListQuestions)
		jobTypes.PUT("/:job_type_id/questions/order", questionHandler.ReorderQuestions)
		jobTypes.POST("/:job_type_id/template-import", questionHandler.ImportTemplate)
		jobTypes.GET("/:job_type_id/preview", estimateHandler.PreviewJobType)
	}

	questions := rg.Group(PathQuestions)
	{
		questions.POST("", questionHandler.CreateQuestion)
		questions.GET("/:question_id", questionHandler.GetQuestion)
		questions.PUT("/:question_id", questionHandler.UpdateQuestion)
		questions.DELETE("/:question_id", questionHandler.DeleteQuestion)
	}

	leads := rg.Group(PathLeads)
	{
		leads.GET("/:lead_id", leadHandler.GetLead)
		leads.PATCH("/:lead_id/status", leadHandler.UpdateLeadStatus)
	}

	rg.GET(PathTemplates, questionHandler.ListTemplates)
	rg.GET("/suggestions", suggestionHandler.SuggestQuestions)
	rg.POST("/estimates/preview", estimateHandler.PreviewDraft)

	billing := rg.Group(PathBilling)
	{
		billing.GET("/plans", billingHandler.ListPlans)
		billing.POST("/checkout", billingHandler.Checkout)
	}
}
