package routes

import (
	"quotekit/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPublic = "/public"
)

// addEstimatorRoutes wires the unauthenticated widget surface. Everything
// here is reachable from embedded customer sites.
func addEstimatorRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, leadHandler *handlers.LeadHandler) {
	public := rg.Group(PathPublic)
	{
		public.GET("/widget/:company_id", estimateHandler.GetWidgetConfig)
		public.GET("/estimator/:company_id/:job_type_id", estimateHandler.GetFormDefinition)
		public.POST("/estimator/:company_id/:job_type_id/quote", estimateHandler.Quote)
		public.POST("/leads", leadHandler.CreateLead)
	}
}
