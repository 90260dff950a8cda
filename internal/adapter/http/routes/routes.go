package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "quotekit/docs" // This will be auto-generated
	"quotekit/internal/adapter/http/handlers"
	repository2 "quotekit/internal/adapter/persistence/repository"
	"quotekit/internal/adapter/persistence/repository/memory"
	"quotekit/internal/infrastructure/database"
	"quotekit/internal/infrastructure/email"
	"quotekit/internal/infrastructure/payments"
	"quotekit/internal/infrastructure/suggestions"
	"quotekit/internal/usecase"
	"quotekit/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type repositories struct {
	companies interfaces.ICompanyRepository
	jobTypes  interfaces.IJobTypeRepository
	questions interfaces.IQuestionRepository
	leads     interfaces.ILeadRepository
}

// buildRepositories selects the storage backend. STORAGE_BACKEND=memory runs
// against a seeded in-memory store for demos and local development; anything
// else connects to DynamoDB.
func buildRepositories() repositories {
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Printf("[routes] using seeded in-memory storage")
		store := memory.NewSeededStore()
		return repositories{
			companies: store.Companies(),
			jobTypes:  store.JobTypes(),
			questions: store.Questions(),
			leads:     store.Leads(),
		}
	}

	ddb := database.ConnectDynamoDB()
	return repositories{
		companies: repository2.NewCompanyDynamoRepository(ddb),
		jobTypes:  repository2.NewJobTypeDynamoRepository(ddb),
		questions: repository2.NewQuestionDynamoRepository(ddb),
		leads:     repository2.NewLeadDynamoRepository(ddb),
	}
}

func buildNotifier() interfaces.ILeadNotifier {
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		return email.LogNotifier{}
	}
	mailer, err := email.NewSESMailer(context.Background(), os.Getenv("NOTIFY_SENDER"))
	if err != nil {
		log.Printf("SES mailer not configured, falling back to log notifier: %v", err)
		return email.LogNotifier{}
	}
	return mailer
}

func getRoutes() {
	repos := buildRepositories()

	companyUseCase := usecase.NewCompanyUseCase(repos.companies)
	jobTypeUseCase := usecase.NewJobTypeUseCase(repos.jobTypes, repos.companies)
	questionUseCase := usecase.NewQuestionUseCase(repos.questions, repos.jobTypes)
	estimateUseCase := usecase.NewEstimateUseCase(repos.companies, repos.jobTypes, repos.questions)
	leadUseCase := usecase.NewLeadUseCase(repos.leads, repos.companies, repos.jobTypes, repos.questions, buildNotifier())

	var suggestionGateway interfaces.ISuggestionGateway
	openaiGateway, err := suggestions.NewOpenAIGateway()
	if err != nil {
		log.Printf("Suggestion gateway not configured: %v", err)
	} else {
		suggestionGateway = openaiGateway
	}
	suggestionUseCase := usecase.NewSuggestionUseCase(suggestionGateway)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	billingUseCase := usecase.NewBillingUseCase(repos.companies, paymentGateway)

	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	jobTypeHandler := handlers.NewJobTypeHandler(jobTypeUseCase)
	questionHandler := handlers.NewQuestionHandler(questionUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, companyHandler, jobTypeHandler, questionHandler, estimateHandler, leadHandler, suggestionHandler, billingHandler)
	addEstimatorRoutes(v1, estimateHandler, leadHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
