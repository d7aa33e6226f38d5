package routes

import (
	"log"
	"os"
	"strconv"

	_ "lumalens/docs" // This will be auto-generated
	"lumalens/internal/adapter/http/handlers"
	repository2 "lumalens/internal/adapter/persistence/repository"
	"lumalens/internal/infrastructure/analytics"
	"lumalens/internal/infrastructure/database"
	"lumalens/internal/infrastructure/metrics"
	"lumalens/internal/infrastructure/payments"
	"lumalens/internal/infrastructure/security"
	"lumalens/internal/usecase"
	"lumalens/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	metrics.Register()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	eventSink := repository2.NewEventDynamoRepository(ddb)

	// Constructed once per process; the worker outlives individual requests
	// and drains on shutdown.
	tracker := analytics.NewTracker(eventSink)

	verifier := security.NewWebhookVerifier(os.Getenv("WEBHOOK_SIGNATURE_SECRET"))

	var providerFetcher interfaces.IProviderStatusFetcher
	mpFetcher, err := payments.NewMercadoPagoStatusFetcher(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago status cross-check not configured: %v", err)
	} else {
		providerFetcher = mpFetcher
	}

	verificationUseCase := usecase.NewVerificationUseCase(transactionRepo, tracker)
	webhookUseCase := usecase.NewWebhookUseCase(transactionRepo, tracker, providerFetcher)

	verificationHandler := handlers.NewVerificationHandler(verificationUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, verifier)

	root := router.Group("")
	addPingRoutes(root)
	addPaymentRoutes(root, verificationHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
