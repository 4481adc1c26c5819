package routes

import (
	"log"
	"time"

	_ "freelanceflow/docs" // This will be auto-generated
	"freelanceflow/internal/adapter/http/handlers"
	repository2 "freelanceflow/internal/adapter/persistence/repository"
	appconfig "freelanceflow/internal/infrastructure/config"
	"freelanceflow/internal/infrastructure/cache"
	"freelanceflow/internal/infrastructure/database"
	"freelanceflow/internal/infrastructure/notifications"
	"freelanceflow/internal/infrastructure/payments"
	"freelanceflow/internal/usecase"
	"freelanceflow/internal/usecase/interfaces"
	"freelanceflow/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	appconfig.LoadConfig()
	pkg.InitializeLogger()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + appconfig.AppConfig.AppPort)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	timeEntryReader := repository2.NewTimeEntryDynamoReader(ddb)
	expenseReader := repository2.NewExpenseDynamoReader(ddb)
	directoryReader := repository2.NewDirectoryDynamoReader(ddb)

	numbering := usecase.NewInvoiceNumberingService(sequenceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, paymentRepo, timeEntryReader, numbering)

	var notifier interfaces.INotificationSink
	reportUseCase := usecase.NewReportUseCase(invoiceRepo, expenseReader, timeEntryReader, directoryReader)
	if appconfig.AppConfig.RedisAddr != "" {
		cache.InitRedis()
		notifier = notifications.NewRedisPublisher(cache.GetClient(), appconfig.AppConfig.NotificationChannel)
		reportUseCase.Cache = cache.NewRedisReportCache(cache.GetClient())
		reportUseCase.CacheTTL = time.Duration(appconfig.AppConfig.ReportCacheTTLSecs) * time.Second
	} else {
		log.Printf("Redis disabled: report caching and notifications are off")
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, invoiceRepo, notifier)

	var eventSource interfaces.IPaymentEventSource
	mpGateway, err := payments.NewMercadoPagoGateway(appconfig.AppConfig.MercadoPagoAccessToken, appconfig.AppConfig.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		eventSource = mpGateway
	}

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	webhookHandler := handlers.NewWebhookHandler(eventSource, paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, invoiceHandler, paymentHandler, reportHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
