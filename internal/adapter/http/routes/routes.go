package routes

import (
	"log"
	"os"
	"strconv"

	_ "archmarket/docs" // This will be auto-generated
	"archmarket/internal/adapter/http/handlers"
	repository2 "archmarket/internal/adapter/persistence/repository"
	"archmarket/internal/infrastructure/database"
	"archmarket/internal/infrastructure/notifications"
	"archmarket/internal/infrastructure/payments"
	"archmarket/internal/usecase"
	"archmarket/internal/usecase/interfaces"

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

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository2.NewProductDynamoRepository(ddb)
	cartRepo := repository2.NewCartDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	designRepo := repository2.NewDesignEntryDynamoRepository(ddb)
	engagementRepo := repository2.NewEngagementDynamoRepository(ddb)
	siteConfigRepo := repository2.NewSiteConfigDynamoRepository(ddb)
	contactRepo := repository2.NewContactMessageDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}
	webhookVerifier := payments.NewStripeWebhookVerifier(os.Getenv("STRIPE_WEBHOOK_SECRET"))

	var notifier interfaces.INotificationService
	sendgridNotifier, err := notifications.NewSendGridNotifier(os.Getenv("SENDGRID_API_KEY"), os.Getenv("EMAIL_SENDER"))
	if err != nil {
		log.Printf("SendGrid notifier not configured: %v", err)
	} else {
		notifier = sendgridNotifier
	}

	designUseCase := usecase.NewDesignUseCase(designRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	fulfillmentUseCase := usecase.NewFulfillmentUseCase(orderRepo, productRepo, notifier)
	paymentEventUseCase := usecase.NewPaymentEventUseCase(orderRepo, fulfillmentUseCase)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, orderRepo, paymentGateway, paymentEventUseCase)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, fulfillmentUseCase)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo)
	siteConfigUseCase := usecase.NewSiteConfigUseCase(siteConfigRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo, siteConfigUseCase, notifier)

	designHandler := handlers.NewDesignHandler(designUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookVerifier, paymentEventUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	engagementHandler := handlers.NewEngagementHandler(engagementUseCase)
	siteConfigHandler := handlers.NewSiteConfigHandler(siteConfigUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, marketplaceHandlers{
		design:     designHandler,
		catalog:    catalogHandler,
		cart:       cartHandler,
		checkout:   checkoutHandler,
		webhook:    webhookHandler,
		order:      orderHandler,
		engagement: engagementHandler,
		siteConfig: siteConfigHandler,
		contact:    contactHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
