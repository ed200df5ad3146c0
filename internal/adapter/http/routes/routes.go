package routes

import (
	_ "lojinha_pricing/docs" // This will be auto-generated
	"lojinha_pricing/internal/adapter/http/handlers"
	repository2 "lojinha_pricing/internal/adapter/persistence/repository"
	"lojinha_pricing/internal/infrastructure/cache"
	"lojinha_pricing/internal/infrastructure/database"
	"lojinha_pricing/internal/infrastructure/logger"
	"lojinha_pricing/internal/infrastructure/payments"
	"lojinha_pricing/internal/infrastructure/ratesource"
	"lojinha_pricing/internal/usecase"
	"lojinha_pricing/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger.Init()
	defer logger.Sync()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := PORT
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	rateRepo := repository2.NewInstallmentRateDynamoRepository(ddb)
	couponRepo := repository2.NewCouponDynamoRepository(ddb)

	// The rate table reads from the remote config endpoint when one is
	// set; otherwise the DynamoDB table is the source itself.
	var rateSource interfaces.IRateSource = rateRepo
	if url := os.Getenv("RATES_CONFIG_URL"); url != "" {
		httpSource, err := ratesource.NewHTTPRateSource(url)
		if err != nil {
			logger.Warn("invalid RATES_CONFIG_URL, reading rates from DynamoDB", zap.Error(err))
		} else {
			rateSource = httpSource
		}
	}

	var snapshotCache interfaces.ICacheRepository = cache.NewMemoryCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		snapshotCache = cache.NewRedisCache(addr)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured, checkouts settle over WhatsApp only", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	rateTableUseCase := usecase.NewRateTableUseCase(rateSource, rateRepo, snapshotCache)
	couponUseCase := usecase.NewCouponUseCase(couponRepo)
	quoteUseCase := usecase.NewQuoteUseCase(rateTableUseCase, couponUseCase)
	checkoutUseCase := usecase.NewCheckoutUseCase(quoteUseCase, paymentGateway, os.Getenv("STORE_WHATSAPP_NUMBER"))

	rateHandler := handlers.NewRateHandler(rateTableUseCase)
	couponHandler := handlers.NewCouponHandler(couponUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quoteHandler, rateHandler)
	addCouponRoutes(v1, couponHandler)
	addCheckoutRoutes(v1, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
