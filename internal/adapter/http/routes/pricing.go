package routes

import (
	"lojinha_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, rateHandler *handlers.RateHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/installments", quoteHandler.GetInstallmentOptions)
		pricing.POST("/quote", quoteHandler.ResolveQuote)

		// Admin rate table endpoints.
		pricing.GET("/rates", rateHandler.ListRates)
		pricing.POST("/rates", rateHandler.CreateRate)
		pricing.PUT("/rates/:installments", rateHandler.UpdateRate)
		pricing.DELETE("/rates/:installments", rateHandler.DeleteRate)
	}
}
