package routes

import (
	"lojinha_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)
}
