package routes

import (
	"lojinha_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCoupons = "/coupons"
)

func addCouponRoutes(rg *gin.RouterGroup, couponHandler *handlers.CouponHandler) {
	coupons := rg.Group(PathCoupons)
	{
		coupons.POST("", couponHandler.CreateCoupon)
		coupons.GET("", couponHandler.ListCoupons)
		coupons.GET("/:code", couponHandler.GetCoupon)
		coupons.PATCH("/:code/deactivate", couponHandler.DeactivateCoupon)
	}
}
