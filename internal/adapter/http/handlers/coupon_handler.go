package handlers

import (
	"errors"
	request "lojinha_pricing/internal/adapter/http/dto/request"
	response "lojinha_pricing/internal/adapter/http/dto/response"
	"lojinha_pricing/internal/usecase"
	"lojinha_pricing/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Invalid coupon payload", http.StatusBadRequest)
)

// CouponHandler handles HTTP requests for the coupon registry.
type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var payload request.CouponCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Code, payload.DiscountPercent)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCoupon(created))
}

func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupons(coupons))
}

func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(coupon))
}

func (h *CouponHandler) DeactivateCoupon(c *gin.Context) {
	coupon, err := h.usecase.Deactivate(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(coupon))
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponCode), errors.Is(err, usecase.ErrInvalidCouponDiscount):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Invalid coupon payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponAlreadyExists):
		return pkg.NewDomainErrorSimple("COUPON_ALREADY_EXISTS", "Coupon already exists for this code", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
