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
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles order close-out requests.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	selection, err := payload.ResolveSelection()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	checkout, err := h.usecase.BuildCheckout(c.Request.Context(), usecase.CheckoutInput{
		ProductName:        payload.ProductName,
		Quantity:           payload.Quantity,
		UnitPrice:          payload.UnitPrice,
		DiscountPrice:      payload.DiscountPrice,
		PassOnCashDiscount: payload.PassOnCashDiscount,
		CouponCode:         payload.CouponCode,
		Selection:          selection,
		CustomerName:       payload.CustomerName,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckout(checkout))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidSelection):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
