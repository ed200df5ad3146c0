package handlers

import (
	"errors"
	request "lojinha_pricing/internal/adapter/http/dto/request"
	response "lojinha_pricing/internal/adapter/http/dto/response"
	"lojinha_pricing/internal/usecase"
	"lojinha_pricing/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidAmountQuery  = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
)

// QuoteHandler handles the buyer-facing pricing endpoints.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetInstallmentOptions projects the rate table onto the amount given in
// the query string, one option per configured installment count.
func (h *QuoteHandler) GetInstallmentOptions(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(errInvalidAmountQuery.HTTPStatus, errInvalidAmountQuery.ToHTTPError())
		return
	}

	options, err := h.usecase.GetInstallmentOptions(c.Request.Context(), amount)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOptions(options))
}

func (h *QuoteHandler) ResolveQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	selection, err := payload.ResolveSelection()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.ResolveQuote(c.Request.Context(), usecase.QuoteInput{
		DesiredPrice:       payload.DesiredPrice,
		DiscountPrice:      payload.DiscountPrice,
		PassOnCashDiscount: payload.PassOnCashDiscount,
		CouponCode:         payload.CouponCode,
		Selection:          selection,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSelection):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Invalid payment selection", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
