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
	errInvalidRatePayload = pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Invalid rate payload", http.StatusBadRequest)
)

// RateHandler handles HTTP requests for the installment rate table.
type RateHandler struct {
	usecase usecase.IRateTableUseCase
}

func NewRateHandler(uc usecase.IRateTableUseCase) *RateHandler {
	return &RateHandler{usecase: uc}
}

// ListRates returns the effective rate table. Reads never fail: a broken
// source degrades to the snapshot or the built-in defaults.
func (h *RateHandler) ListRates(c *gin.Context) {
	rates := h.usecase.GetRates(c.Request.Context())
	c.JSON(http.StatusOK, response.FromRates(rates))
}

func (h *RateHandler) CreateRate(c *gin.Context) {
	var payload request.RateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.AddRate(c.Request.Context(), payload.Installments, payload.Rate)
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRate(created))
}

func (h *RateHandler) UpdateRate(c *gin.Context) {
	installments, ok := installmentsParam(c)
	if !ok {
		return
	}

	var payload request.RateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateRate(c.Request.Context(), installments, payload.Rate)
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRate(updated))
}

func (h *RateHandler) DeleteRate(c *gin.Context) {
	installments, ok := installmentsParam(c)
	if !ok {
		return
	}

	if err := h.usecase.RemoveRate(c.Request.Context(), installments); err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func installmentsParam(c *gin.Context) (int, bool) {
	installments, err := strconv.Atoi(c.Param("installments"))
	if err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return 0, false
	}
	return installments, true
}

func mapRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstallments), errors.Is(err, usecase.ErrInvalidRate):
		return pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Invalid rate payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProtectedRate):
		return pkg.NewDomainErrorSimple("PROTECTED_RATE", "Default installment counts cannot be removed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateAlreadyExists):
		return pkg.NewDomainErrorSimple("RATE_ALREADY_EXISTS", "Rate already exists for this installment count", http.StatusConflict)
	case errors.Is(err, usecase.ErrRateNotFound):
		return pkg.NewDomainErrorSimple("RATE_NOT_FOUND", "Rate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
