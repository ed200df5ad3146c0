package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lojinha_pricing/internal/adapter/http/handlers/mocks"
	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_GetInstallmentOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/pricing/installments", h.GetInstallmentOptions)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/installments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive amount is rejected by the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/installments", h.GetInstallmentOptions)

		uc.EXPECT().GetInstallmentOptions(gomock.Any(), -10.0).Return(nil, usecase.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/installments?amount=-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/installments", h.GetInstallmentOptions)

		uc.EXPECT().GetInstallmentOptions(gomock.Any(), 1000.0).Return([]entities.InstallmentOption{
			{Installments: 1, TotalAmount: 1000, InstallmentValue: 1000},
			{Installments: 12, Rate: 12.99, TotalAmount: 1149.29, InstallmentValue: 95.77, FeeAmount: 149.29},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/installments?amount=1000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[1]["installment_value"] != 95.77 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ResolveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/pricing/quote", h.ResolveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/pricing/quote", h.ResolveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewBufferString(`{"desired_price":1000,"payment":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/quote", h.ResolveQuote)

		uc.EXPECT().ResolveQuote(gomock.Any(), usecase.QuoteInput{
			DesiredPrice: 1000,
			CouponCode:   "VIP10",
			Selection:    entities.PaymentSelection{Kind: entities.SelectionCash},
		}).Return(entities.PriceQuote{
			FinalPrice: 900,
			Mode:       entities.QuoteModeCoupon,
			Details:    entities.QuoteDetails{DisplayPrice: 1000, BaseAmount: 1000, CouponCode: "VIP10", DiscountPercent: 10},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewBufferString(`{"desired_price":1000,"coupon_code":"VIP10","payment":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_price"] != 900.0 || body["mode"] != "coupon" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidSelection); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
