package response

import (
	"time"

	"lojinha_pricing/internal/domain/entities"
)

type CheckoutResponse struct {
	OrderID       string        `json:"order_id"`
	Quote         QuoteResponse `json:"quote"`
	WhatsAppURL   string        `json:"whatsapp_url"`
	PaymentID     string        `json:"payment_id,omitempty"`
	PaymentStatus string        `json:"payment_status,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func FromCheckout(c entities.Checkout) CheckoutResponse {
	return CheckoutResponse{
		OrderID:       c.OrderID,
		Quote:         FromQuote(c.Quote),
		WhatsAppURL:   c.WhatsAppURL,
		PaymentID:     c.PaymentID,
		PaymentStatus: c.PaymentStatus,
		CreatedAt:     c.CreatedAt,
	}
}
