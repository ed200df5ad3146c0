package entities

import (
	"encoding/json"
	"time"
)

// Checkout is the hand-off produced when a buyer closes an order: the
// resolved quote, the WhatsApp deep link the storefront opens, and the
// card payment when one was created.
//
// The order itself lives in the storefront backend; this service only
// prices it and starts the payment, so Checkout is returned, not stored.
type Checkout struct {
	OrderID     string     `json:"order_id"`
	Quote       PriceQuote `json:"quote"`
	WhatsAppURL string     `json:"whatsapp_url"`
	CreatedAt   time.Time  `json:"created_at"`

	PaymentID     string          `json:"payment_id,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	PaymentRaw    json.RawMessage `json:"payment_raw,omitempty"`
}
