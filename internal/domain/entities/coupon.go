package entities

import "time"

// Coupon is a B2B/discount code granting a percentage off the display
// price. Coupon pricing is mutually exclusive with the cash discount.
//
// Storage model (DynamoDB):
//   - PK: code (string, stored upper-cased)
type Coupon struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Active          bool      `json:"active"`
	DiscountPercent float64   `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CouponValidation is the read model the pricing policy consumes. Unknown,
// inactive or zero-percent coupons are Valid=false, never an error.
type CouponValidation struct {
	Valid           bool    `json:"valid"`
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
}
