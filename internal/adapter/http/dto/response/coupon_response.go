package response

import (
	"time"

	"lojinha_pricing/internal/domain/entities"
)

type CouponResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Active          bool      `json:"active"`
	DiscountPercent float64   `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{
		ID:              c.ID,
		Code:            c.Code,
		Active:          c.Active,
		DiscountPercent: c.DiscountPercent,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromCoupons(coupons []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, FromCoupon(c))
	}
	return out
}
