package request

// CouponCreateRequest registers a percentage coupon. The code is
// normalized (trimmed, uppercased) by the use case.
type CouponCreateRequest struct {
	Code            string  `json:"code" binding:"required"`
	DiscountPercent float64 `json:"discount_percent" binding:"required"`
}
