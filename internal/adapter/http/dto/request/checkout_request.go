package request

import (
	"lojinha_pricing/internal/domain/entities"
)

// CheckoutRequest closes an order: same pricing fields as a quote plus
// the product being sold and the buyer identification.
type CheckoutRequest struct {
	ProductName        string   `json:"product_name" binding:"required"`
	Quantity           int      `json:"quantity" binding:"required"`
	UnitPrice          float64  `json:"unit_price" binding:"required"`
	DiscountPrice      *float64 `json:"discount_price"`
	PassOnCashDiscount bool     `json:"pass_on_cash_discount"`
	CouponCode         string   `json:"coupon_code"`
	CustomerName       string   `json:"customer_name"`
	Payment            string   `json:"payment"`
	Installments       int      `json:"installments"`
}

func (r CheckoutRequest) ResolveSelection() (entities.PaymentSelection, error) {
	return resolveSelection(r.Payment, r.Installments)
}
