package request

import (
	"errors"
	"strings"

	"lojinha_pricing/internal/domain/entities"
)

var (
	ErrInvalidPaymentSelection = errors.New("invalid payment selection")
)

// QuoteRequest asks for the final price of one product view.
type QuoteRequest struct {
	DesiredPrice       float64  `json:"desired_price" binding:"required"`
	DiscountPrice      *float64 `json:"discount_price"`
	PassOnCashDiscount bool     `json:"pass_on_cash_discount"`
	CouponCode         string   `json:"coupon_code"`
	Payment            string   `json:"payment"`
	Installments       int      `json:"installments"`
}

func (r QuoteRequest) ResolveSelection() (entities.PaymentSelection, error) {
	return resolveSelection(r.Payment, r.Installments)
}

// resolveSelection maps the wire payment method onto a domain selection.
// Empty means no selection; "installment" requires a positive count.
func resolveSelection(payment string, installments int) (entities.PaymentSelection, error) {
	switch strings.ToLower(strings.TrimSpace(payment)) {
	case "":
		return entities.PaymentSelection{Kind: entities.SelectionNone}, nil
	case "cash":
		return entities.PaymentSelection{Kind: entities.SelectionCash}, nil
	case "installment":
		if installments < 1 {
			return entities.PaymentSelection{}, ErrInvalidPaymentSelection
		}
		return entities.PaymentSelection{Kind: entities.SelectionInstallment, Installments: installments}, nil
	default:
		return entities.PaymentSelection{}, ErrInvalidPaymentSelection
	}
}
