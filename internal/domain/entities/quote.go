package entities

// PaymentSelectionKind is the transient payment choice on a product view.
// It is never persisted; it only parameterizes price resolution.
type PaymentSelectionKind string

const (
	SelectionNone        PaymentSelectionKind = "none"
	SelectionCash        PaymentSelectionKind = "cash"
	SelectionInstallment PaymentSelectionKind = "installment"
)

// PaymentSelection carries the buyer's current choice. Installments is
// only meaningful when Kind is SelectionInstallment.
type PaymentSelection struct {
	Kind         PaymentSelectionKind `json:"kind"`
	Installments int                  `json:"installments,omitempty"`
}

// QuoteMode names which pricing rule produced the final price.
//
// Precedence (highest first): coupon-installment, coupon, cash,
// installment, original. Coupon modes win because coupons represent a
// distinct buyer class (wholesale/B2B), not a payment-method discount.
type QuoteMode string

const (
	QuoteModeOriginal          QuoteMode = "original"
	QuoteModeCash              QuoteMode = "cash"
	QuoteModeInstallment       QuoteMode = "installment"
	QuoteModeCoupon            QuoteMode = "coupon"
	QuoteModeCouponInstallment QuoteMode = "coupon-installment"
)

// PriceQuote is the single resolved price presented to the buyer.
type PriceQuote struct {
	FinalPrice float64      `json:"final_price"`
	Mode       QuoteMode    `json:"mode"`
	Details    QuoteDetails `json:"details"`
}

// QuoteDetails explains how FinalPrice was derived.
type QuoteDetails struct {
	DisplayPrice    float64            `json:"display_price"`
	BaseAmount      float64            `json:"base_amount"`
	CouponCode      string             `json:"coupon_code,omitempty"`
	DiscountPercent float64            `json:"discount_percent,omitempty"`
	Option          *InstallmentOption `json:"option,omitempty"`
}
