package response

import (
	"lojinha_pricing/internal/domain/entities"
)

type InstallmentOptionResponse struct {
	Installments     int     `json:"installments"`
	Rate             float64 `json:"rate"`
	TotalAmount      float64 `json:"total_amount"`
	InstallmentValue float64 `json:"installment_value"`
	FeeAmount        float64 `json:"fee_amount"`
}

// QuoteResponse carries the resolved price plus the pieces the storefront
// renders next to it (display price, applied coupon, chosen option).
type QuoteResponse struct {
	FinalPrice      float64                    `json:"final_price"`
	Mode            string                     `json:"mode"`
	DisplayPrice    float64                    `json:"display_price"`
	BaseAmount      float64                    `json:"base_amount"`
	CouponCode      string                     `json:"coupon_code,omitempty"`
	DiscountPercent float64                    `json:"discount_percent,omitempty"`
	Option          *InstallmentOptionResponse `json:"option,omitempty"`
}

func FromOption(o entities.InstallmentOption) InstallmentOptionResponse {
	return InstallmentOptionResponse{
		Installments:     o.Installments,
		Rate:             o.Rate,
		TotalAmount:      o.TotalAmount,
		InstallmentValue: o.InstallmentValue,
		FeeAmount:        o.FeeAmount,
	}
}

func FromOptions(options []entities.InstallmentOption) []InstallmentOptionResponse {
	out := make([]InstallmentOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, FromOption(o))
	}
	return out
}

func FromQuote(q entities.PriceQuote) QuoteResponse {
	resp := QuoteResponse{
		FinalPrice:      q.FinalPrice,
		Mode:            string(q.Mode),
		DisplayPrice:    q.Details.DisplayPrice,
		BaseAmount:      q.Details.BaseAmount,
		CouponCode:      q.Details.CouponCode,
		DiscountPercent: q.Details.DiscountPercent,
	}
	if q.Details.Option != nil {
		opt := FromOption(*q.Details.Option)
		resp.Option = &opt
	}
	return resp
}
