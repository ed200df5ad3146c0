package pricing

import (
	"lojinha_pricing/internal/domain/entities"
)

// ResolveInput gathers everything price resolution needs. The coupon must
// already be validated (the policy trusts Coupon.Valid) and Rates is the
// effective rate table.
type ResolveInput struct {
	DesiredPrice       float64
	DiscountPrice      *float64
	PassOnCashDiscount bool
	Coupon             entities.CouponValidation
	Selection          entities.PaymentSelection
	Rates              []entities.InstallmentRate
}

// Resolve picks the single final price for a product view.
//
// Precedence, first match wins:
//  1. active coupon + installment selected -> coupon-installment
//  2. active coupon                        -> coupon
//  3. cash selected                        -> cash
//  4. installment selected                 -> installment
//  5. nothing                              -> original
//
// A cash selection while a coupon is active is ignored (treated as no
// selection): the cash discount and the coupon discount never stack, and
// the guard lives here so the invariant holds regardless of caller.
//
// Resolution never fails for normal inputs; an invalid coupon or empty
// selection just falls through to the next rule.
func Resolve(in ResolveInput) entities.PriceQuote {
	display := DisplayPrice(in.DesiredPrice, in.PassOnCashDiscount)
	couponActive := in.Coupon.Valid && in.Coupon.DiscountPercent > 0

	selection := in.Selection
	if couponActive && selection.Kind == entities.SelectionCash {
		selection.Kind = entities.SelectionNone
	}

	details := entities.QuoteDetails{
		DisplayPrice: display,
		BaseAmount:   display,
	}

	if couponActive {
		base := couponBase(display, in.DiscountPrice, in.Coupon.DiscountPercent)
		details.BaseAmount = base
		details.CouponCode = in.Coupon.Code
		details.DiscountPercent = in.Coupon.DiscountPercent

		if selection.Kind == entities.SelectionInstallment && selection.Installments >= 1 {
			rate := RateFor(in.Rates, selection.Installments)
			opt, err := ComputeOption(base, selection.Installments, rate)
			if err == nil {
				details.Option = &opt
				return entities.PriceQuote{
					FinalPrice: opt.TotalAmount,
					Mode:       entities.QuoteModeCouponInstallment,
					Details:    details,
				}
			}
			// Unresolvable rate: fall through to plain coupon pricing.
		}

		return entities.PriceQuote{
			FinalPrice: base,
			Mode:       entities.QuoteModeCoupon,
			Details:    details,
		}
	}

	switch selection.Kind {
	case entities.SelectionCash:
		return entities.PriceQuote{
			FinalPrice: CashPriceWithPassOn(display, in.PassOnCashDiscount, in.DesiredPrice),
			Mode:       entities.QuoteModeCash,
			Details:    details,
		}
	case entities.SelectionInstallment:
		if selection.Installments >= 1 {
			rate := RateFor(in.Rates, selection.Installments)
			opt, err := ComputeOption(display, selection.Installments, rate)
			if err == nil {
				details.Option = &opt
				return entities.PriceQuote{
					FinalPrice: opt.TotalAmount,
					Mode:       entities.QuoteModeInstallment,
					Details:    details,
				}
			}
		}
	}

	return entities.PriceQuote{
		FinalPrice: display,
		Mode:       entities.QuoteModeOriginal,
		Details:    details,
	}
}

// couponBase picks the amount coupon pricing applies to: an explicit
// discount price when it undercuts the display price, otherwise the
// percentage off the display price.
func couponBase(display float64, discountPrice *float64, discountPercent float64) float64 {
	if discountPrice != nil && *discountPrice > 0 && *discountPrice < display {
		return *discountPrice
	}
	return Round2(display * (1 - discountPercent/100))
}
