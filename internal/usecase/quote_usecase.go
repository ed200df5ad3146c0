package usecase

import (
	"context"
	"errors"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/domain/pricing"
	"lojinha_pricing/internal/infrastructure/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidSelection = errors.New("invalid payment selection")
)

// QuoteInput is the resolution request for one product view.
type QuoteInput struct {
	DesiredPrice       float64
	DiscountPrice      *float64
	PassOnCashDiscount bool
	CouponCode         string
	Selection          entities.PaymentSelection
}

// IQuoteUseCase exposes the buyer-facing pricing computations.
type IQuoteUseCase interface {
	GetInstallmentOptions(ctx context.Context, amount float64) ([]entities.InstallmentOption, error)
	ResolveQuote(ctx context.Context, in QuoteInput) (entities.PriceQuote, error)
}

type QuoteUseCase struct {
	rateTable IRateTableUseCase
	coupons   ICouponUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(rateTable IRateTableUseCase, coupons ICouponUseCase) *QuoteUseCase {
	return &QuoteUseCase{rateTable: rateTable, coupons: coupons}
}

// GetInstallmentOptions projects the effective rate table onto an amount,
// one option per configured count, ascending.
func (u *QuoteUseCase) GetInstallmentOptions(ctx context.Context, amount float64) ([]entities.InstallmentOption, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return pricing.ComputeOptions(amount, u.rateTable.GetRates(ctx))
}

// ResolveQuote validates the input, resolves the coupon and delegates to
// the pricing policy. A coupon lookup failure degrades to "no coupon"
// rather than failing the quote.
func (u *QuoteUseCase) ResolveQuote(ctx context.Context, in QuoteInput) (entities.PriceQuote, error) {
	if in.DesiredPrice <= 0 {
		return entities.PriceQuote{}, ErrInvalidAmount
	}
	switch in.Selection.Kind {
	case "", entities.SelectionNone, entities.SelectionCash:
	case entities.SelectionInstallment:
		if in.Selection.Installments < MinInstallments || in.Selection.Installments > MaxInstallments {
			return entities.PriceQuote{}, ErrInvalidSelection
		}
	default:
		return entities.PriceQuote{}, ErrInvalidSelection
	}

	coupon := entities.CouponValidation{}
	if in.CouponCode != "" && u.coupons != nil {
		v, err := u.coupons.Validate(ctx, in.CouponCode)
		if err != nil {
			logger.Warn("coupon validation failed, quoting without coupon",
				zap.String("code", in.CouponCode), zap.Error(err))
		} else {
			coupon = v
		}
	}

	return pricing.Resolve(pricing.ResolveInput{
		DesiredPrice:       in.DesiredPrice,
		DiscountPrice:      in.DiscountPrice,
		PassOnCashDiscount: in.PassOnCashDiscount,
		Coupon:             coupon,
		Selection:          in.Selection,
		Rates:              u.rateTable.GetRates(ctx),
	}), nil
}
