package pricing

import (
	"errors"
	"math"

	"lojinha_pricing/internal/domain/entities"
)

// cashDiscountFactor is the flat at-once discount: pay now, pay 95%.
const cashDiscountFactor = 0.95

var ErrRateTooHigh = errors.New("rate must be lower than 100")

// Round2 rounds to 2 decimal places, half up at the cent.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// DisplayPrice returns the advertised price for a desired net price.
//
// With pass-on active the advertised price is inflated so that, after the
// 5% at-once discount, the seller still nets the desired price.
func DisplayPrice(desiredPrice float64, passOnCashDiscount bool) float64 {
	if !passOnCashDiscount {
		return desiredPrice
	}
	return Round2(desiredPrice / cashDiscountFactor)
}

// CashDiscount applies the flat 5% at-once discount.
func CashDiscount(price float64) float64 {
	return Round2(price * cashDiscountFactor)
}

// CashPriceWithPassOn returns the price a buyer paying at once is charged.
//
// When the cash discount was passed on into the display price, the cash
// price is the seller's original desired price (the markup already
// absorbed the discount); otherwise it is a plain 5% off the display.
func CashPriceWithPassOn(displayPrice float64, passOnCashDiscount bool, desiredPrice float64) float64 {
	if passOnCashDiscount {
		return desiredPrice
	}
	return CashDiscount(displayPrice)
}

// ComputeOption builds the fee-inclusive installment option for a desired
// net amount at the given fee rate (percent).
//
// totalAmount = desiredAmount / (1 - rate/100), so the seller nets the
// desired amount after the processor keeps its fee. Rates >= 100 would
// divide by zero and are rejected; the rate table validation never admits
// them, this guard covers direct callers.
func ComputeOption(desiredAmount float64, installments int, rate float64) (entities.InstallmentOption, error) {
	if rate >= 100 {
		return entities.InstallmentOption{}, ErrRateTooHigh
	}

	total := desiredAmount
	if rate > 0 {
		total = desiredAmount / (1 - rate/100)
	}
	total = Round2(total)

	return entities.InstallmentOption{
		Installments:     installments,
		Rate:             rate,
		TotalAmount:      total,
		InstallmentValue: Round2(total / float64(installments)),
		FeeAmount:        Round2(total - desiredAmount),
	}, nil
}

// ComputeOptions projects every configured rate onto the desired amount.
// Rates are expected sorted ascending by installment count.
func ComputeOptions(desiredAmount float64, rates []entities.InstallmentRate) ([]entities.InstallmentOption, error) {
	options := make([]entities.InstallmentOption, 0, len(rates))
	for _, r := range rates {
		opt, err := ComputeOption(desiredAmount, r.Installments, r.Rate)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}

// RateFor looks up the fee rate for an installment count. Absent counts
// are fee-free.
func RateFor(rates []entities.InstallmentRate, installments int) float64 {
	for _, r := range rates {
		if r.Installments == installments {
			return r.Rate
		}
	}
	return 0
}
