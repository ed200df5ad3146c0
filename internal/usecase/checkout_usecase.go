package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/infrastructure/logger"

	"lojinha_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// CheckoutInput describes the order being closed. The pricing fields are
// the same ones a quote takes; quantity multiplies the unit price before
// resolution.
type CheckoutInput struct {
	ProductName        string
	Quantity           int
	UnitPrice          float64
	DiscountPrice      *float64
	PassOnCashDiscount bool
	CouponCode         string
	Selection          entities.PaymentSelection
	CustomerName       string
}

// ICheckoutUseCase resolves the final price and builds the WhatsApp
// hand-off, charging the card through the gateway when an installment
// option was selected.
type ICheckoutUseCase interface {
	BuildCheckout(ctx context.Context, in CheckoutInput) (entities.Checkout, error)
}

type CheckoutUseCase struct {
	quotes         IQuoteUseCase
	gateway        interfaces.IPaymentGateway
	whatsAppNumber string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(quotes IQuoteUseCase, gateway interfaces.IPaymentGateway, whatsAppNumber string) *CheckoutUseCase {
	return &CheckoutUseCase{quotes: quotes, gateway: gateway, whatsAppNumber: strings.TrimSpace(whatsAppNumber)}
}

// BuildCheckout never hard-fails on the payment gateway: a gateway error
// still yields the quote and the WhatsApp link, and the storefront settles
// payment over chat instead.
func (u *CheckoutUseCase) BuildCheckout(ctx context.Context, in CheckoutInput) (entities.Checkout, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return entities.Checkout{}, ErrInvalidProductName
	}
	if in.Quantity < 1 {
		return entities.Checkout{}, ErrInvalidQuantity
	}

	quote, err := u.quotes.ResolveQuote(ctx, QuoteInput{
		DesiredPrice:       in.UnitPrice * float64(in.Quantity),
		DiscountPrice:      in.DiscountPrice,
		PassOnCashDiscount: in.PassOnCashDiscount,
		CouponCode:         in.CouponCode,
		Selection:          in.Selection,
	})
	if err != nil {
		return entities.Checkout{}, err
	}

	orderID := uuid.NewString()
	out := entities.Checkout{
		OrderID:     orderID,
		Quote:       quote,
		WhatsAppURL: u.whatsAppLink(orderID, name, in.Quantity, in.CustomerName, quote),
		CreatedAt:   time.Now().UTC(),
	}

	if u.gateway != nil && quote.Details.Option != nil {
		payload, mErr := json.Marshal(map[string]any{
			"transaction_amount": quote.FinalPrice,
			"installments":       quote.Details.Option.Installments,
			"description":        fmt.Sprintf("Pedido %s - %s", orderID, name),
			"external_reference": orderID,
		})
		if mErr == nil {
			id, status, raw, gErr := u.gateway.CreatePayment(ctx, payload)
			if gErr != nil {
				logger.Warn("checkout payment failed, continuing with WhatsApp hand-off",
					zap.String("order_id", orderID), zap.Error(gErr))
			} else {
				out.PaymentID = id
				out.PaymentStatus = status
				out.PaymentRaw = raw
			}
		}
	}

	return out, nil
}

func (u *CheckoutUseCase) whatsAppLink(orderID, product string, quantity int, customer string, quote entities.PriceQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pedido %s\n", orderID)
	if customer = strings.TrimSpace(customer); customer != "" {
		fmt.Fprintf(&b, "Cliente: %s\n", customer)
	}
	fmt.Fprintf(&b, "Produto: %s x%d\n", product, quantity)
	if opt := quote.Details.Option; opt != nil {
		fmt.Fprintf(&b, "Total: R$ %.2f em %dx de R$ %.2f", quote.FinalPrice, opt.Installments, opt.InstallmentValue)
	} else {
		fmt.Fprintf(&b, "Total: R$ %.2f", quote.FinalPrice)
	}

	return "https://wa.me/" + u.whatsAppNumber + "?text=" + url.QueryEscape(b.String())
}
