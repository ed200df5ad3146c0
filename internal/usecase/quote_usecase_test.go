package usecase

import (
	"context"
	"errors"
	"testing"

	"lojinha_pricing/internal/domain/entities"
	mock_interfaces "lojinha_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newQuoteUseCaseWithSource(t *testing.T, ctrl *gomock.Controller) (*QuoteUseCase, *mock_interfaces.MockIRateSource, *mock_interfaces.MockICouponRepository) {
	t.Helper()
	source := mock_interfaces.NewMockIRateSource(ctrl)
	couponRepo := mock_interfaces.NewMockICouponRepository(ctrl)
	rateTable := NewRateTableUseCase(source, nil, nil)
	return NewQuoteUseCase(rateTable, NewCouponUseCase(couponRepo)), source, couponRepo
}

func TestQuoteUseCase_GetInstallmentOptions(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc := NewQuoteUseCase(NewRateTableUseCase(nil, nil, nil), nil)
		if _, err := uc.GetInstallmentOptions(context.Background(), 0); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("source failure still yields the 12 default options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, source, _ := newQuoteUseCaseWithSource(t, ctrl)

		source.EXPECT().FetchRates(gomock.Any()).Return(nil, errors.New("config endpoint down"))

		options, err := uc.GetInstallmentOptions(context.Background(), 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(options) != 12 {
			t.Fatalf("expected 12 options, got %d", len(options))
		}
		if options[0].Installments != 1 || options[0].TotalAmount != 1000 {
			t.Fatalf("unexpected 1x option: %+v", options[0])
		}
		if options[11].Installments != 12 || options[11].Rate != 12.99 {
			t.Fatalf("unexpected 12x option: %+v", options[11])
		}
	})

	t.Run("options follow the fetched table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, source, _ := newQuoteUseCaseWithSource(t, ctrl)

		source.EXPECT().FetchRates(gomock.Any()).Return([]entities.InstallmentRate{
			{Installments: 1, Rate: 0},
			{Installments: 2, Rate: 2},
		}, nil)

		options, err := uc.GetInstallmentOptions(context.Background(), 980)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(options) != 2 {
			t.Fatalf("expected 2 options, got %d", len(options))
		}
		// 980 / 0.98 = 1000 even.
		if options[1].TotalAmount != 1000 || options[1].InstallmentValue != 500 {
			t.Fatalf("unexpected 2x option: %+v", options[1])
		}
	})
}

func TestQuoteUseCase_ResolveQuote(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc := NewQuoteUseCase(NewRateTableUseCase(nil, nil, nil), nil)
		if _, err := uc.ResolveQuote(context.Background(), QuoteInput{DesiredPrice: 0}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("invalid selection kind", func(t *testing.T) {
		uc := NewQuoteUseCase(NewRateTableUseCase(nil, nil, nil), nil)
		_, err := uc.ResolveQuote(context.Background(), QuoteInput{
			DesiredPrice: 100,
			Selection:    entities.PaymentSelection{Kind: "pix"},
		})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})

	t.Run("invalid installment count", func(t *testing.T) {
		uc := NewQuoteUseCase(NewRateTableUseCase(nil, nil, nil), nil)
		_, err := uc.ResolveQuote(context.Background(), QuoteInput{
			DesiredPrice: 100,
			Selection:    entities.PaymentSelection{Kind: entities.SelectionInstallment, Installments: 0},
		})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})

	t.Run("coupon with installment resolves coupon-installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, source, couponRepo := newQuoteUseCaseWithSource(t, ctrl)

		source.EXPECT().FetchRates(gomock.Any()).Return(DefaultInstallmentRates(), nil)
		couponRepo.EXPECT().GetByCode(gomock.Any(), "VIP10").Return(entities.Coupon{Code: "VIP10", Active: true, DiscountPercent: 10}, nil)

		quote, err := uc.ResolveQuote(context.Background(), QuoteInput{
			DesiredPrice: 1000,
			CouponCode:   "vip10",
			Selection:    entities.PaymentSelection{Kind: entities.SelectionInstallment, Installments: 6},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Mode != entities.QuoteModeCouponInstallment {
			t.Fatalf("expected coupon-installment, got %s", quote.Mode)
		}
		if quote.Details.BaseAmount != 900 {
			t.Fatalf("expected base 900, got %v", quote.Details.BaseAmount)
		}
	})

	t.Run("coupon lookup failure degrades to no coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, source, couponRepo := newQuoteUseCaseWithSource(t, ctrl)

		source.EXPECT().FetchRates(gomock.Any()).Return(DefaultInstallmentRates(), nil)
		couponRepo.EXPECT().GetByCode(gomock.Any(), "VIP10").Return(entities.Coupon{}, errors.New("db"))

		quote, err := uc.ResolveQuote(context.Background(), QuoteInput{
			DesiredPrice: 1000,
			CouponCode:   "vip10",
			Selection:    entities.PaymentSelection{Kind: entities.SelectionCash},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Mode != entities.QuoteModeCash {
			t.Fatalf("expected cash mode, got %s", quote.Mode)
		}
		if quote.FinalPrice != 950 {
			t.Fatalf("expected 950, got %v", quote.FinalPrice)
		}
	})

	t.Run("no coupon, nothing selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, source, _ := newQuoteUseCaseWithSource(t, ctrl)

		source.EXPECT().FetchRates(gomock.Any()).Return(DefaultInstallmentRates(), nil)

		quote, err := uc.ResolveQuote(context.Background(), QuoteInput{DesiredPrice: 250})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Mode != entities.QuoteModeOriginal || quote.FinalPrice != 250 {
			t.Fatalf("unexpected quote: %+v", quote)
		}
	})
}
