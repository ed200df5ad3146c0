package response

import (
	"testing"

	"lojinha_pricing/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	q := entities.PriceQuote{
		FinalPrice: 1149.29,
		Mode:       entities.QuoteModeInstallment,
		Details: entities.QuoteDetails{
			DisplayPrice: 1000,
			BaseAmount:   1000,
			Option: &entities.InstallmentOption{
				Installments:     12,
				Rate:             12.99,
				TotalAmount:      1149.29,
				InstallmentValue: 95.77,
				FeeAmount:        149.29,
			},
		},
	}

	res := FromQuote(q)
	if res.FinalPrice != 1149.29 || res.Mode != "installment" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Option == nil || res.Option.Installments != 12 || res.Option.InstallmentValue != 95.77 {
		t.Fatalf("unexpected option: %+v", res.Option)
	}

	flat := FromQuote(entities.PriceQuote{FinalPrice: 950, Mode: entities.QuoteModeCash, Details: entities.QuoteDetails{DisplayPrice: 1000}})
	if flat.Option != nil {
		t.Fatalf("expected nil option: %+v", flat)
	}
	if flat.Mode != "cash" || flat.DisplayPrice != 1000 {
		t.Fatalf("unexpected mapped fields: %+v", flat)
	}
}

func TestFromOptions(t *testing.T) {
	options := []entities.InstallmentOption{
		{Installments: 1, TotalAmount: 100, InstallmentValue: 100},
		{Installments: 2, Rate: 2.99, TotalAmount: 103.08, InstallmentValue: 51.54, FeeAmount: 3.08},
	}
	res := FromOptions(options)
	if len(res) != 2 {
		t.Fatalf("expected 2 options, got %d", len(res))
	}
	if res[1].Rate != 2.99 || res[1].FeeAmount != 3.08 {
		t.Fatalf("unexpected mapping: %+v", res[1])
	}
}
