package request

import (
	"errors"
	"testing"

	"lojinha_pricing/internal/domain/entities"
)

func TestQuoteRequest_ResolveSelection(t *testing.T) {
	sel, err := QuoteRequest{}.ResolveSelection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Kind != entities.SelectionNone {
		t.Fatalf("expected none, got %q", sel.Kind)
	}

	sel, err = QuoteRequest{Payment: " Cash "}.ResolveSelection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Kind != entities.SelectionCash {
		t.Fatalf("expected cash, got %q", sel.Kind)
	}

	sel, err = QuoteRequest{Payment: "installment", Installments: 6}.ResolveSelection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Kind != entities.SelectionInstallment || sel.Installments != 6 {
		t.Fatalf("unexpected selection: %+v", sel)
	}

	if _, err = (QuoteRequest{Payment: "installment"}).ResolveSelection(); !errors.Is(err, ErrInvalidPaymentSelection) {
		t.Fatalf("expected ErrInvalidPaymentSelection, got %v", err)
	}
	if _, err = (QuoteRequest{Payment: "pix"}).ResolveSelection(); !errors.Is(err, ErrInvalidPaymentSelection) {
		t.Fatalf("expected ErrInvalidPaymentSelection, got %v", err)
	}
}

func TestCheckoutRequest_ResolveSelection(t *testing.T) {
	sel, err := CheckoutRequest{Payment: "installment", Installments: 3}.ResolveSelection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Kind != entities.SelectionInstallment || sel.Installments != 3 {
		t.Fatalf("unexpected selection: %+v", sel)
	}
}
