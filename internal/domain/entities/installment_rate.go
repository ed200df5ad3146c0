package entities

import "time"

// InstallmentRate maps an installment count to the card-processor fee
// percentage charged for that count.
//
// Domain notes:
//   - At most one rate exists per installment count.
//   - Counts 1..12 are the storefront defaults and cannot be removed,
//     only updated.
//
// Storage model (DynamoDB):
//   - PK: installments (number)
type InstallmentRate struct {
	Installments int       `json:"installments"`
	Rate         float64   `json:"rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InstallmentOption is the buyer-facing projection of a rate applied to a
// desired net amount. It is computed per request and never persisted.
//
// TotalAmount is fee-inclusive: the charge needed so the seller still nets
// the desired amount after the processor deducts its fee.
type InstallmentOption struct {
	Installments     int     `json:"installments"`
	Rate             float64 `json:"rate"`
	TotalAmount      float64 `json:"total_amount"`
	InstallmentValue float64 `json:"installment_value"`
	FeeAmount        float64 `json:"fee_amount"`
}
