package request

// RateCreateRequest registers a fee rate for a new installment count.
type RateCreateRequest struct {
	Installments int     `json:"installments" binding:"required"`
	Rate         float64 `json:"rate"`
}

// RateUpdateRequest changes the fee rate of an existing installment count.
// The count comes from the path.
type RateUpdateRequest struct {
	Rate float64 `json:"rate"`
}
