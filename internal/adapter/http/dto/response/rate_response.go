package response

import (
	"time"

	"lojinha_pricing/internal/domain/entities"
)

type RateResponse struct {
	Installments int       `json:"installments"`
	Rate         float64   `json:"rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRate(r entities.InstallmentRate) RateResponse {
	return RateResponse{
		Installments: r.Installments,
		Rate:         r.Rate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func FromRates(rates []entities.InstallmentRate) []RateResponse {
	out := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, FromRate(r))
	}
	return out
}
