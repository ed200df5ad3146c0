package ratesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/usecase/interfaces"
)

var ErrMissingRatesConfigURL = errors.New("missing RATES_CONFIG_URL")

// The config endpoint must answer within this window; a hung endpoint must
// not hang every first pricing request behind it.
const fetchTimeout = 10 * time.Second

type ratesPayload struct {
	InstallmentRates []struct {
		Installments int     `json:"installments"`
		Rate         float64 `json:"rate"`
	} `json:"installment_rates"`
}

// HTTPRateSource fetches the installment rate table from the remote
// configuration endpoint:
//
//	GET <url> -> {"installment_rates":[{"installments":1,"rate":0}, ...]}
//
// Any transport error, non-200 status or malformed/invalid entry is a
// fetch error; the provider decides the fallback.
type HTTPRateSource struct {
	url    string
	client *http.Client
}

var _ interfaces.IRateSource = (*HTTPRateSource)(nil)

func NewHTTPRateSource(url string) (*HTTPRateSource, error) {
	if url == "" {
		return nil, ErrMissingRatesConfigURL
	}
	return &HTTPRateSource{
		url:    url,
		client: &http.Client{Timeout: fetchTimeout},
	}, nil
}

func (s *HTTPRateSource) FetchRates(ctx context.Context) ([]entities.InstallmentRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates config endpoint returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.InstallmentRates) == 0 {
		return nil, errors.New("rates config payload has no installment_rates")
	}

	rates := make([]entities.InstallmentRate, 0, len(payload.InstallmentRates))
	seen := make(map[int]bool, len(payload.InstallmentRates))
	for _, r := range payload.InstallmentRates {
		if r.Installments < 1 || r.Rate < 0 || r.Rate >= 100 {
			return nil, fmt.Errorf("rates config entry out of range: %dx at %v%%", r.Installments, r.Rate)
		}
		if seen[r.Installments] {
			return nil, fmt.Errorf("rates config has duplicate count %d", r.Installments)
		}
		seen[r.Installments] = true
		rates = append(rates, entities.InstallmentRate{Installments: r.Installments, Rate: r.Rate})
	}
	return rates, nil
}
