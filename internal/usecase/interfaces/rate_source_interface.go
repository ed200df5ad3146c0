package interfaces

import (
	"context"
	"lojinha_pricing/internal/domain/entities"
)

// IRateSource is where the rate table provider loads rates from.
//
// Two implementations exist: the remote configuration endpoint (HTTP) and
// the DynamoDB repository itself, picked at wiring time. Fetch failures are
// never surfaced to buyers; the provider falls back to a snapshot or to the
// built-in defaults.
type IRateSource interface {
	FetchRates(ctx context.Context) ([]entities.InstallmentRate, error)
}
