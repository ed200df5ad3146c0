package interfaces

import (
	"context"
	"lojinha_pricing/internal/domain/entities"
)

// IInstallmentRateRepository abstracts DynamoDB persistence for the
// installment rate table.
//
// The pricing-service must be able to:
//   - list the whole table (the provider loads it in one shot)
//   - upsert a single rate (admin add/update)
//   - remove a non-default rate (admin remove)
type IInstallmentRateRepository interface {
	List(ctx context.Context) ([]entities.InstallmentRate, error)
	GetByInstallments(ctx context.Context, installments int) (entities.InstallmentRate, error)
	Put(ctx context.Context, rate entities.InstallmentRate) (entities.InstallmentRate, error)
	Delete(ctx context.Context, installments int) error
}
