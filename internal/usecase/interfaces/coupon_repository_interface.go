package interfaces

import (
	"context"
	"lojinha_pricing/internal/domain/entities"
)

// ICouponRepository abstracts DynamoDB persistence for Coupon.
type ICouponRepository interface {
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	UpdateActiveByCode(ctx context.Context, code string, active bool) (entities.Coupon, error)
}
