package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCouponCode     = errors.New("invalid coupon code")
	ErrInvalidCouponDiscount = errors.New("invalid coupon discount")
	ErrCouponAlreadyExists   = errors.New("coupon already exists")
	ErrCouponNotFound        = errors.New("coupon not found")
)

// ICouponUseCase exposes coupon registry operations.
//
// Validate feeds the pricing policy and never errors on a bad code: an
// unknown or inactive coupon is simply Valid=false so resolution falls
// through to the consumer pricing modes.
type ICouponUseCase interface {
	Create(ctx context.Context, code string, discountPercent float64) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	Deactivate(ctx context.Context, code string) (entities.Coupon, error)
	Validate(ctx context.Context, code string) (entities.CouponValidation, error)
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

func (u *CouponUseCase) Create(ctx context.Context, code string, discountPercent float64) (entities.Coupon, error) {
	code = normalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	if discountPercent <= 0 || discountPercent > MaxCouponDiscountPercent {
		return entities.Coupon{}, ErrInvalidCouponDiscount
	}

	// Enforce: 1 coupon per code.
	if existing, err := u.repo.GetByCode(ctx, code); err != nil {
		return entities.Coupon{}, err
	} else if existing.Code != "" {
		return entities.Coupon{}, ErrCouponAlreadyExists
	}

	now := time.Now().UTC()
	c := entities.Coupon{
		ID:              uuid.NewString(),
		Code:            code,
		Active:          true,
		DiscountPercent: discountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CouponUseCase) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	code = normalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}

	c, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if c.Code == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	return c, nil
}

func (u *CouponUseCase) List(ctx context.Context) ([]entities.Coupon, error) {
	return u.repo.List(ctx)
}

func (u *CouponUseCase) Deactivate(ctx context.Context, code string) (entities.Coupon, error) {
	code = normalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}

	updated, err := u.repo.UpdateActiveByCode(ctx, code, false)
	if err != nil {
		return entities.Coupon{}, err
	}
	if updated.Code == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	return updated, nil
}

func (u *CouponUseCase) Validate(ctx context.Context, code string) (entities.CouponValidation, error) {
	code = normalizeCouponCode(code)
	if code == "" {
		return entities.CouponValidation{}, nil
	}

	c, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.CouponValidation{}, err
	}
	if c.Code == "" || !c.Active || c.DiscountPercent <= 0 {
		return entities.CouponValidation{Code: code}, nil
	}
	return entities.CouponValidation{
		Valid:           true,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
	}, nil
}

func normalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
