package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"lojinha_pricing/internal/domain/entities"
	"lojinha_pricing/internal/infrastructure/logger"
	"lojinha_pricing/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidInstallments = errors.New("invalid installment count")
	ErrInvalidRate         = errors.New("invalid rate")
	ErrRateAlreadyExists   = errors.New("rate already exists for this installment count")
	ErrRateNotFound        = errors.New("rate not found")
	ErrProtectedRate       = errors.New("default rates cannot be removed")
)

const rateSnapshotKey = "installment_rates:snapshot"

// DefaultInstallmentRates is the hardcoded fallback table used whenever the
// configured source is unreachable or returns garbage: 1x fee-free, then
// 2.99% to 12.99% for 2x..12x.
func DefaultInstallmentRates() []entities.InstallmentRate {
	rates := make([]entities.InstallmentRate, 0, 12)
	rates = append(rates, entities.InstallmentRate{Installments: 1, Rate: 0})
	for n := 2; n <= 12; n++ {
		rates = append(rates, entities.InstallmentRate{Installments: n, Rate: float64(n) + 0.99})
	}
	return rates
}

// IRateTableUseCase owns the installment rate table: reads resolve through
// a process-lifetime cache with fallback, writes are the admin mutations.
type IRateTableUseCase interface {
	GetRates(ctx context.Context) []entities.InstallmentRate
	AddRate(ctx context.Context, installments int, rate float64) (entities.InstallmentRate, error)
	UpdateRate(ctx context.Context, installments int, rate float64) (entities.InstallmentRate, error)
	RemoveRate(ctx context.Context, installments int) error
}

// RateTableUseCase loads the rate table once per process and serves it from
// memory afterwards. Concurrent first loads collapse into a single source
// fetch. A load that had to fall back is not memorized, so a later call
// retries the source.
type RateTableUseCase struct {
	source interfaces.IRateSource
	repo   interfaces.IInstallmentRateRepository
	cache  interfaces.ICacheRepository

	mu     sync.RWMutex
	loaded []entities.InstallmentRate
	group  singleflight.Group
}

var _ IRateTableUseCase = (*RateTableUseCase)(nil)

func NewRateTableUseCase(source interfaces.IRateSource, repo interfaces.IInstallmentRateRepository, cache interfaces.ICacheRepository) *RateTableUseCase {
	return &RateTableUseCase{source: source, repo: repo, cache: cache}
}

// GetRates returns the effective rate table, sorted ascending by
// installment count. It never fails: source errors degrade to the cached
// snapshot and then to the built-in defaults.
func (u *RateTableUseCase) GetRates(ctx context.Context) []entities.InstallmentRate {
	u.mu.RLock()
	loaded := u.loaded
	u.mu.RUnlock()
	if loaded != nil {
		return loaded
	}

	v, _, _ := u.group.Do("rates", func() (interface{}, error) {
		return u.load(ctx), nil
	})
	return v.([]entities.InstallmentRate)
}

func (u *RateTableUseCase) load(ctx context.Context) []entities.InstallmentRate {
	if u.source != nil {
		rates, err := u.source.FetchRates(ctx)
		if err == nil && len(rates) > 0 {
			sortRates(rates)
			u.mu.Lock()
			u.loaded = rates
			u.mu.Unlock()
			u.snapshot(ctx, rates)
			return rates
		}
		if err != nil {
			logger.Warn("rate source fetch failed, falling back", zap.Error(err))
		}
	}

	if snap, ok := u.restoreSnapshot(ctx); ok {
		return snap
	}
	return DefaultInstallmentRates()
}

func (u *RateTableUseCase) snapshot(ctx context.Context, rates []entities.InstallmentRate) {
	if u.cache == nil {
		return
	}
	b, err := json.Marshal(rates)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, rateSnapshotKey, string(b)); err != nil {
		logger.Warn("rate snapshot write failed", zap.Error(err))
	}
}

func (u *RateTableUseCase) restoreSnapshot(ctx context.Context) ([]entities.InstallmentRate, bool) {
	if u.cache == nil {
		return nil, false
	}
	raw, ok := u.cache.Get(ctx, rateSnapshotKey)
	if !ok {
		return nil, false
	}
	var rates []entities.InstallmentRate
	if err := json.Unmarshal([]byte(raw), &rates); err != nil || len(rates) == 0 {
		return nil, false
	}
	sortRates(rates)
	return rates, true
}

// AddRate registers a fee rate for a new installment count.
func (u *RateTableUseCase) AddRate(ctx context.Context, installments int, rate float64) (entities.InstallmentRate, error) {
	if err := validateRateInput(installments, rate); err != nil {
		return entities.InstallmentRate{}, err
	}

	existing, err := u.repo.GetByInstallments(ctx, installments)
	if err != nil {
		return entities.InstallmentRate{}, err
	}
	if existing.Installments != 0 {
		return entities.InstallmentRate{}, ErrRateAlreadyExists
	}

	now := time.Now().UTC()
	created, err := u.repo.Put(ctx, entities.InstallmentRate{
		Installments: installments,
		Rate:         rate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return entities.InstallmentRate{}, err
	}
	u.invalidate()
	return created, nil
}

// UpdateRate changes the fee rate of an existing installment count.
func (u *RateTableUseCase) UpdateRate(ctx context.Context, installments int, rate float64) (entities.InstallmentRate, error) {
	if err := validateRateInput(installments, rate); err != nil {
		return entities.InstallmentRate{}, err
	}

	existing, err := u.repo.GetByInstallments(ctx, installments)
	if err != nil {
		return entities.InstallmentRate{}, err
	}
	if existing.Installments == 0 {
		return entities.InstallmentRate{}, ErrRateNotFound
	}

	existing.Rate = rate
	existing.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Put(ctx, existing)
	if err != nil {
		return entities.InstallmentRate{}, err
	}
	u.invalidate()
	return updated, nil
}

// RemoveRate deletes a rate. The default counts 1..12 are protected.
func (u *RateTableUseCase) RemoveRate(ctx context.Context, installments int) error {
	if installments < MinInstallments || installments > MaxInstallments {
		return ErrInvalidInstallments
	}
	if installments <= MaxProtectedInstallments {
		return ErrProtectedRate
	}

	existing, err := u.repo.GetByInstallments(ctx, installments)
	if err != nil {
		return err
	}
	if existing.Installments == 0 {
		return ErrRateNotFound
	}

	if err := u.repo.Delete(ctx, installments); err != nil {
		return err
	}
	u.invalidate()
	return nil
}

// invalidate drops the in-memory table so the next read reloads and sees
// the mutation. There is no TTL; only mutations (or a restart) refresh.
func (u *RateTableUseCase) invalidate() {
	u.mu.Lock()
	u.loaded = nil
	u.mu.Unlock()
}

func validateRateInput(installments int, rate float64) error {
	if installments < MinInstallments || installments > MaxInstallments {
		return ErrInvalidInstallments
	}
	if rate < MinRatePercent || rate >= MaxRatePercent {
		return ErrInvalidRate
	}
	return nil
}

func sortRates(rates []entities.InstallmentRate) {
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Installments < rates[j].Installments
	})
}
