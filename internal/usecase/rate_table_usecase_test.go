package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"lojinha_pricing/internal/domain/entities"
	mock_interfaces "lojinha_pricing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDefaultInstallmentRates(t *testing.T) {
	rates := DefaultInstallmentRates()
	if len(rates) != 12 {
		t.Fatalf("expected 12 default rates, got %d", len(rates))
	}
	if rates[0].Installments != 1 || rates[0].Rate != 0 {
		t.Fatalf("unexpected first default: %+v", rates[0])
	}
	if rates[11].Installments != 12 || rates[11].Rate != 12.99 {
		t.Fatalf("unexpected last default: %+v", rates[11])
	}
}

func TestRateTableUseCase_GetRates(t *testing.T) {
	t.Run("source success is cached for the process", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateTableUseCase(source, nil, nil)

		source.EXPECT().FetchRates(gomock.Any()).Return([]entities.InstallmentRate{
			{Installments: 3, Rate: 3.99},
			{Installments: 1, Rate: 0},
		}, nil).Times(1)

		rates := uc.GetRates(context.Background())
		if len(rates) != 2 || rates[0].Installments != 1 || rates[1].Installments != 3 {
			t.Fatalf("expected sorted rates, got %+v", rates)
		}

		// Second read must come from memory.
		again := uc.GetRates(context.Background())
		if len(again) != 2 {
			t.Fatalf("expected cached rates, got %+v", again)
		}
	})

	t.Run("source failure falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateTableUseCase(source, nil, nil)

		source.EXPECT().FetchRates(gomock.Any()).Return(nil, errors.New("network down"))

		rates := uc.GetRates(context.Background())
		if len(rates) != 12 {
			t.Fatalf("expected 12 default rates, got %d", len(rates))
		}
		if rates[11].Rate != 12.99 {
			t.Fatalf("expected default 12x rate, got %+v", rates[11])
		}
	})

	t.Run("fallback is not memorized, next read retries the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateTableUseCase(source, nil, nil)

		gomock.InOrder(
			source.EXPECT().FetchRates(gomock.Any()).Return(nil, errors.New("down")),
			source.EXPECT().FetchRates(gomock.Any()).Return([]entities.InstallmentRate{{Installments: 1, Rate: 0}}, nil),
		)

		if got := uc.GetRates(context.Background()); len(got) != 12 {
			t.Fatalf("expected default fallback, got %d rates", len(got))
		}
		if got := uc.GetRates(context.Background()); len(got) != 1 {
			t.Fatalf("expected recovered source table, got %d rates", len(got))
		}
	})

	t.Run("source failure prefers cached snapshot over defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		cacheRepo := mock_interfaces.NewMockICacheRepository(ctrl)
		uc := NewRateTableUseCase(source, nil, cacheRepo)

		snap, _ := json.Marshal([]entities.InstallmentRate{{Installments: 2, Rate: 1.5}})
		source.EXPECT().FetchRates(gomock.Any()).Return(nil, errors.New("down"))
		cacheRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(string(snap), true)

		rates := uc.GetRates(context.Background())
		if len(rates) != 1 || rates[0].Rate != 1.5 {
			t.Fatalf("expected snapshot rates, got %+v", rates)
		}
	})

	t.Run("success writes a snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		cacheRepo := mock_interfaces.NewMockICacheRepository(ctrl)
		uc := NewRateTableUseCase(source, nil, cacheRepo)

		source.EXPECT().FetchRates(gomock.Any()).Return([]entities.InstallmentRate{{Installments: 1, Rate: 0}}, nil)
		cacheRepo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		if got := uc.GetRates(context.Background()); len(got) != 1 {
			t.Fatalf("unexpected rates: %+v", got)
		}
	})

	t.Run("corrupt snapshot falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		cacheRepo := mock_interfaces.NewMockICacheRepository(ctrl)
		uc := NewRateTableUseCase(source, nil, cacheRepo)

		source.EXPECT().FetchRates(gomock.Any()).Return(nil, errors.New("down"))
		cacheRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("{not json", true)

		if got := uc.GetRates(context.Background()); len(got) != 12 {
			t.Fatalf("expected defaults, got %d rates", len(got))
		}
	})

	t.Run("concurrent first reads share one fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateTableUseCase(source, nil, nil)

		source.EXPECT().FetchRates(gomock.Any()).DoAndReturn(
			func(_ context.Context) ([]entities.InstallmentRate, error) {
				time.Sleep(30 * time.Millisecond)
				return []entities.InstallmentRate{{Installments: 1, Rate: 0}}, nil
			},
		).Times(1)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got := uc.GetRates(context.Background()); len(got) != 1 {
					t.Errorf("unexpected rates: %+v", got)
				}
			}()
		}
		wg.Wait()
	})
}

func TestRateTableUseCase_AddRate(t *testing.T) {
	t.Run("invalid installments", func(t *testing.T) {
		uc := NewRateTableUseCase(nil, nil, nil)
		for _, n := range []int{0, -1, 100} {
			if _, err := uc.AddRate(context.Background(), n, 1.5); !errors.Is(err, ErrInvalidInstallments) {
				t.Fatalf("expected ErrInvalidInstallments for %d, got %v", n, err)
			}
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		uc := NewRateTableUseCase(nil, nil, nil)
		for _, rate := range []float64{-0.01, 100, 150} {
			if _, err := uc.AddRate(context.Background(), 13, rate); !errors.Is(err, ErrInvalidRate) {
				t.Fatalf("expected ErrInvalidRate for %v, got %v", rate, err)
			}
		}
	})

	t.Run("duplicate count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstallmentRateRepository(ctrl)
		uc := NewRateTableUseCase(nil, repo, nil)

		repo.EXPECT().GetByInstallments(gomock.Any(), 13).Return(entities.InstallmentRate{Installments: 13, Rate: 13.99}, nil)

		if _, err := uc.AddRate(context.Background(), 13, 14.5); !errors.Is(err, ErrRateAlreadyExists) {
			t.Fatalf("expected ErrRateAlreadyExists, got %v", err)
		}
	})

	t.Run("success invalidates the cached table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIRateSource(ctrl)
		repo := mock_interfaces.NewMockIInstallmentRateRepository(ctrl)
		uc := NewRateTableUseCase(source, repo, nil)

		source.EXPECT().FetchRates(gomock.Any()).Return([]entities.InstallmentRate{{Installments: 1, Rate: 0}}, nil).Times(2)
		uc.GetRates(context.Background())

		repo.EXPECT().GetByInstallments(gomock.Any(), 13).Return(entities.InstallmentRate{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.InstallmentRate{})).DoAndReturn(
			func(_ context.Context, r entities.InstallmentRate) (entities.InstallmentRate, error) {
				if r.Installments != 13 || r.Rate != 13.99 {
					t.Fatalf("unexpected rate: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		if _, err := uc.AddRate(context.Background(), 13, 13.99); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Second source fetch proves the memory cache was dropped.
		uc.GetRates(context.Background())
	})
}

func TestRateTableUseCase_UpdateRate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstallmentRateRepository(ctrl)
		uc := NewRateTableUseCase(nil, repo, nil)

		repo.EXPECT().GetByInstallments(gomock.Any(), 5).Return(entities.InstallmentRate{}, nil)

		if _, err := uc.UpdateRate(context.Background(), 5, 4.5); !errors.Is(err, ErrRateNotFound) {
			t.Fatalf("expected ErrRateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstallmentRateRepository(ctrl)
		uc := NewRateTableUseCase(nil, repo, nil)

		existing := entities.InstallmentRate{Installments: 5, Rate: 5.99, CreatedAt: time.Now().UTC()}
		repo.EXPECT().GetByInstallments(gomock.Any(), 5).Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.InstallmentRate{})).DoAndReturn(
			func(_ context.Context, r entities.InstallmentRate) (entities.InstallmentRate, error) {
				if r.Rate != 4.5 || r.Installments != 5 {
					t.Fatalf("unexpected rate: %+v", r)
				}
				return r, nil
			},
		)

		updated, err := uc.UpdateRate(context.Background(), 5, 4.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Rate != 4.5 {
			t.Fatalf("expected 4.5, got %v", updated.Rate)
		}
	})
}

func TestRateTableUseCase_RemoveRate(t *testing.T) {
	t.Run("protected defaults", func(t *testing.T) {
		uc := NewRateTableUseCase(nil, nil, nil)
		for _, n := range []int{1, 6, 12} {
			if err := uc.RemoveRate(context.Background(), n); !errors.Is(err, ErrProtectedRate) {
				t.Fatalf("expected ErrProtectedRate for %d, got %v", n, err)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		uc := NewRateTableUseCase(nil, nil, nil)
		if err := uc.RemoveRate(context.Background(), 0); !errors.Is(err, ErrInvalidInstallments) {
			t.Fatalf("expected ErrInvalidInstallments, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstallmentRateRepository(ctrl)
		uc := NewRateTableUseCase(nil, repo, nil)

		repo.EXPECT().GetByInstallments(gomock.Any(), 24).Return(entities.InstallmentRate{}, nil)

		if err := uc.RemoveRate(context.Background(), 24); !errors.Is(err, ErrRateNotFound) {
			t.Fatalf("expected ErrRateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInstallmentRateRepository(ctrl)
		uc := NewRateTableUseCase(nil, repo, nil)

		repo.EXPECT().GetByInstallments(gomock.Any(), 24).Return(entities.InstallmentRate{Installments: 24, Rate: 20}, nil)
		repo.EXPECT().Delete(gomock.Any(), 24).Return(nil)

		if err := uc.RemoveRate(context.Background(), 24); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
