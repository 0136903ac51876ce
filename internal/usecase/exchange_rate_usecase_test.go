package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/ratecache"
	"github.com/iho/gotrialbalance/internal/usecase"
	"github.com/iho/gotrialbalance/internal/usecase/mocks"
)

func rateTable(day time.Time) []*domain.ExchangeRate {
	return []*domain.ExchangeRate{
		{Date: day, RateType: "FIX", FromCurrency: "USD", ToCurrency: "MXN", Value: decimal.RequireFromString("20")},
		{Date: day, RateType: "FIX", FromCurrency: "EUR", ToCurrency: "MXN", Value: decimal.RequireFromString("21.5")},
	}
}

func TestExchangeRateUseCase_FetchExchangeRate(t *testing.T) {
	day := date(2025, time.January, 31)

	tests := []struct {
		name     string
		from, to string
		want     string
		missing  bool
	}{
		{name: "direct", from: "USD", to: "MXN", want: "20"},
		{name: "inverse", from: "MXN", to: "USD", want: "0.05"},
		{name: "lower case codes", from: "eur", to: "mxn", want: "21.5"},
		{name: "same currency", from: "MXN", to: "MXN", want: "1"},
		{name: "missing pair", from: "USD", to: "EUR", missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockExchangeRateRepository(ctrl)
			repo.EXPECT().ListByDate(gomock.Any(), "FIX", day).Return(rateTable(day), nil).MaxTimes(1)

			uc := usecase.NewExchangeRateUseCase(nil, repo, nil, nil, nil, nil, zerolog.Nop())

			got, err := uc.FetchExchangeRate(context.Background(), tt.from, tt.to, day, "fix")
			if tt.missing {
				var missing *domain.MissingExchangeRateError
				if !errors.As(err, &missing) {
					t.Fatalf("expected MissingExchangeRateError, got %v", err)
				}
				if missing.RateType != "FIX" || missing.FromCurrency != "USD" || missing.ToCurrency != "EUR" {
					t.Errorf("unexpected error details: %+v", missing)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestExchangeRateUseCase_CachesRateTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := date(2025, time.January, 31)

	repo := mocks.NewMockExchangeRateRepository(ctrl)
	repo.EXPECT().ListByDate(gomock.Any(), "FIX", day).Return(rateTable(day), nil).Times(1)

	uc := usecase.NewExchangeRateUseCase(nil, repo, ratecache.New(time.Minute), nil, nil, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := uc.FetchExchangeRate(context.Background(), "USD", "MXN", day, "FIX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestExchangeRateUseCase_GetRates_InvalidType(t *testing.T) {
	uc := usecase.NewExchangeRateUseCase(nil, nil, nil, nil, nil, nil, zerolog.Nop())

	_, err := uc.GetRates(context.Background(), "fix-2", date(2025, time.January, 31))
	if !errors.Is(err, domain.ErrInvalidRateType) {
		t.Fatalf("expected ErrInvalidRateType, got %v", err)
	}
}

func TestExchangeRateUseCase_SaveRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := date(2025, time.January, 31)

	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	repo := mocks.NewMockExchangeRateRepository(ctrl)
	rateCache := mocks.NewMockRateCache(ctrl)
	balances := mocks.NewMockBalanceCache(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)

	ids.EXPECT().Generate().Return("01JRATE").Times(2)
	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	repo.EXPECT().Upsert(gomock.Any(), tx, gomock.Any()).Times(2)
	tx.EXPECT().Commit(gomock.Any()).Return(nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	rateCache.EXPECT().Invalidate("FIX", day)
	balances.EXPECT().Bump(gomock.Any()).Return(nil)

	uc := usecase.NewExchangeRateUseCase(txManager, repo, rateCache, balances, ids, nil, zerolog.Nop())

	saved, err := uc.SaveRates(context.Background(), usecase.SaveRatesInput{
		Date:     day.Add(15 * time.Hour),
		RateType: " fix ",
		Rates: []usecase.RateInput{
			{FromCurrency: "usd", ToCurrency: "MXN", Value: decimal.RequireFromString("20.1")},
			{FromCurrency: "EUR", ToCurrency: "MXN", Value: decimal.RequireFromString("21.7")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(saved))
	}
	if saved[0].FromCurrency != "USD" || !saved[0].Date.Equal(day) || saved[0].RateType != "FIX" {
		t.Errorf("rate not normalized: %+v", saved[0])
	}
}

func TestExchangeRateUseCase_SaveRates_Validation(t *testing.T) {
	day := date(2025, time.January, 31)
	tooMany := make([]usecase.RateInput, usecase.MaxRatesPerBatch+1)

	tests := []struct {
		name      string
		input     usecase.SaveRatesInput
		errorType error
	}{
		{
			name:      "empty batch",
			input:     usecase.SaveRatesInput{Date: day, RateType: "FIX"},
			errorType: domain.ErrInvalidExchangeRate,
		},
		{
			name:      "batch too large",
			input:     usecase.SaveRatesInput{Date: day, RateType: "FIX", Rates: tooMany},
			errorType: domain.ErrInvalidExchangeRate,
		},
		{
			name: "non positive value",
			input: usecase.SaveRatesInput{Date: day, RateType: "FIX", Rates: []usecase.RateInput{
				{FromCurrency: "USD", ToCurrency: "MXN", Value: decimal.Zero},
			}},
			errorType: domain.ErrInvalidExchangeRate,
		},
		{
			name: "unsupported currency",
			input: usecase.SaveRatesInput{Date: day, RateType: "FIX", Rates: []usecase.RateInput{
				{FromCurrency: "XXX", ToCurrency: "MXN", Value: decimal.NewFromInt(1)},
			}},
			errorType: domain.ErrInvalidCurrency,
		},
		{
			name: "duplicate pair",
			input: usecase.SaveRatesInput{Date: day, RateType: "FIX", Rates: []usecase.RateInput{
				{FromCurrency: "USD", ToCurrency: "MXN", Value: decimal.NewFromInt(20)},
				{FromCurrency: "usd", ToCurrency: "mxn", Value: decimal.NewFromInt(21)},
			}},
			errorType: domain.ErrInvalidExchangeRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ids := mocks.NewMockIDGenerator(ctrl)
			ids.EXPECT().Generate().Return("01JRATE").AnyTimes()

			uc := usecase.NewExchangeRateUseCase(nil, nil, nil, nil, ids, nil, zerolog.Nop())

			_, err := uc.SaveRates(context.Background(), tt.input)
			if !errors.Is(err, tt.errorType) {
				t.Fatalf("expected %v, got %v", tt.errorType, err)
			}
		})
	}
}

func TestExchangeRateUseCase_SaveRates_UpsertFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	day := date(2025, time.January, 31)

	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	repo := mocks.NewMockExchangeRateRepository(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)

	ids.EXPECT().Generate().Return("01JRATE")
	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	repo.EXPECT().Upsert(gomock.Any(), tx, gomock.Any()).Return(errors.New("constraint violation"))
	tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	uc := usecase.NewExchangeRateUseCase(txManager, repo, nil, nil, ids, nil, zerolog.Nop())

	_, err := uc.SaveRates(context.Background(), usecase.SaveRatesInput{
		Date:     day,
		RateType: "FIX",
		Rates:    []usecase.RateInput{{FromCurrency: "USD", ToCurrency: "MXN", Value: decimal.NewFromInt(20)}},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}
