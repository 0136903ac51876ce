package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/metrics"
)

// inverseRatePrecision is the number of decimals kept when a rate is
// derived from its inverse.
const inverseRatePrecision = 16

// ExchangeRateUseCase stores exchange rate tables and resolves rates for
// valuation.
type ExchangeRateUseCase struct {
	txManager TransactionManager
	rateRepo  ExchangeRateRepository
	rateCache RateCache
	balances  BalanceCache
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewExchangeRateUseCase creates a new ExchangeRateUseCase. rateCache,
// balances and metrics may be nil.
func NewExchangeRateUseCase(
	txManager TransactionManager,
	rateRepo ExchangeRateRepository,
	rateCache RateCache,
	balances BalanceCache,
	idGen IDGenerator,
	metrics *metrics.Metrics,
	logger zerolog.Logger,
) *ExchangeRateUseCase {
	return &ExchangeRateUseCase{
		txManager: txManager,
		rateRepo:  rateRepo,
		rateCache: rateCache,
		balances:  balances,
		idGen:     idGen,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetRates returns the rate table of a type on a date.
func (uc *ExchangeRateUseCase) GetRates(ctx context.Context, rateType string, date time.Time) ([]*domain.ExchangeRate, error) {
	rateType = strings.ToUpper(strings.TrimSpace(rateType))
	if err := domain.ValidateRateType(rateType); err != nil {
		return nil, err
	}
	date = domain.TruncateDay(date)

	if uc.rateCache != nil {
		if rates, ok := uc.rateCache.Get(rateType, date); ok {
			uc.countCache(true)
			return rates, nil
		}
		uc.countCache(false)
	}

	rates, err := uc.rateRepo.ListByDate(ctx, rateType, date)
	if err != nil {
		return nil, fmt.Errorf("list %s rates on %s: %w", rateType, date.Format(domain.DateLayout), err)
	}
	if uc.rateCache != nil {
		uc.rateCache.Set(rateType, date, rates)
	}
	return rates, nil
}

// FetchExchangeRate returns the value of one unit of from in to. A missing
// direct rate is derived from the inverse pair; when neither exists the
// result is a MissingExchangeRateError.
func (uc *ExchangeRateUseCase) FetchExchangeRate(ctx context.Context, from, to string, date time.Time, rateType string) (decimal.Decimal, error) {
	from, to = domain.NormalizeCurrency(from), domain.NormalizeCurrency(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rates, err := uc.GetRates(ctx, rateType, date)
	if err != nil {
		return decimal.Zero, err
	}

	var inverse *domain.ExchangeRate
	for _, r := range rates {
		switch {
		case r.FromCurrency == from && r.ToCurrency == to:
			uc.countLookup("direct")
			return r.Value, nil
		case r.FromCurrency == to && r.ToCurrency == from:
			inverse = r
		}
	}

	if inverse != nil && inverse.Value.IsPositive() {
		uc.countLookup("inverse")
		return decimal.NewFromInt(1).DivRound(inverse.Value, inverseRatePrecision), nil
	}

	uc.countLookup("missing")
	if uc.metrics != nil {
		uc.metrics.MissingRates.WithLabelValues(strings.ToUpper(rateType)).Inc()
	}
	return decimal.Zero, &domain.MissingExchangeRateError{
		FromCurrency: from,
		ToCurrency:   to,
		Date:         domain.TruncateDay(date),
		RateType:     strings.ToUpper(rateType),
	}
}

// SaveRatesInput is a batch of rates of one type and date.
type SaveRatesInput struct {
	Date     time.Time
	RateType string
	Rates    []RateInput
}

// RateInput is one currency pair of a SaveRatesInput.
type RateInput struct {
	FromCurrency string
	ToCurrency   string
	Value        decimal.Decimal
}

// SaveRates validates and upserts a batch of rates atomically. Cached rate
// tables and cached balances are invalidated once the batch commits.
func (uc *ExchangeRateUseCase) SaveRates(ctx context.Context, input SaveRatesInput) ([]*domain.ExchangeRate, error) {
	if len(input.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates given", domain.ErrInvalidExchangeRate)
	}
	if len(input.Rates) > MaxRatesPerBatch {
		return nil, fmt.Errorf("%w: at most %d rates per batch, got %d",
			domain.ErrInvalidExchangeRate, MaxRatesPerBatch, len(input.Rates))
	}

	rateType := strings.ToUpper(strings.TrimSpace(input.RateType))
	date := domain.TruncateDay(input.Date)
	now := time.Now().UTC()

	seen := make(map[string]bool, len(input.Rates))
	rates := make([]*domain.ExchangeRate, 0, len(input.Rates))
	for _, in := range input.Rates {
		rate := &domain.ExchangeRate{
			UID:          uc.idGen.Generate(),
			Date:         date,
			RateType:     rateType,
			FromCurrency: domain.NormalizeCurrency(in.FromCurrency),
			ToCurrency:   domain.NormalizeCurrency(in.ToCurrency),
			Value:        in.Value,
			UpdatedAt:    now,
		}
		if err := rate.Validate(); err != nil {
			return nil, err
		}
		pair := rate.FromCurrency + "/" + rate.ToCurrency
		if seen[pair] {
			return nil, fmt.Errorf("%w: duplicate pair %s", domain.ErrInvalidExchangeRate, pair)
		}
		seen[pair] = true
		rates = append(rates, rate)
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	for _, rate := range rates {
		if err := uc.rateRepo.Upsert(txCtx, tx, rate); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.rateCache != nil {
		uc.rateCache.Invalidate(rateType, date)
	}
	if uc.balances != nil {
		if err := uc.balances.Bump(ctx); err != nil {
			uc.logger.Warn().Err(err).Msg("failed to invalidate cached balances")
		}
	}

	if uc.metrics != nil {
		uc.metrics.RatesSaved.Add(float64(len(rates)))
	}
	uc.logger.Info().
		Str("rate_type", rateType).
		Str("date", date.Format(domain.DateLayout)).
		Int("rates", len(rates)).
		Msg("exchange rates saved")

	return rates, nil
}

func (uc *ExchangeRateUseCase) countLookup(resolution string) {
	if uc.metrics != nil {
		uc.metrics.RateLookups.WithLabelValues(resolution).Inc()
	}
}

func (uc *ExchangeRateUseCase) countCache(hit bool) {
	if uc.metrics == nil {
		return
	}
	if hit {
		uc.metrics.CacheHits.WithLabelValues("rates").Inc()
	} else {
		uc.metrics.CacheMisses.WithLabelValues("rates").Inc()
	}
}
