package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/iho/gotrialbalance/internal/balance"
	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/metrics"
)

// TrialBalanceUseCase validates balance queries against the chart and its
// calendar, and runs the balance engine, caching results when a cache is set.
type TrialBalanceUseCase struct {
	engine   *balance.Engine
	charts   AccountsChartRepository
	calendar CalendarRepository
	postings PostingEntrySource
	rates    ExchangeRateProvider
	idGen    IDGenerator
	logger   zerolog.Logger

	cache           BalanceCache
	cacheTTL        time.Duration
	metrics         *metrics.Metrics
	defaultRateType string

	flight singleflight.Group
}

// NewTrialBalanceUseCase creates a new TrialBalanceUseCase.
func NewTrialBalanceUseCase(
	engine *balance.Engine,
	charts AccountsChartRepository,
	calendar CalendarRepository,
	postings PostingEntrySource,
	rates ExchangeRateProvider,
	idGen IDGenerator,
	logger zerolog.Logger,
) *TrialBalanceUseCase {
	return &TrialBalanceUseCase{
		engine:   engine,
		charts:   charts,
		calendar: calendar,
		postings: postings,
		rates:    rates,
		idGen:    idGen,
		logger:   logger,
	}
}

// WithCache enables result caching.
func (uc *TrialBalanceUseCase) WithCache(cache BalanceCache, ttl time.Duration) *TrialBalanceUseCase {
	if ttl <= 0 {
		ttl = DefaultBalanceCacheTTL
	}
	uc.cache = cache
	uc.cacheTTL = ttl
	return uc
}

// WithMetrics enables Prometheus instrumentation.
func (uc *TrialBalanceUseCase) WithMetrics(m *metrics.Metrics) *TrialBalanceUseCase {
	uc.metrics = m
	return uc
}

// WithDefaultRateType sets the rate type used by queries that value balances
// without naming one.
func (uc *TrialBalanceUseCase) WithDefaultRateType(rateType string) *TrialBalanceUseCase {
	uc.defaultRateType = strings.ToUpper(strings.TrimSpace(rateType))
	return uc
}

// Compute returns the trial balance of a query.
func (uc *TrialBalanceUseCase) Compute(ctx context.Context, query domain.BalanceQuery) (*balance.TrialBalance, error) {
	start := time.Now()
	runID := uc.idGen.Generate()
	logger := uc.logger.With().
		Str("run_id", runID).
		Str("balance_type", string(query.BalanceType)).
		Str("chart", query.AccountsChart).
		Str("period", query.Period.String()).
		Logger()
	ctx = logger.WithContext(ctx)

	tb, source, err := uc.compute(ctx, query)
	if err != nil {
		kind := ErrorKind(err)
		logger.Warn().Err(err).Str("kind", kind).Dur("elapsed", time.Since(start)).Msg("trial balance failed")
		if uc.metrics != nil {
			uc.metrics.BalanceErrors.WithLabelValues(kind).Inc()
		}
		return nil, err
	}

	logger.Info().
		Str("source", source).
		Int("rows", len(tb.Entries)).
		Str("target_currency", tb.TargetCurrency).
		Dur("elapsed", time.Since(start)).
		Msg("trial balance computed")
	if uc.metrics != nil {
		uc.metrics.BalancesComputed.WithLabelValues(string(query.BalanceType), source).Inc()
		uc.metrics.BalanceDuration.WithLabelValues(string(query.BalanceType)).Observe(time.Since(start).Seconds())
		uc.metrics.BalanceRows.WithLabelValues(string(query.BalanceType)).Observe(float64(len(tb.Entries)))
	}
	return tb, nil
}

func (uc *TrialBalanceUseCase) compute(ctx context.Context, query domain.BalanceQuery) (*balance.TrialBalance, string, error) {
	if err := query.Validate(); err != nil {
		return nil, "", err
	}
	if query.ExchangeRateType == "" && !query.UseDefaultValuation {
		query.ExchangeRateType = uc.defaultRateType
	}

	chart, err := uc.charts.GetChart(ctx, query.AccountsChart)
	if err != nil {
		return nil, "", fmt.Errorf("load accounts chart %s: %w", query.AccountsChart, err)
	}

	if err := uc.checkCalendar(ctx, chart.UID, query); err != nil {
		return nil, "", err
	}

	key := uc.cacheKey(ctx, query)
	if key != "" {
		if tb, ok := uc.fromCache(ctx, key); ok {
			return tb, "cache", nil
		}
	}

	flightKey := key
	if flightKey == "" {
		flightKey = query.Fingerprint()
	}

	v, err, shared := uc.flight.Do(flightKey, func() (interface{}, error) {
		tb, err := uc.engine.Compute(ctx, balance.Request{
			Query:    query,
			Chart:    chart,
			Postings: uc.postings,
			Rates:    uc.rates,
		})
		if err != nil {
			return nil, err
		}
		if key != "" {
			uc.store(ctx, key, tb)
		}
		return tb, nil
	})
	if err != nil {
		return nil, "", err
	}

	source := "engine"
	if shared {
		source = "shared"
	}
	return v.(*balance.TrialBalance), source, nil
}

// checkCalendar rejects periods outside the opened calendar of the chart.
func (uc *TrialBalanceUseCase) checkCalendar(ctx context.Context, chartUID string, query domain.BalanceQuery) error {
	open, err := uc.calendar.FetchCalendarOpenPeriods(ctx, chartUID)
	if err != nil {
		return fmt.Errorf("load calendar of %s: %w", chartUID, err)
	}
	if err := domain.CheckOpenPeriods(chartUID, query.Period, open); err != nil {
		return err
	}
	if query.ComparisonPeriod != nil {
		return domain.CheckOpenPeriods(chartUID, *query.ComparisonPeriod, open)
	}
	return nil
}

func (uc *TrialBalanceUseCase) cacheKey(ctx context.Context, query domain.BalanceQuery) string {
	if uc.cache == nil {
		return ""
	}
	version, err := uc.cache.Version(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("balance cache unavailable")
		return ""
	}
	return fmt.Sprintf("trialbalance:%s:%d", query.Fingerprint(), version)
}

func (uc *TrialBalanceUseCase) fromCache(ctx context.Context, key string) (*balance.TrialBalance, bool) {
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("balance cache read failed")
		}
		uc.countCache(false)
		return nil, false
	}

	var tb balance.TrialBalance
	if err := json.Unmarshal(raw, &tb); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable cached balance")
		uc.countCache(false)
		return nil, false
	}
	uc.countCache(true)
	return &tb, true
}

func (uc *TrialBalanceUseCase) store(ctx context.Context, key string, tb *balance.TrialBalance) {
	raw, err := json.Marshal(tb)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("balance not cacheable")
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.cacheTTL); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("balance cache write failed")
	}
}

func (uc *TrialBalanceUseCase) countCache(hit bool) {
	if uc.metrics == nil {
		return
	}
	if hit {
		uc.metrics.CacheHits.WithLabelValues("balance").Inc()
	} else {
		uc.metrics.CacheMisses.WithLabelValues("balance").Inc()
	}
}

// ErrorKind classifies an error for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, domain.ErrInvalidPeriod):
		return "invalid_period"
	case errors.Is(err, domain.ErrChartNotFound):
		return "chart_not_found"
	case errors.Is(err, domain.ErrOrphanAccount):
		return "orphan_account"
	case errors.Is(err, domain.ErrMissingExchangeRate):
		return "missing_exchange_rate"
	case errors.Is(err, domain.ErrInconsistentBalance):
		return "inconsistent_balance"
	case errors.Is(err, domain.ErrNegativeMovement), errors.Is(err, domain.ErrInvalidPostingLine):
		return "invalid_posting"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
