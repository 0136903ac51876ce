package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/balance"
	"github.com/iho/gotrialbalance/internal/domain"
)

// PostingEntrySource fetches the raw posting entries of a balance query.
type PostingEntrySource interface {
	FetchPostingEntries(ctx context.Context, query domain.BalanceQuery) ([]domain.PostingEntry, error)
}

// ExchangeRateProvider resolves the value of one unit of from in to.
type ExchangeRateProvider interface {
	FetchExchangeRate(ctx context.Context, from, to string, date time.Time, rateType string) (decimal.Decimal, error)
}

// ExchangeRateRepository defines data access for exchange rates.
type ExchangeRateRepository interface {
	ListByDate(ctx context.Context, rateType string, date time.Time) ([]*domain.ExchangeRate, error)
	Upsert(ctx context.Context, tx Transaction, rate *domain.ExchangeRate) error
}

// CalendarRepository returns the opened calendar periods of a chart.
type CalendarRepository interface {
	FetchCalendarOpenPeriods(ctx context.Context, chartUID string) ([]domain.DateRange, error)
}

// AccountsChartRepository loads charts of accounts.
type AccountsChartRepository interface {
	GetChart(ctx context.Context, uid string) (*domain.AccountsChart, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// BalanceCache stores serialized trial balances under versioned keys.
// Get returns ErrCacheMiss when the key is absent.
type BalanceCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Bump invalidates every cached balance.
	Bump(ctx context.Context) error
}

// RateCache keeps exchange rate tables in memory, keyed by rate type and date.
type RateCache interface {
	Get(rateType string, date time.Time) ([]*domain.ExchangeRate, bool)
	Set(rateType string, date time.Time, rates []*domain.ExchangeRate)
	Invalidate(rateType string, date time.Time)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release removes a key whose request failed.
	Release(ctx context.Context, key string) error
}

// TrialBalanceComputer computes trial balances.
type TrialBalanceComputer interface {
	Compute(ctx context.Context, query domain.BalanceQuery) (*balance.TrialBalance, error)
}
