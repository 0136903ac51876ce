package usecase

import (
	"errors"
	"time"
)

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultBalanceCacheTTL is used when no TTL is configured.
	DefaultBalanceCacheTTL = 10 * time.Minute

	// MaxRatesPerBatch bounds a single exchange rate save.
	MaxRatesPerBatch = 500

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// ErrCacheMiss is returned by BalanceCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")
