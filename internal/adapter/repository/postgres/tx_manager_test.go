package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
)

func fixRate(uid, from string, value string) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		UID:          uid,
		Date:         day(2025, time.January, 31),
		RateType:     "FIX",
		FromCurrency: from,
		ToCurrency:   "MXN",
		Value:        decimal.RequireFromString(value),
		UpdatedAt:    day(2025, time.February, 1),
	}
}

func TestTxManager_CommitsRateBatch(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("INSERT INTO exchange_rates").
		WithArgs("01JA", "FIX", pgxmock.AnyArg(), "USD", "MXN", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectExec("INSERT INTO exchange_rates").
		WithArgs("01JB", "FIX", pgxmock.AnyArg(), "EUR", "MXN", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectCommit()

	ctx := context.Background()
	tx, err := newTxManagerWithPool(mockPool).Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := newExchangeRateRepository(mockPool)
	for _, rate := range []*domain.ExchangeRate{fixRate("01JA", "USD", "20.5"), fixRate("01JB", "EUR", "21.75")} {
		if err := repo.Upsert(ctx, tx, rate); err != nil {
			t.Fatalf("upsert %s: %v", rate.FromCurrency, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestTxManager_RollsBackFailedUpsert(t *testing.T) {
	mockPool := newMockPool(t)
	upsertErr := errors.New("value violates check constraint")
	mockPool.ExpectBegin()
	mockPool.ExpectExec("INSERT INTO exchange_rates").WillReturnError(upsertErr)
	mockPool.ExpectRollback()

	ctx := context.Background()
	tx, err := newTxManagerWithPool(mockPool).Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := newExchangeRateRepository(mockPool).Upsert(ctx, tx, fixRate("01JA", "USD", "20.5")); !errors.Is(err, upsertErr) {
		t.Fatalf("expected upsert error, got %v", err)
	}
	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestTxManager_BeginError(t *testing.T) {
	mockPool := newMockPool(t)
	mockErr := errors.New("too many connections")
	mockPool.ExpectBegin().WillReturnError(mockErr)

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if !errors.Is(err, mockErr) {
		t.Fatalf("expected begin error, got err=%v tx=%v", err, tx)
	}
}

type foreignTx struct{}

func (foreignTx) Commit(context.Context) error   { return nil }
func (foreignTx) Rollback(context.Context) error { return nil }

func TestExchangeRateRepository_UpsertRejectsForeignTransaction(t *testing.T) {
	mockPool := newMockPool(t)

	err := newExchangeRateRepository(mockPool).Upsert(context.Background(), foreignTx{}, fixRate("01JA", "USD", "20.5"))
	if !errors.Is(err, ErrForeignTransaction) {
		t.Fatalf("expected ErrForeignTransaction, got %v", err)
	}
	assertExpectations(t, mockPool)
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
