package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/postgres/generated"
	"github.com/iho/gotrialbalance/internal/usecase"
)

// ExchangeRateRepository implements usecase.ExchangeRateRepository.
type ExchangeRateRepository struct {
	queries *generated.Queries
}

// NewExchangeRateRepository creates a new ExchangeRateRepository.
func NewExchangeRateRepository(pool *pgxpool.Pool) *ExchangeRateRepository {
	return newExchangeRateRepository(pool)
}

func newExchangeRateRepository(db generated.DBTX) *ExchangeRateRepository {
	return &ExchangeRateRepository{queries: generated.New(db)}
}

// ListByDate returns the rate table of a type on a date.
func (r *ExchangeRateRepository) ListByDate(ctx context.Context, rateType string, date time.Time) ([]*domain.ExchangeRate, error) {
	rows, err := r.queries.ListExchangeRatesByDate(ctx, generated.ListExchangeRatesByDateParams{
		RateType: rateType,
		RateDate: timeToPgDate(date),
	})
	if err != nil {
		return nil, err
	}

	rates := make([]*domain.ExchangeRate, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, rowToExchangeRate(row))
	}

	return rates, nil
}

// Upsert inserts a rate or replaces the value of the same type, date and pair.
func (r *ExchangeRateRepository) Upsert(ctx context.Context, tx usecase.Transaction, rate *domain.ExchangeRate) error {
	queries, err := queriesFor(tx)
	if err != nil {
		return err
	}

	return queries.UpsertExchangeRate(ctx, generated.UpsertExchangeRateParams{
		Uid:          rate.UID,
		RateType:     rate.RateType,
		RateDate:     timeToPgDate(rate.Date),
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Value:        decimalToNumeric(rate.Value),
		UpdatedAt:    timeToPgTimestamptz(rate.UpdatedAt),
	})
}

func rowToExchangeRate(row generated.ExchangeRate) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		Date:         pgDateToTime(row.RateDate),
		UID:          row.Uid,
		RateType:     row.RateType,
		FromCurrency: domain.NormalizeCurrency(row.FromCurrency),
		ToCurrency:   domain.NormalizeCurrency(row.ToCurrency),
		Value:        numericToDecimal(row.Value),
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
