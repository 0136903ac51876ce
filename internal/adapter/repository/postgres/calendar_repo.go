package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/postgres/generated"
)

// CalendarRepository implements usecase.CalendarRepository.
type CalendarRepository struct {
	queries *generated.Queries
}

// NewCalendarRepository creates a new CalendarRepository.
func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return newCalendarRepository(pool)
}

func newCalendarRepository(db generated.DBTX) *CalendarRepository {
	return &CalendarRepository{queries: generated.New(db)}
}

// FetchCalendarOpenPeriods returns the open periods of a chart, oldest first.
func (r *CalendarRepository) FetchCalendarOpenPeriods(ctx context.Context, chartUID string) ([]domain.DateRange, error) {
	rows, err := r.queries.ListOpenCalendarPeriods(ctx, chartUID)
	if err != nil {
		return nil, err
	}

	periods := make([]domain.DateRange, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, domain.NewDateRange(pgDateToTime(row.FromDate), pgDateToTime(row.ToDate)))
	}

	return periods, nil
}
