package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/postgres/generated"
)

// AccountsChartRepository implements usecase.AccountsChartRepository.
type AccountsChartRepository struct {
	queries *generated.Queries
}

// NewAccountsChartRepository creates a new AccountsChartRepository.
func NewAccountsChartRepository(pool *pgxpool.Pool) *AccountsChartRepository {
	return newAccountsChartRepository(pool)
}

func newAccountsChartRepository(db generated.DBTX) *AccountsChartRepository {
	return &AccountsChartRepository{queries: generated.New(db)}
}

// GetChart loads a chart with all of its accounts.
func (r *AccountsChartRepository) GetChart(ctx context.Context, uid string) (*domain.AccountsChart, error) {
	row, err := r.queries.GetAccountsChart(ctx, uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrChartNotFound, uid)
		}

		return nil, err
	}

	accounts, err := r.queries.ListChartAccounts(ctx, uid)
	if err != nil {
		return nil, err
	}

	chart := &domain.AccountsChart{
		UID:          row.Uid,
		Name:         row.Name,
		Delimiter:    row.Delimiter,
		BaseCurrency: domain.NormalizeCurrency(row.BaseCurrency),
		Accounts:     make([]*domain.ChartAccount, 0, len(accounts)),
	}
	for _, acc := range accounts {
		chart.Accounts = append(chart.Accounts, &domain.ChartAccount{
			Number: acc.Number,
			Name:   acc.Name,
			Nature: domain.AccountNature(acc.Nature),
			Role:   domain.AccountRole(acc.Role),
			Type:   acc.AccountType,
		})
	}

	return chart, nil
}
