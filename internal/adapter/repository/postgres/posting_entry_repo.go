package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/metrics"
	"github.com/iho/gotrialbalance/internal/infrastructure/postgres/generated"
)

// PostingEntryRepository implements usecase.PostingEntrySource.
type PostingEntryRepository struct {
	queries *generated.Queries
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewPostingEntryRepository creates a new PostingEntryRepository.
func NewPostingEntryRepository(pool *pgxpool.Pool, retrier *Retrier, m *metrics.Metrics) *PostingEntryRepository {
	return newPostingEntryRepository(pool, retrier, m)
}

func newPostingEntryRepository(db generated.DBTX, retrier *Retrier, m *metrics.Metrics) *PostingEntryRepository {
	return &PostingEntryRepository{
		queries: generated.New(db),
		retrier: retrier,
		metrics: m,
	}
}

// FetchPostingEntries returns the posting entries of the query's chart and
// period, aggregated per ledger, account, sector, currency and subledger
// account. Movements dated before the period are folded into the initial
// balance. Ledger and currency filters are applied in the database; the
// account range is left to the engine.
func (r *PostingEntryRepository) FetchPostingEntries(ctx context.Context, query domain.BalanceQuery) ([]domain.PostingEntry, error) {
	params := generated.ListPostingEntriesParams{
		ChartUid:   query.AccountsChart,
		FromDate:   timeToPgDate(query.Period.From),
		ToDate:     timeToPgDate(query.Period.To),
		Ledgers:    nonNil(query.Ledgers),
		Currencies: normalizeCurrencies(query.Currencies),
	}

	var rows []generated.ListPostingEntriesRow
	fetch := func() error {
		start := time.Now()
		var err error
		rows, err = r.queries.ListPostingEntries(ctx, params)
		observeQuery(r.metrics, "list", "posting_entries", start, err)
		return err
	}

	var err error
	if r.retrier != nil {
		err = r.retrier.Retry(ctx, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}

	entries := make([]domain.PostingEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToPostingEntry(row))
	}

	return entries, nil
}

func rowToPostingEntry(row generated.ListPostingEntriesRow) domain.PostingEntry {
	return domain.PostingEntry{
		LastChangeDate:   row.LastChangeDate.Time,
		AccountNumber:    row.AccountNumber,
		SectorCode:       row.SectorCode,
		CurrencyCode:     domain.NormalizeCurrency(row.CurrencyCode),
		SubledgerAccount: row.SubledgerAccount,
		LedgerUID:        row.LedgerUid,
		InitialBalance:   numericToDecimal(row.InitialBalance),
		Debit:            numericToDecimal(row.Debit),
		Credit:           numericToDecimal(row.Credit),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func normalizeCurrencies(currencies []string) []string {
	out := make([]string, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, domain.NormalizeCurrency(c))
	}
	return out
}
