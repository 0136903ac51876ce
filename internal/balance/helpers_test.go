package balance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/gotrialbalance/internal/domain"
)

func testChart() *domain.AccountsChart {
	return &domain.AccountsChart{
		UID:          "IFRS",
		Name:         "IFRS test chart",
		BaseCurrency: "MXN",
		Accounts: []*domain.ChartAccount{
			{Number: "1", Name: "Activo", Nature: domain.NatureDebtor, Role: domain.RoleSummary, Type: "Activo"},
			{Number: "1.01", Name: "Disponibilidades", Nature: domain.NatureDebtor, Role: domain.RoleSummary},
			{Number: "1.01.01", Name: "Caja", Nature: domain.NatureDebtor, Role: domain.RolePosting},
			{Number: "1.01.02", Name: "Bancos", Nature: domain.NatureDebtor, Role: domain.RolePosting},
			{Number: "1.02", Name: "Cartera", Nature: domain.NatureDebtor, Role: domain.RoleSummary},
			{Number: "1.02.01", Name: "Creditos comerciales", Nature: domain.NatureDebtor, Role: domain.RoleSectorized},
			{Number: "2", Name: "Pasivo", Nature: domain.NatureCreditor, Role: domain.RoleSummary, Type: "Pasivo"},
			{Number: "2.01", Name: "Captacion", Nature: domain.NatureCreditor, Role: domain.RoleSummary},
			{Number: "2.01.01", Name: "Depositos a la vista", Nature: domain.NatureCreditor, Role: domain.RolePosting},
			{Number: "2.01.02", Name: "Acreedores diversos", Nature: domain.NatureCreditor, Role: domain.RolePosting},
			{Number: "4", Name: "Capital", Nature: domain.NatureCreditor, Role: domain.RoleSummary, Type: "Capital"},
			{Number: "4.01", Name: "Capital social", Nature: domain.NatureCreditor, Role: domain.RolePosting},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func january() domain.DateRange {
	return domain.NewDateRange(day(2025, time.January, 1), day(2025, time.January, 31))
}

func query(t domain.BalanceType) domain.BalanceQuery {
	return domain.BalanceQuery{
		AccountsChart: "IFRS",
		BalanceType:   t,
		Period:        january(),
	}
}

func posting(account, currency, initial, debit, credit string) domain.PostingEntry {
	return domain.PostingEntry{
		LastChangeDate: day(2025, time.January, 15),
		AccountNumber:  account,
		CurrencyCode:   currency,
		InitialBalance: decimal.RequireFromString(initial),
		Debit:          decimal.RequireFromString(debit),
		Credit:         decimal.RequireFromString(credit),
	}
}

func staticPostings(entries ...domain.PostingEntry) PostingSource {
	return PostingSourceFunc(func(context.Context, domain.BalanceQuery) ([]domain.PostingEntry, error) {
		return entries, nil
	})
}

// rateTable answers rates keyed by "FROM|TO|DATE|TYPE".
type rateTable struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal
	calls int
}

func newRateTable() *rateTable {
	return &rateTable{rates: make(map[string]decimal.Decimal)}
}

func (r *rateTable) set(from, to string, date time.Time, rateType, value string) *rateTable {
	r.rates[rateKeyString(from, to, date, rateType)] = decimal.RequireFromString(value)
	return r
}

func (r *rateTable) FetchExchangeRate(_ context.Context, from, to string, date time.Time, rateType string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	rate, ok := r.rates[rateKeyString(from, to, date, rateType)]
	if !ok {
		return decimal.Zero, &domain.MissingExchangeRateError{FromCurrency: from, ToCurrency: to, Date: date, RateType: rateType}
	}
	return rate, nil
}

func rateKeyString(from, to string, date time.Time, rateType string) string {
	return strings.Join([]string{from, to, date.Format(domain.DateLayout), rateType}, "|")
}

func compute(t *testing.T, q domain.BalanceQuery, rates RateProvider, entries ...domain.PostingEntry) *TrialBalance {
	t.Helper()
	engine := NewEngine(Config{}, nil)
	tb, err := engine.Compute(context.Background(), Request{
		Query:    q,
		Chart:    testChart(),
		Postings: staticPostings(entries...),
		Rates:    rates,
	})
	require.NoError(t, err)
	return tb
}

// findRow returns the first output row matching the item type, account,
// sector and currency. Empty sector or currency match anything.
func findRow(tb *TrialBalance, itemType domain.ItemType, account, sector, currency string) *domain.BalanceEntry {
	for _, e := range tb.Entries {
		if e.ItemType != itemType || e.AccountNumber != account || e.IsLedgerBreakdown {
			continue
		}
		if sector != "" && e.SectorCode != sector {
			continue
		}
		if currency != "" && e.CurrencyCode != currency {
			continue
		}
		return e
	}
	return nil
}

func requireAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s %v", want, got, fmt.Sprint(msgAndArgs...))
}

// render serializes the output so two runs can be compared byte for byte.
func render(tb *TrialBalance) string {
	var b strings.Builder
	for _, e := range tb.Entries {
		fmt.Fprintf(&b, "%s|%s|%s|%s|%s|%s|%t|%s|%s|%s|%s|%s|%s\n",
			e.ItemType, e.AccountNumber, e.SectorCode, e.CurrencyCode, e.SubledgerAccount, e.LedgerUID,
			e.IsLedgerBreakdown, e.InitialBalance.StringFixed(2), e.Debit.StringFixed(2), e.Credit.StringFixed(2),
			e.CurrentBalance.StringFixed(2), e.ValuedBalance.StringFixed(2), e.ExchangeRate.StringFixed(6))
	}
	return b.String()
}

type recordingObserver struct {
	mu     sync.Mutex
	stages []Stage
}

func (o *recordingObserver) ObserveStage(_ context.Context, stage Stage, _ time.Duration, _ int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stages = append(o.stages, stage)
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
