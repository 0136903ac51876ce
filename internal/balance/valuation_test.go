package balance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gotrialbalance/internal/domain"
)

func valuedQuery() domain.BalanceQuery {
	q := query(domain.BalanceTypeTrialBalance)
	q.ValuateBalances = true
	q.ExchangeRateType = "FIX"
	return q
}

func TestValuator_RoundTrip(t *testing.T) {
	rates := newRateTable().set("USD", "MXN", day(2025, time.January, 31), "FIX", "17.5")
	v := NewValuator(rates, valuedQuery(), "MXN")

	entry := &domain.BalanceEntry{CurrencyCode: "USD", Nature: domain.NatureDebtor, CurrentBalance: decimal.NewFromInt(100)}
	valued, err := v.Valuate(context.Background(), entry, day(2025, time.January, 31), "MXN")
	require.NoError(t, err)
	requireAmount(t, "1750", valued.Balance)
	requireAmount(t, "17.5", valued.Rate)

	back := Devaluate(valued.Balance, valued.Rate)
	assert.True(t, back.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(decimal.New(1, -2)), "round trip gave %s", back)
}

func TestValuator_SameCurrencySkipsProvider(t *testing.T) {
	rates := newRateTable()
	v := NewValuator(rates, valuedQuery(), "MXN")

	entry := &domain.BalanceEntry{CurrencyCode: "MXN", CurrentBalance: decimal.NewFromInt(42)}
	valued, err := v.Valuate(context.Background(), entry, day(2025, time.January, 31), "MXN")
	require.NoError(t, err)
	requireAmount(t, "42", valued.Balance)
	assert.Zero(t, rates.calls)
}

func TestValuator_MissingRateNeverDefaults(t *testing.T) {
	v := NewValuator(newRateTable(), valuedQuery(), "MXN")

	entry := &domain.BalanceEntry{CurrencyCode: "USD", CurrentBalance: decimal.NewFromInt(100)}
	_, err := v.Valuate(context.Background(), entry, day(2025, time.January, 31), "MXN")

	var missing *domain.MissingExchangeRateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "USD", missing.FromCurrency)
	assert.Equal(t, "MXN", missing.ToCurrency)
	assert.Equal(t, "FIX", missing.RateType)
}

func TestValuator_MemoisesRates(t *testing.T) {
	rates := newRateTable().set("USD", "MXN", day(2025, time.January, 31), "FIX", "17.5")
	v := NewValuator(rates, valuedQuery(), "MXN")

	for i := 0; i < 5; i++ {
		_, err := v.RateAt(context.Background(), "USD", day(2025, time.January, 31))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, rates.calls)
}

func TestValuator_ValuedEffect(t *testing.T) {
	rates := newRateTable().
		set("USD", "MXN", day(2025, time.January, 31), "FIX", "18").
		set("USD", "MXN", day(2024, time.December, 31), "FIX", "17")
	q := valuedQuery()
	q.ReportValuedEffect = true
	v := NewValuator(rates, q, "MXN")

	entry := &domain.BalanceEntry{CurrencyCode: "USD", CurrentBalance: decimal.NewFromInt(100)}
	valued, err := v.Valuate(context.Background(), entry, day(2025, time.January, 31), "MXN")
	require.NoError(t, err)
	requireAmount(t, "17", valued.SecondRate)
	requireAmount(t, "100", valued.Effect)
}

func TestValuator_DefaultValuationUsesOfficialRate(t *testing.T) {
	rates := newRateTable().set("USD", "MXN", day(2025, time.January, 31), domain.DefaultRateType, "20")
	q := valuedQuery()
	q.ExchangeRateType = "BANXICO"
	q.ExchangeRateDate = day(2025, time.January, 10)
	q.UseDefaultValuation = true

	tb := compute(t, q, rates, posting("1.01.01", "USD", "0", "10", "0"))
	entry := findRow(tb, domain.ItemTypeEntry, "1.01.01", "", "USD")
	requireAmount(t, "200", entry.ValuedBalance)
}

func TestEngine_ValuationMissingRatePropagates(t *testing.T) {
	_, err := NewEngine(Config{}, nil).Compute(context.Background(), Request{
		Query:    valuedQuery(),
		Chart:    testChart(),
		Postings: staticPostings(posting("1.01.01", "USD", "0", "10", "0")),
		Rates:    newRateTable(),
	})
	require.ErrorIs(t, err, domain.ErrMissingExchangeRate)
}

func TestEngine_ValuationReconciles(t *testing.T) {
	rates := newRateTable().set("USD", "MXN", day(2025, time.January, 31), "FIX", "17.123456")

	tb := compute(t, valuedQuery(), rates,
		posting("1.01.01", "USD", "0", "100.01", "0"),
		posting("1.01.02", "MXN", "0", "200", "0"),
		posting("2.01.01", "USD", "0", "0", "33.33"),
	)

	assert.Equal(t, "MXN", tb.TargetCurrency)
	usd := findRow(tb, domain.ItemTypeEntry, "1.01.01", "", "USD")
	assert.True(t, usd.Valuated)
	requireAmount(t, "17.123456", usd.ExchangeRate)
	requireAmount(t, "1712.52", usd.ValuedBalance)
	requireAmount(t, "1712.52", usd.ForeignBalance)

	mxn := findRow(tb, domain.ItemTypeEntry, "1.01.02", "", "MXN")
	requireAmount(t, "200", mxn.DomesticBalance)

	assert.True(t, tb.Reconciliation.LeafTotal.Equal(tb.Consolidated().ValuedBalance))
	consolidated := tb.Totals.Debtor.ValuedBalance.Sub(tb.Totals.Creditor.ValuedBalance)
	assert.True(t, consolidated.Equal(tb.Consolidated().ValuedBalance))
}

func TestEngine_ConsolidateToTargetCurrency(t *testing.T) {
	rates := newRateTable().set("USD", "MXN", day(2025, time.January, 31), "FIX", "20")
	q := valuedQuery()
	q.ConsolidateBalancesToTargetCurrency = true

	tb := compute(t, q, rates,
		posting("1.01.01", "USD", "0", "10", "0"),
		posting("1.01.01", "MXN", "0", "50", "0"),
	)

	entries := tb.Filter(domain.ItemTypeEntry)
	require.Len(t, entries, 1)
	merged := entries[0]
	assert.Equal(t, "MXN", merged.CurrencyCode)
	requireAmount(t, "250", merged.Debit)
	requireAmount(t, "250", merged.CurrentBalance)
	requireAmount(t, "250", merged.ValuedBalance)
	requireAmount(t, "50", merged.DomesticBalance)
	requireAmount(t, "200", merged.ForeignBalance)
	assert.True(t, merged.ExchangeRate.IsZero(), "merged currencies carry no single rate")

	require.Len(t, tb.Totals.Currencies, 1)
	requireAmount(t, "250", tb.Consolidated().ValuedBalance)
}
