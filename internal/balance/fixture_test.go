package balance

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gotrialbalance/internal/domain"
)

// fixtureChart builds five top-level groups with three summaries each and
// four posting accounts under every summary.
func fixtureChart() *domain.AccountsChart {
	natures := map[int]domain.AccountNature{
		1: domain.NatureDebtor,
		2: domain.NatureCreditor,
		3: domain.NatureCreditor,
		4: domain.NatureCreditor,
		5: domain.NatureDebtor,
	}
	chart := &domain.AccountsChart{UID: "IFRS-FIXTURE", Name: "fixture", BaseCurrency: "MXN"}
	for g := 1; g <= 5; g++ {
		top := fmt.Sprintf("%d", g)
		chart.Accounts = append(chart.Accounts, &domain.ChartAccount{
			Number: top, Name: "Grupo " + top, Nature: natures[g], Role: domain.RoleSummary, Type: "G" + top,
		})
		for s := 1; s <= 3; s++ {
			mid := fmt.Sprintf("%s.%02d", top, s)
			chart.Accounts = append(chart.Accounts, &domain.ChartAccount{
				Number: mid, Name: "Rubro " + mid, Nature: natures[g], Role: domain.RoleSummary,
			})
			for p := 1; p <= 4; p++ {
				chart.Accounts = append(chart.Accounts, &domain.ChartAccount{
					Number: fmt.Sprintf("%s.%02d", mid, p), Name: "Cuenta", Nature: natures[g], Role: domain.RolePosting,
				})
			}
		}
	}
	return chart
}

func fixturePostings(chart *domain.AccountsChart, n int) []domain.PostingEntry {
	var accounts []*domain.ChartAccount
	for _, acc := range chart.Accounts {
		if acc.Role == domain.RolePosting {
			accounts = append(accounts, acc)
		}
	}

	rng := rand.New(rand.NewSource(20250131))
	amount := func() decimal.Decimal { return decimal.New(int64(rng.Intn(10_000_000)), -2) }

	out := make([]domain.PostingEntry, 0, n)
	for i := 0; i < n; i++ {
		currency := "MXN"
		if rng.Intn(5) == 0 {
			currency = "USD"
		}
		out = append(out, domain.PostingEntry{
			LastChangeDate: day(2025, time.January, 1+rng.Intn(31)),
			AccountNumber:  accounts[rng.Intn(len(accounts))].Number,
			CurrencyCode:   currency,
			InitialBalance: amount(),
			Debit:          amount(),
			Credit:         amount(),
		})
	}
	return out
}

func TestFixture_ValuedIFRSBalance(t *testing.T) {
	chart := fixtureChart()
	postings := fixturePostings(chart, 600)
	rate := decimal.RequireFromString("17.2345")
	rates := newRateTable().set("USD", "MXN", day(2025, time.January, 31), "FIX", rate.String())

	q := query(domain.BalanceTypeTrialBalance)
	q.AccountsChart = chart.UID
	q.ValuateBalances = true

	tb, err := NewEngine(Config{MaxParallel: 4}, nil).Compute(context.Background(), Request{
		Query:    q,
		Chart:    chart,
		Postings: staticPostings(postings...),
		Rates:    rates,
	})
	require.NoError(t, err)

	// Reference totals computed independently of the engine.
	type leafKey struct{ account, currency string }
	natures := make(map[string]domain.AccountNature)
	for _, acc := range chart.Accounts {
		natures[acc.Number] = acc.Nature
	}
	sums := make(map[leafKey][3]decimal.Decimal)
	for _, p := range postings {
		k := leafKey{p.AccountNumber, p.CurrencyCode}
		s := sums[k]
		s[0], s[1], s[2] = s[0].Add(p.InitialBalance), s[1].Add(p.Debit), s[2].Add(p.Credit)
		sums[k] = s
	}
	debtor, creditor := decimal.Zero, decimal.Zero
	for k, s := range sums {
		nature := natures[k.account]
		bal := s[0].Add(s[1]).Sub(s[2])
		if nature == domain.NatureCreditor {
			bal = s[0].Add(s[2]).Sub(s[1])
		}
		valued := bal
		if k.currency == "USD" {
			valued = bal.Mul(rate)
		}
		valued = valued.Round(2)
		if nature == domain.NatureCreditor {
			creditor = creditor.Add(valued)
		} else {
			debtor = debtor.Add(valued)
		}
	}

	assert.Len(t, tb.Filter(domain.ItemTypeEntry), len(sums))
	withinOne := func(name string, want, got decimal.Decimal) {
		t.Helper()
		assert.True(t, want.Sub(got).Abs().LessThanOrEqual(decimal.NewFromInt(1)), "%s: want %s, got %s", name, want, got)
	}
	withinOne("debtor", debtor, tb.Totals.Debtor.ValuedBalance)
	withinOne("creditor", creditor, tb.Totals.Creditor.ValuedBalance)
	withinOne("consolidated", debtor.Sub(creditor), tb.Consolidated().ValuedBalance)
	assert.True(t, tb.Reconciliation.Difference.Abs().LessThanOrEqual(DefaultTolerance))

	// Every group total matches its top-level summaries across currencies.
	for _, group := range tb.Totals.Groups {
		summary := findRow(tb, domain.ItemTypeSummary, group.AccountNumber, domain.NoSector, group.CurrencyCode)
		require.NotNil(t, summary, group.AccountNumber)
		withinOne("group "+group.AccountNumber, group.ValuedBalance, summary.ValuedBalance)
	}

	again, err := NewEngine(Config{MaxParallel: 1}, nil).Compute(context.Background(), Request{
		Query:    q,
		Chart:    chart,
		Postings: staticPostings(postings...),
		Rates:    rates,
	})
	require.NoError(t, err)
	assert.Equal(t, render(tb), render(again))
}

func TestFixture_CascadeMatchesSingleLedger(t *testing.T) {
	chart := fixtureChart()
	postings := fixturePostings(chart, 500)
	for i := range postings {
		postings[i].LedgerUID = fmt.Sprintf("L%d", i%3)
	}

	single := query(domain.BalanceTypeTrialBalance)
	single.AccountsChart = chart.UID
	cascade := single
	cascade.BalanceType = domain.BalanceTypeCascadeTrialBalance

	run := func(q domain.BalanceQuery) *TrialBalance {
		tb, err := NewEngine(Config{MaxParallel: 2}, nil).Compute(context.Background(), Request{
			Query: q, Chart: chart, Postings: staticPostings(postings...),
		})
		require.NoError(t, err)
		return tb
	}
	a, b := run(single), run(cascade)

	requireAmount(t, a.Consolidated().CurrentBalance.String(), b.Consolidated().CurrentBalance)
	for _, s := range a.Filter(domain.ItemTypeSummary) {
		other := findRow(b, domain.ItemTypeSummary, s.AccountNumber, s.SectorCode, s.CurrencyCode)
		require.NotNil(t, other, s.AccountNumber)
		requireAmount(t, s.CurrentBalance.String(), other.CurrentBalance, s.AccountNumber)
	}
}
