package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gotrialbalance/internal/domain"
)

func ledgerPosting(ledger, account, debit, credit string) domain.PostingEntry {
	p := posting(account, "MXN", "0", debit, credit)
	p.LedgerUID = ledger
	return p
}

func TestCascade_AccountInOneLedgerOnly(t *testing.T) {
	tb := compute(t, query(domain.BalanceTypeCascadeTrialBalance), nil,
		ledgerPosting("A", "1.01.01", "10", "0"),
		ledgerPosting("B", "2.01.01", "0", "5"),
	)

	agg := findRow(tb, domain.ItemTypeEntry, "1.01.01", "", "MXN")
	require.NotNil(t, agg)
	assert.Empty(t, agg.LedgerUID)
	requireAmount(t, "10", agg.CurrentBalance)

	summary := findRow(tb, domain.ItemTypeSummary, "1.01", "", "MXN")
	require.NotNil(t, summary)
	requireAmount(t, "10", summary.CurrentBalance)
	assert.Empty(t, summary.LedgerUID)

	var breakdowns []*domain.BalanceEntry
	for _, e := range tb.Entries {
		if e.IsLedgerBreakdown && e.AccountNumber == "1.01.01" {
			breakdowns = append(breakdowns, e)
		}
	}
	require.Len(t, breakdowns, 1)
	assert.Equal(t, "A", breakdowns[0].LedgerUID)
}

func TestCascade_MergesLedgers(t *testing.T) {
	tb := compute(t, query(domain.BalanceTypeCascadeTrialBalance), nil,
		ledgerPosting("B", "1.01.02", "30", "0"),
		ledgerPosting("A", "1.01.02", "20", "0"),
		ledgerPosting("A", "1.01.01", "5", "0"),
	)

	var order []string
	for _, e := range tb.Filter(domain.ItemTypeEntry) {
		order = append(order, e.AccountNumber+"/"+e.LedgerUID)
	}
	assert.Equal(t, []string{"1.01.01/", "1.01.01/A", "1.01.02/", "1.01.02/A", "1.01.02/B"}, order)

	requireAmount(t, "50", findRow(tb, domain.ItemTypeEntry, "1.01.02", "", "MXN").CurrentBalance)
	requireAmount(t, "55", findRow(tb, domain.ItemTypeSummary, "1", "", "MXN").CurrentBalance)
	require.Len(t, tb.Filter(domain.ItemTypeSummary), 2, "summaries are ledger agnostic")

	requireAmount(t, "55", tb.Consolidated().CurrentBalance, "breakdown rows must not be counted twice")
}

func TestCascadeCombiner_Combine(t *testing.T) {
	row := func(itemType domain.ItemType, account, amount string) *domain.BalanceEntry {
		e := &domain.BalanceEntry{
			ItemType:      itemType,
			AccountNumber: account,
			Nature:        domain.NatureDebtor,
			CurrencyCode:  "MXN",
			SectorCode:    domain.NoSector,
			Debit:         mustDecimal(amount),
		}
		e.Recalculate()
		return e
	}

	combined := NewCascadeCombiner(".").Combine([]LedgerBalances{
		{LedgerUID: "B", Entries: []*domain.BalanceEntry{row(domain.ItemTypeEntry, "1.01", "7"), row(domain.ItemTypeSummary, "1", "7")}},
		{LedgerUID: "A", Entries: []*domain.BalanceEntry{row(domain.ItemTypeSummary, "1", "3"), row(domain.ItemTypeEntry, "1.02", "3")}},
	})

	var summaries int
	for _, e := range combined {
		if e.ItemType == domain.ItemTypeSummary {
			summaries++
			requireAmount(t, "10", e.CurrentBalance)
			assert.False(t, e.IsLedgerBreakdown)
		}
	}
	assert.Equal(t, 1, summaries)
	assert.Len(t, combined, 5)
}
