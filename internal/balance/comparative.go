package balance

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
)

// ComparativeStrategy puts the balance of the comparison period next to the
// balance of the period, with the variation between both.
type ComparativeStrategy struct{ baseStrategy }

type compareKey struct {
	entryKey
	nature domain.AccountNature
	group  string
}

func compareKeyOf(e *domain.BalanceEntry) compareKey {
	return compareKey{entryKey: keyOf(e), nature: e.Nature, group: e.GroupNumber}
}

// Compare annotates every row of current with the matching row of previous.
// Account rows only present in previous are added with zero balances so the
// variation of closed accounts is still reported.
func (ComparativeStrategy) Compare(current, previous *TrialBalance) (*TrialBalance, error) {
	prev := make(map[compareKey]*domain.BalanceEntry, len(previous.Entries))
	for _, e := range previous.Entries {
		prev[compareKeyOf(e)] = e
	}

	seen := make(map[compareKey]bool, len(current.Entries))
	var entries, summaries, totals []*domain.BalanceEntry

	for _, e := range current.Entries {
		key := compareKeyOf(e)
		seen[key] = true

		comparison := decimal.Zero
		if p, ok := prev[key]; ok {
			comparison = p.ReportingBalance()
		}
		e.ComparisonBalance = comparison
		e.Variation = e.ReportingBalance().Sub(comparison)

		switch {
		case e.ItemType == domain.ItemTypeSummary:
			summaries = append(summaries, e)
		case e.ItemType.IsTotal():
			totals = append(totals, e)
		default:
			entries = append(entries, e)
		}
	}

	for _, p := range previous.Entries {
		if p.ItemType.IsTotal() || seen[compareKeyOf(p)] {
			continue
		}
		closed := blankFrom(p)
		closed.Valuated = p.Valuated
		closed.ComparisonBalance = p.ReportingBalance()
		closed.Variation = closed.ComparisonBalance.Neg()
		if closed.ItemType == domain.ItemTypeSummary {
			summaries = append(summaries, closed)
		} else {
			entries = append(entries, closed)
		}
	}

	sortRows(entries, current.delimiter)
	sortRows(summaries, current.delimiter)

	out := *current
	out.Entries = make([]*domain.BalanceEntry, 0, len(entries)+len(summaries)+len(totals))
	out.Entries = append(out.Entries, entries...)
	out.Entries = append(out.Entries, summaries...)
	out.Entries = append(out.Entries, totals...)
	return &out, nil
}
