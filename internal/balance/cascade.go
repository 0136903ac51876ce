package balance

import (
	"sort"

	"github.com/iho/gotrialbalance/internal/domain"
)

// LedgerBalances is the balance computed for one ledger.
type LedgerBalances struct {
	LedgerUID string
	Entries   []*domain.BalanceEntry
}

// CascadeCombiner merges per-ledger balances into one ledger-agnostic view.
// Entry rows are followed by their per-ledger breakdown; summary rows are
// summed across ledgers.
type CascadeCombiner struct {
	delimiter string
}

// NewCascadeCombiner creates a combiner for a chart delimiter.
func NewCascadeCombiner(delimiter string) *CascadeCombiner {
	return &CascadeCombiner{delimiter: delimiter}
}

// Combine merges the ledgers. An account missing in a ledger contributes zero.
func (c *CascadeCombiner) Combine(ledgers []LedgerBalances) []*domain.BalanceEntry {
	sorted := append([]LedgerBalances(nil), ledgers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].LedgerUID < sorted[j].LedgerUID })

	aggregates := make(map[entryKey]*domain.BalanceEntry)
	out := make([]*domain.BalanceEntry, 0)

	for _, ledger := range sorted {
		for _, row := range ledger.Entries {
			agg := blankFrom(row)
			agg.LedgerUID = ""
			agg.IsLedgerBreakdown = false
			key := keyOf(agg)

			existing, ok := aggregates[key]
			if !ok {
				existing = agg
				aggregates[key] = agg
				out = append(out, agg)
			}
			existing.IsParentPostingEntry = existing.IsParentPostingEntry || row.IsParentPostingEntry
			existing.HasParentPostingEntry = existing.HasParentPostingEntry || row.HasParentPostingEntry
			existing.Accumulate(row)

			if row.ItemType == domain.ItemTypeEntry {
				breakdown := row.Clone()
				breakdown.LedgerUID = ledger.LedgerUID
				breakdown.IsLedgerBreakdown = true
				out = append(out, breakdown)
			}
		}
	}

	sortRows(out, c.delimiter)
	return out
}

// splitByLedger partitions rows by ledger uid, preserving order.
func splitByLedger(rows []*domain.BalanceEntry) ([]string, map[string][]*domain.BalanceEntry) {
	byLedger := make(map[string][]*domain.BalanceEntry)
	var ledgers []string
	for _, row := range rows {
		if _, ok := byLedger[row.LedgerUID]; !ok {
			ledgers = append(ledgers, row.LedgerUID)
		}
		byLedger[row.LedgerUID] = append(byLedger[row.LedgerUID], row)
	}
	sort.Strings(ledgers)
	return ledgers, byLedger
}
