package balance

import (
	"github.com/iho/gotrialbalance/internal/domain"
)

// summarize rolls every leaf row into one Summary row per ancestor account,
// sector, currency and ledger.
func summarize(tree *AccountTree, rows []*domain.BalanceEntry) ([]*domain.BalanceEntry, error) {
	summaries := make(map[entryKey]*domain.BalanceEntry)
	order := make([]*domain.BalanceEntry, 0)

	for _, leaf := range rows {
		if !isLeaf(leaf) {
			continue
		}
		ancestors, err := tree.Ancestors(leaf.AccountNumber)
		if err != nil {
			return nil, err
		}
		for _, anc := range ancestors {
			summary := accountRow(tree, anc, domain.ItemTypeSummary)
			summary.SectorCode = leaf.SectorCode
			summary.CurrencyCode = leaf.CurrencyCode
			summary.LedgerUID = leaf.LedgerUID

			key := keyOf(summary)
			existing, ok := summaries[key]
			if !ok {
				existing = summary
				summaries[key] = summary
				order = append(order, summary)
			}
			existing.Accumulate(leaf)
		}
	}

	sortRows(order, tree.Delimiter())
	return order, nil
}

// sectorize adds, for every summary account with sector detail, a
// sector-agnostic row under NoSector holding the sum over all its sectors.
func sectorize(query domain.BalanceQuery, summaries []*domain.BalanceEntry, delimiter string) []*domain.BalanceEntry {
	if !query.WithSectorization {
		return summaries
	}

	type groupKey struct {
		account  string
		currency string
		ledger   string
	}

	groups := make(map[groupKey][]*domain.BalanceEntry)
	for _, s := range summaries {
		k := groupKey{account: s.AccountNumber, currency: s.CurrencyCode, ledger: s.LedgerUID}
		groups[k] = append(groups[k], s)
	}

	out := make([]*domain.BalanceEntry, 0, len(summaries))
	for _, members := range groups {
		detailed := false
		for _, m := range members {
			if m.SectorCode != domain.NoSector {
				detailed = true
				break
			}
		}
		if !detailed {
			out = append(out, members...)
			continue
		}

		agnostic := blankFrom(members[0])
		agnostic.SectorCode = domain.NoSector
		for _, m := range members {
			agnostic.Accumulate(m)
			if m.SectorCode != domain.NoSector {
				out = append(out, m)
			}
		}
		out = append(out, agnostic)
	}

	sortRows(out, delimiter)
	return out
}
