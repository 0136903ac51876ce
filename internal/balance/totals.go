package balance

import (
	"sort"

	"github.com/iho/gotrialbalance/internal/domain"
)

// Totals holds the report-level total rows.
type Totals struct {
	Sectors      []*domain.BalanceEntry
	Groups       []*domain.BalanceEntry
	Debtor       *domain.BalanceEntry
	Creditor     *domain.BalanceEntry
	Currencies   []*domain.BalanceEntry
	Consolidated *domain.BalanceEntry
}

// Rows returns the totals in report order.
func (t *Totals) Rows() []*domain.BalanceEntry {
	out := make([]*domain.BalanceEntry, 0, len(t.Sectors)+len(t.Groups)+len(t.Currencies)+3)
	out = append(out, t.Sectors...)
	out = append(out, t.Groups...)
	out = append(out, t.Debtor, t.Creditor)
	out = append(out, t.Currencies...)
	out = append(out, t.Consolidated)
	return out
}

// buildTotals accumulates the leaf rows into sector, group, debtor/creditor,
// currency and consolidated totals. Sector, currency and consolidated totals
// use the debtor-positive convention.
func buildTotals(query domain.BalanceQuery, tree *AccountTree, consolidatedCurrency string, leaves []*domain.BalanceEntry) *Totals {
	t := &Totals{
		Debtor:       &domain.BalanceEntry{ItemType: domain.ItemTypeTotal, Nature: domain.NatureDebtor, CurrencyCode: consolidatedCurrency},
		Creditor:     &domain.BalanceEntry{ItemType: domain.ItemTypeTotal, Nature: domain.NatureCreditor, CurrencyCode: consolidatedCurrency},
		Consolidated: &domain.BalanceEntry{ItemType: domain.ItemTypeBalanceTotalConsolidated, Nature: domain.NatureDebtor, CurrencyCode: consolidatedCurrency},
	}

	type sectorKey struct{ currency, sector string }
	type groupKey struct{ currency, group string }

	sectors := make(map[sectorKey]*domain.BalanceEntry)
	groups := make(map[groupKey]*domain.BalanceEntry)
	currencies := make(map[string]*domain.BalanceEntry)

	for _, leaf := range leaves {
		if query.WithSectorization {
			sk := sectorKey{currency: leaf.CurrencyCode, sector: leaf.SectorCode}
			row, ok := sectors[sk]
			if !ok {
				row = &domain.BalanceEntry{
					ItemType:     domain.ItemTypeTotalSector,
					Nature:       domain.NatureDebtor,
					CurrencyCode: leaf.CurrencyCode,
					SectorCode:   leaf.SectorCode,
				}
				sectors[sk] = row
				t.Sectors = append(t.Sectors, row)
			}
			row.Accumulate(leaf)
		}

		gk := groupKey{currency: leaf.CurrencyCode, group: leaf.GroupNumber}
		group, ok := groups[gk]
		if !ok {
			group = &domain.BalanceEntry{
				ItemType:      domain.ItemTypeGroup,
				AccountNumber: leaf.GroupNumber,
				GroupNumber:   leaf.GroupNumber,
				AccountType:   tree.AccountType(leaf.GroupNumber),
				Nature:        tree.Nature(leaf.GroupNumber),
				Level:         1,
				CurrencyCode:  leaf.CurrencyCode,
			}
			if acc, found := tree.Lookup(leaf.GroupNumber); found {
				group.AccountName = acc.Name
			}
			if group.AccountType == "" {
				group.AccountType = leaf.AccountType
			}
			groups[gk] = group
			t.Groups = append(t.Groups, group)
		}
		group.Accumulate(leaf)

		if leaf.Nature == domain.NatureCreditor {
			t.Creditor.Accumulate(leaf)
		} else {
			t.Debtor.Accumulate(leaf)
		}

		cur, ok := currencies[leaf.CurrencyCode]
		if !ok {
			cur = &domain.BalanceEntry{
				ItemType:     domain.ItemTypeTotalCurrency,
				Nature:       domain.NatureDebtor,
				CurrencyCode: leaf.CurrencyCode,
			}
			currencies[leaf.CurrencyCode] = cur
			t.Currencies = append(t.Currencies, cur)
		}
		cur.Accumulate(leaf)

		t.Consolidated.Accumulate(leaf)
	}

	delimiter := tree.Delimiter()
	sort.SliceStable(t.Sectors, func(i, j int) bool {
		a, b := t.Sectors[i], t.Sectors[j]
		if a.CurrencyCode != b.CurrencyCode {
			return a.CurrencyCode < b.CurrencyCode
		}
		return a.SectorCode < b.SectorCode
	})
	sort.SliceStable(t.Groups, func(i, j int) bool {
		a, b := t.Groups[i], t.Groups[j]
		if a.CurrencyCode != b.CurrencyCode {
			return a.CurrencyCode < b.CurrencyCode
		}
		return domain.CompareAccountNumbers(a.GroupNumber, b.GroupNumber, delimiter) < 0
	})
	sort.SliceStable(t.Currencies, func(i, j int) bool {
		return t.Currencies[i].CurrencyCode < t.Currencies[j].CurrencyCode
	})

	return t
}
