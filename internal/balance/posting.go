package balance

import (
	"sort"

	"github.com/iho/gotrialbalance/internal/domain"
)

// entryKey identifies a balance row inside one rollup level.
type entryKey struct {
	itemType  domain.ItemType
	account   string
	sector    string
	currency  string
	subledger string
	ledger    string
	breakdown bool
}

func keyOf(e *domain.BalanceEntry) entryKey {
	return entryKey{
		itemType:  e.ItemType,
		account:   e.AccountNumber,
		sector:    e.SectorCode,
		currency:  e.CurrencyCode,
		subledger: e.SubledgerAccount,
		ledger:    e.LedgerUID,
		breakdown: e.IsLedgerBreakdown,
	}
}

// blankFrom copies the identity of e into a row with zero amounts.
func blankFrom(e *domain.BalanceEntry) *domain.BalanceEntry {
	return &domain.BalanceEntry{
		ItemType:              e.ItemType,
		AccountNumber:         e.AccountNumber,
		AccountName:           e.AccountName,
		AccountType:           e.AccountType,
		Nature:                e.Nature,
		Level:                 e.Level,
		SectorCode:            e.SectorCode,
		CurrencyCode:          e.CurrencyCode,
		SubledgerAccount:      e.SubledgerAccount,
		LedgerUID:             e.LedgerUID,
		GroupNumber:           e.GroupNumber,
		HasParentPostingEntry: e.HasParentPostingEntry,
		IsParentPostingEntry:  e.IsParentPostingEntry,
		IsLedgerBreakdown:     e.IsLedgerBreakdown,
	}
}

// accountRow builds an empty row for a chart account.
func accountRow(tree *AccountTree, acc *domain.ChartAccount, itemType domain.ItemType) *domain.BalanceEntry {
	return &domain.BalanceEntry{
		ItemType:      itemType,
		AccountNumber: acc.Number,
		AccountName:   acc.Name,
		AccountType:   tree.AccountType(acc.Number),
		Nature:        acc.Nature,
		Level:         domain.AccountLevel(acc.Number, tree.Delimiter()),
		GroupNumber:   domain.TopLevelAccountNumber(acc.Number, tree.Delimiter()),
	}
}

// isLeaf reports whether a row takes part in rollups and totals. Subledger
// rows are covered by their parent posting entry and ledger breakdowns by the
// ledger-agnostic aggregate.
func isLeaf(e *domain.BalanceEntry) bool {
	return e.ItemType == domain.ItemTypeEntry && e.SubledgerAccount == "" && !e.IsLedgerBreakdown
}

// postingLoader turns raw posting entries into Entry rows.
type postingLoader struct {
	query domain.BalanceQuery
	tree  *AccountTree
}

func (l postingLoader) load(postings []domain.PostingEntry) ([]*domain.BalanceEntry, error) {
	ledgers := stringSet(l.query.Ledgers)
	currencies := stringSet(normalizeCurrencies(l.query.Currencies))

	rows := make(map[entryKey]*domain.BalanceEntry)
	for i := range postings {
		p := &postings[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if len(ledgers) > 0 && !ledgers[p.LedgerUID] {
			continue
		}
		currency := domain.NormalizeCurrency(p.CurrencyCode)
		if len(currencies) > 0 && !currencies[currency] {
			continue
		}
		if !l.query.InAccountRange(p.AccountNumber, l.tree.Delimiter()) {
			continue
		}

		acc, ok := l.tree.Lookup(p.AccountNumber)
		if !ok {
			return nil, &domain.OrphanAccountError{AccountsChart: l.tree.ChartUID(), Account: p.AccountNumber}
		}

		row := accountRow(l.tree, acc, domain.ItemTypeEntry)
		row.SectorCode = domain.NoSector
		if l.query.WithSectorization {
			row.SectorCode = p.Sector()
		}
		row.CurrencyCode = currency
		if l.query.WithSubledgerAccount {
			row.SubledgerAccount = p.SubledgerAccount
		}
		if l.query.ShowCascadeBalances {
			row.LedgerUID = p.LedgerUID
		}

		key := keyOf(row)
		existing, ok := rows[key]
		if !ok {
			existing = row
			rows[key] = row
		}
		existing.InitialBalance = existing.InitialBalance.Add(p.InitialBalance)
		existing.Debit = existing.Debit.Add(p.Debit)
		existing.Credit = existing.Credit.Add(p.Credit)
		if p.LastChangeDate.After(existing.LastChangeDate) {
			existing.LastChangeDate = p.LastChangeDate
		}
	}

	for _, row := range rows {
		row.Recalculate()
	}

	if l.query.WithSubledgerAccount {
		l.attachParentPostings(rows)
	}

	out := l.applyFilter(rows)
	sortRows(out, l.tree.Delimiter())
	return out, nil
}

// attachParentPostings creates, per ledger account, a parent posting entry
// that accumulates its subledger rows.
func (l postingLoader) attachParentPostings(rows map[entryKey]*domain.BalanceEntry) {
	children := make([]*domain.BalanceEntry, 0)
	for _, row := range rows {
		if row.SubledgerAccount != "" {
			children = append(children, row)
		}
	}
	sortRows(children, l.tree.Delimiter())

	for _, child := range children {
		child.HasParentPostingEntry = true

		parent := blankFrom(child)
		parent.SubledgerAccount = ""
		parent.HasParentPostingEntry = false
		key := keyOf(parent)
		if existing, ok := rows[key]; ok {
			parent = existing
		} else {
			rows[key] = parent
		}
		parent.IsParentPostingEntry = true
		parent.Accumulate(child)
	}
}

// applyFilter drops rows rejected by the balances filter. Subledger rows
// follow their parent posting entry.
func (l postingLoader) applyFilter(rows map[entryKey]*domain.BalanceEntry) []*domain.BalanceEntry {
	filter := l.query.BalancesFilter
	kept := make(map[entryKey]bool, len(rows))
	out := make([]*domain.BalanceEntry, 0, len(rows))

	for key, row := range rows {
		if row.SubledgerAccount != "" {
			continue
		}
		if filter.Keep(row) {
			kept[key] = true
			out = append(out, row)
		}
	}
	for _, row := range rows {
		if row.SubledgerAccount == "" {
			continue
		}
		parentKey := keyOf(row)
		parentKey.subledger = ""
		if kept[parentKey] && filter.Keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// sortRows orders rows by account number segment-wise, then by the remaining
// key fields. Summary rows follow every other row and are listed with parents
// after their descendants.
func sortRows(rows []*domain.BalanceEntry, delimiter string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return lessRow(rows[i], rows[j], delimiter)
	})
}

func lessRow(a, b *domain.BalanceEntry, delimiter string) bool {
	aSummary, bSummary := a.ItemType == domain.ItemTypeSummary, b.ItemType == domain.ItemTypeSummary
	if aSummary != bSummary {
		return bSummary
	}
	if a.AccountNumber != b.AccountNumber {
		if aSummary {
			return comparePostOrder(a.AccountNumber, b.AccountNumber, delimiter) < 0
		}
		return domain.CompareAccountNumbers(a.AccountNumber, b.AccountNumber, delimiter) < 0
	}
	if a.SectorCode != b.SectorCode {
		return a.SectorCode < b.SectorCode
	}
	if a.CurrencyCode != b.CurrencyCode {
		return a.CurrencyCode < b.CurrencyCode
	}
	if a.SubledgerAccount != b.SubledgerAccount {
		return a.SubledgerAccount < b.SubledgerAccount
	}
	if a.IsLedgerBreakdown != b.IsLedgerBreakdown {
		return !a.IsLedgerBreakdown
	}
	return a.LedgerUID < b.LedgerUID
}

// comparePostOrder orders accounts so every account follows its descendants.
func comparePostOrder(a, b, delimiter string) int {
	switch {
	case domain.IsDescendantAccount(a, b, delimiter):
		return -1
	case domain.IsDescendantAccount(b, a, delimiter):
		return 1
	}
	return domain.CompareAccountNumbers(a, b, delimiter)
}

func stringSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func normalizeCurrencies(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = domain.NormalizeCurrency(v)
	}
	return out
}
