package balance

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
)

// TrialBalance is the assembled, ordered result of a balance computation.
type TrialBalance struct {
	Query          domain.BalanceQuery
	TargetCurrency string
	Entries        []*domain.BalanceEntry
	Totals         *Totals
	Reconciliation Reconciliation

	delimiter string
}

// Filter returns the rows of the given item types, in report order.
func (tb *TrialBalance) Filter(types ...domain.ItemType) []*domain.BalanceEntry {
	want := make(map[domain.ItemType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	out := make([]*domain.BalanceEntry, 0)
	for _, e := range tb.Entries {
		if want[e.ItemType] {
			out = append(out, e)
		}
	}
	return out
}

// Consolidated returns the consolidated total row.
func (tb *TrialBalance) Consolidated() *domain.BalanceEntry {
	return tb.Totals.Consolidated
}

// Assembler rounds, totals, reconciles and orders the rows of a computation.
type Assembler struct {
	tree      *AccountTree
	tolerance decimal.Decimal
}

// NewAssembler creates an assembler. A zero tolerance falls back to DefaultTolerance.
func NewAssembler(tree *AccountTree, tolerance decimal.Decimal) *Assembler {
	if !tolerance.IsPositive() {
		tolerance = DefaultTolerance
	}
	return &Assembler{tree: tree, tolerance: tolerance}
}

// Assemble produces the report sequence: posting entries, summaries (each
// account after its descendants), sector totals, group totals, debtor and
// creditor totals, currency totals and the consolidated total. Sums are
// computed before the level restriction and the output filters are applied.
func (a *Assembler) Assemble(query domain.BalanceQuery, target string, rows []*domain.BalanceEntry) (*TrialBalance, error) {
	delimiter := a.tree.Delimiter()

	entries := make([]*domain.BalanceEntry, 0, len(rows))
	summaries := make([]*domain.BalanceEntry, 0)
	leaves := make([]*domain.BalanceEntry, 0, len(rows))
	currencies := make(map[string]struct{})

	for _, row := range rows {
		roundEntry(row)
		switch row.ItemType {
		case domain.ItemTypeSummary:
			summaries = append(summaries, row)
		default:
			entries = append(entries, row)
		}
		if isLeaf(row) {
			leaves = append(leaves, row)
			currencies[row.CurrencyCode] = struct{}{}
		}
	}

	consolidatedCurrency := ""
	if query.RequiresValuation() {
		consolidatedCurrency = target
	} else if len(currencies) == 1 {
		for c := range currencies {
			consolidatedCurrency = c
		}
	}

	totals := buildTotals(query, a.tree, consolidatedCurrency, leaves)
	for _, row := range totals.Rows() {
		row.ExchangeRate = decimal.Zero
		row.SecondExchangeRate = decimal.Zero
	}

	rec, err := reconciler{tolerance: a.tolerance, delimiter: delimiter}.reconcile(leaves, summaries, totals)
	if err != nil {
		return nil, err
	}

	sortRows(entries, delimiter)
	sortRows(summaries, delimiter)

	out := make([]*domain.BalanceEntry, 0, len(entries)+len(summaries)+len(totals.Rows()))
	for _, e := range entries {
		if query.HidePostingEntries || !withinLevel(query, e) {
			continue
		}
		out = append(out, e)
	}
	for _, s := range summaries {
		if !withinLevel(query, s) || !query.BalancesFilter.Keep(s) {
			continue
		}
		out = append(out, s)
	}
	out = append(out, totals.Rows()...)

	return &TrialBalance{
		Query:          query,
		TargetCurrency: consolidatedCurrency,
		Entries:        out,
		Totals:         totals,
		Reconciliation: rec,
		delimiter:      delimiter,
	}, nil
}

func withinLevel(query domain.BalanceQuery, e *domain.BalanceEntry) bool {
	return query.Level == 0 || e.Level <= query.Level
}
