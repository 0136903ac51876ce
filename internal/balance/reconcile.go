package balance

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
)

// DefaultTolerance is the largest difference accepted by the reconciliation
// checks, in units of the reporting currency.
var DefaultTolerance = decimal.NewFromInt(1)

// Reconciliation summarizes the consistency checks of an assembled balance.
type Reconciliation struct {
	LeafTotal     decimal.Decimal
	DebtorTotal   decimal.Decimal
	CreditorTotal decimal.Decimal
	Consolidated  decimal.Decimal
	Difference    decimal.Decimal
}

// Check names reported in InconsistentBalanceError.
const (
	CheckLeavesVsConsolidated   = "entries vs consolidated total"
	CheckDebtorCreditor         = "debtor minus creditor vs consolidated total"
	CheckCurrenciesConsolidated = "currency totals vs consolidated total"
	CheckSummaryRollup          = "summary vs descendant entries"
)

type reconciler struct {
	tolerance decimal.Decimal
	delimiter string
}

func (r reconciler) within(check string, expected, actual decimal.Decimal) error {
	if expected.Sub(actual).Abs().GreaterThan(r.tolerance) {
		return &domain.InconsistentBalanceError{Check: check, Expected: expected, Actual: actual}
	}
	return nil
}

// reconcile verifies that the totals and the top-level summaries agree with
// the leaf rows.
func (r reconciler) reconcile(leaves, summaries []*domain.BalanceEntry, totals *Totals) (Reconciliation, error) {
	leafTotal := decimal.Zero
	for _, leaf := range leaves {
		leafTotal = leafTotal.Add(leaf.SignedBalance())
	}

	consolidated := totals.Consolidated.SignedBalance()
	debtor := totals.Debtor.ReportingBalance()
	creditor := totals.Creditor.ReportingBalance()

	rec := Reconciliation{
		LeafTotal:     leafTotal,
		DebtorTotal:   debtor,
		CreditorTotal: creditor,
		Consolidated:  consolidated,
		Difference:    leafTotal.Sub(consolidated),
	}

	if err := r.within(CheckLeavesVsConsolidated, leafTotal, consolidated); err != nil {
		return rec, err
	}
	if err := r.within(CheckDebtorCreditor, consolidated, debtor.Sub(creditor)); err != nil {
		return rec, err
	}

	currencyTotal := decimal.Zero
	for _, cur := range totals.Currencies {
		currencyTotal = currencyTotal.Add(cur.SignedBalance())
	}
	if err := r.within(CheckCurrenciesConsolidated, consolidated, currencyTotal); err != nil {
		return rec, err
	}

	return rec, r.reconcileSummaries(leaves, summaries)
}

// reconcileSummaries compares every top-level summary with the leaves below
// it. A NoSector summary covers all sectors.
func (r reconciler) reconcileSummaries(leaves, summaries []*domain.BalanceEntry) error {
	type rollupKey struct {
		account, sector, currency, ledger string
	}

	expected := make(map[rollupKey]decimal.Decimal)
	for _, leaf := range leaves {
		top := domain.TopLevelAccountNumber(leaf.AccountNumber, r.delimiter)
		if top == leaf.AccountNumber {
			continue
		}
		signed := leaf.SignedBalance()
		k := rollupKey{account: top, sector: domain.NoSector, currency: leaf.CurrencyCode, ledger: leaf.LedgerUID}
		expected[k] = expected[k].Add(signed)
		if leaf.SectorCode != domain.NoSector {
			k.sector = leaf.SectorCode
			expected[k] = expected[k].Add(signed)
		}
	}

	for _, s := range summaries {
		if s.Level != 1 {
			continue
		}
		k := rollupKey{account: s.AccountNumber, sector: s.SectorCode, currency: s.CurrencyCode, ledger: s.LedgerUID}
		if err := r.within(CheckSummaryRollup+" "+s.AccountNumber, expected[k], s.SignedBalance()); err != nil {
			return err
		}
	}
	return nil
}
