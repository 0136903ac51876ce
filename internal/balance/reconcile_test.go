package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gotrialbalance/internal/domain"
)

func reconcileFixture(t *testing.T, summaryBalance string) (Reconciliation, error) {
	t.Helper()
	tree, err := NewAccountTree(testChart())
	require.NoError(t, err)

	acc, _ := tree.Lookup("1.01.01")
	leaf := accountRow(tree, acc, domain.ItemTypeEntry)
	leaf.SectorCode = domain.NoSector
	leaf.CurrencyCode = "MXN"
	leaf.Debit = mustDecimal("10")
	leaf.Recalculate()

	top, _ := tree.Lookup("1")
	summary := accountRow(tree, top, domain.ItemTypeSummary)
	summary.SectorCode = domain.NoSector
	summary.CurrencyCode = "MXN"
	summary.Debit = mustDecimal(summaryBalance)
	summary.Recalculate()

	leaves := []*domain.BalanceEntry{leaf}
	totals := buildTotals(query(domain.BalanceTypeTrialBalance), tree, "MXN", leaves)
	r := reconciler{tolerance: DefaultTolerance, delimiter: tree.Delimiter()}
	return r.reconcile(leaves, []*domain.BalanceEntry{summary}, totals)
}

func TestReconcile_AcceptsWithinTolerance(t *testing.T) {
	rec, err := reconcileFixture(t, "10.50")
	require.NoError(t, err)
	requireAmount(t, "10", rec.LeafTotal)
	requireAmount(t, "10", rec.Consolidated)
	assert.True(t, rec.Difference.IsZero())
}

func TestReconcile_DetectsSummaryMismatch(t *testing.T) {
	_, err := reconcileFixture(t, "50")

	var inconsistent *domain.InconsistentBalanceError
	require.ErrorAs(t, err, &inconsistent)
	assert.Contains(t, inconsistent.Check, CheckSummaryRollup)
	requireAmount(t, "10", inconsistent.Expected)
	requireAmount(t, "50", inconsistent.Actual)
}

func TestReconcile_DetectsTotalsMismatch(t *testing.T) {
	tree, err := NewAccountTree(testChart())
	require.NoError(t, err)

	acc, _ := tree.Lookup("2.01.01")
	leaf := accountRow(tree, acc, domain.ItemTypeEntry)
	leaf.CurrencyCode = "MXN"
	leaf.Credit = mustDecimal("10")
	leaf.Recalculate()

	totals := buildTotals(query(domain.BalanceTypeTrialBalance), tree, "MXN", []*domain.BalanceEntry{leaf})
	totals.Creditor.Credit = totals.Creditor.Credit.Add(decimal.NewFromInt(5))
	totals.Creditor.Recalculate()

	_, err = reconciler{tolerance: DefaultTolerance, delimiter: "."}.reconcile([]*domain.BalanceEntry{leaf}, nil, totals)
	var inconsistent *domain.InconsistentBalanceError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, CheckDebtorCreditor, inconsistent.Check)
	require.ErrorIs(t, err, domain.ErrInconsistentBalance)
}
