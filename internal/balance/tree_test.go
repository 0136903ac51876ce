package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gotrialbalance/internal/domain"
)

func TestAccountTree_Ancestors(t *testing.T) {
	tree, err := NewAccountTree(testChart())
	require.NoError(t, err)

	ancestors, err := tree.Ancestors("1.01.02")
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, "1.01", ancestors[0].Number)
	assert.Equal(t, "1", ancestors[1].Number)

	top, err := tree.Ancestors("2")
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestAccountTree_InheritsAccountType(t *testing.T) {
	tree, err := NewAccountTree(testChart())
	require.NoError(t, err)

	assert.Equal(t, "Activo", tree.AccountType("1.02.01"))
	assert.Equal(t, "Pasivo", tree.AccountType("2.01"))
	assert.Empty(t, tree.AccountType("9"))
	assert.Equal(t, domain.NatureCreditor, tree.Nature("4.01"))
}

func TestAccountTree_UnknownAccount(t *testing.T) {
	tree, err := NewAccountTree(testChart())
	require.NoError(t, err)

	_, err = tree.Ancestors("7.01")
	var orphan *domain.OrphanAccountError
	require.ErrorAs(t, err, &orphan)
	assert.Equal(t, "IFRS", orphan.AccountsChart)
	assert.Equal(t, "7.01", orphan.Account)
}

func TestAccountTree_MissingIntermediateParent(t *testing.T) {
	chart := testChart()
	chart.Accounts = append(chart.Accounts,
		&domain.ChartAccount{Number: "1.05.01", Name: "Sin padre", Nature: domain.NatureDebtor, Role: domain.RolePosting})

	tree, err := NewAccountTree(chart)
	require.NoError(t, err, "a missing parent only fails when rolled up")

	_, err = tree.Ancestors("1.05.01")
	var orphan *domain.OrphanAccountError
	require.ErrorAs(t, err, &orphan)
	assert.Equal(t, "1.05", orphan.Parent)

	_, err = tree.Ancestors("1.01.01")
	require.NoError(t, err)
}

func TestAccountTree_RejectsDuplicates(t *testing.T) {
	chart := testChart()
	chart.Accounts = append(chart.Accounts,
		&domain.ChartAccount{Number: "1.01", Name: "Dup", Nature: domain.NatureDebtor, Role: domain.RoleSummary})

	_, err := NewAccountTree(chart)
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)
}
