package balance

import (
	"github.com/iho/gotrialbalance/internal/domain"
)

const (
	noParent      = -1
	missingParent = -2
)

type treeNode struct {
	account     *domain.ChartAccount
	accountType string
	parent      int
	// parentNumber is kept for error reporting when the parent is missing.
	parentNumber string
}

// AccountTree is an arena of chart accounts indexed by account number. Parent
// links are resolved once at build time so ancestor walks are O(depth).
type AccountTree struct {
	chartUID  string
	delimiter string
	nodes     []treeNode
	index     map[string]int
}

// NewAccountTree indexes the accounts of a chart. Accounts whose parent is not
// defined are kept; the error surfaces when a balance actually rolls up
// through them.
func NewAccountTree(chart *domain.AccountsChart) (*AccountTree, error) {
	if err := chart.Validate(); err != nil {
		return nil, err
	}

	t := &AccountTree{
		chartUID:  chart.UID,
		delimiter: chart.AccountDelimiter(),
		nodes:     make([]treeNode, 0, len(chart.Accounts)),
		index:     make(map[string]int, len(chart.Accounts)),
	}

	for _, acc := range chart.Accounts {
		t.index[acc.Number] = len(t.nodes)
		t.nodes = append(t.nodes, treeNode{account: acc, parent: noParent})
	}

	for i := range t.nodes {
		parent := domain.ParentAccountNumber(t.nodes[i].account.Number, t.delimiter)
		if parent == "" {
			continue
		}
		idx, ok := t.index[parent]
		if !ok {
			t.nodes[i].parent = missingParent
			t.nodes[i].parentNumber = parent
			continue
		}
		t.nodes[i].parent = idx
	}

	for i := range t.nodes {
		t.nodes[i].accountType = t.resolveType(i)
	}

	return t, nil
}

// resolveType walks up until an account with a type is found.
func (t *AccountTree) resolveType(i int) string {
	for i >= 0 {
		if typ := t.nodes[i].account.Type; typ != "" {
			return typ
		}
		i = t.nodes[i].parent
	}
	return ""
}

// Delimiter returns the account segment delimiter of the chart.
func (t *AccountTree) Delimiter() string { return t.delimiter }

// ChartUID returns the uid of the indexed chart.
func (t *AccountTree) ChartUID() string { return t.chartUID }

// Lookup returns the chart account for a number.
func (t *AccountTree) Lookup(number string) (*domain.ChartAccount, bool) {
	idx, ok := t.index[number]
	if !ok {
		return nil, false
	}
	return t.nodes[idx].account, true
}

// AccountType returns the account's own or inherited type.
func (t *AccountTree) AccountType(number string) string {
	idx, ok := t.index[number]
	if !ok {
		return ""
	}
	return t.nodes[idx].accountType
}

// Nature returns the nature of an account, defaulting to debtor for unknown numbers.
func (t *AccountTree) Nature(number string) domain.AccountNature {
	if acc, ok := t.Lookup(number); ok {
		return acc.Nature
	}
	return domain.NatureDebtor
}

// Ancestors returns the ancestors of an account, nearest first.
func (t *AccountTree) Ancestors(number string) ([]*domain.ChartAccount, error) {
	idx, ok := t.index[number]
	if !ok {
		return nil, &domain.OrphanAccountError{AccountsChart: t.chartUID, Account: number}
	}

	var out []*domain.ChartAccount
	for {
		node := t.nodes[idx]
		switch node.parent {
		case noParent:
			return out, nil
		case missingParent:
			return nil, &domain.OrphanAccountError{
				AccountsChart: t.chartUID,
				Account:       node.account.Number,
				Parent:        node.parentNumber,
			}
		}
		idx = node.parent
		out = append(out, t.nodes[idx].account)
	}
}
