package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountNature is the normal balance side of an account (Naturaleza).
type AccountNature string

const (
	// NatureDebtor accounts (Deudora) grow with debits.
	NatureDebtor AccountNature = "D"
	// NatureCreditor accounts (Acreedora) grow with credits.
	NatureCreditor AccountNature = "A"
)

// IsValid checks if the nature is a known value.
func (n AccountNature) IsValid() bool {
	return n == NatureDebtor || n == NatureCreditor
}

// Balance computes a current balance from the initial balance and movements.
// Deudora: initial + debit - credit. Acreedora: initial + credit - debit.
func (n AccountNature) Balance(initial, debit, credit decimal.Decimal) decimal.Decimal {
	if n == NatureCreditor {
		return initial.Add(credit).Sub(debit)
	}
	return initial.Add(debit).Sub(credit)
}

// Signed expresses a nature-relative amount with the debtor-positive convention.
func (n AccountNature) Signed(amount decimal.Decimal) decimal.Decimal {
	if n == NatureCreditor {
		return amount.Neg()
	}
	return amount
}

// ConvertFrom re-expresses an amount held with nature `from` relative to n.
func (n AccountNature) ConvertFrom(from AccountNature, amount decimal.Decimal) decimal.Decimal {
	if from == n || from == "" {
		return amount
	}
	return amount.Neg()
}

// AccountRole describes how an account participates in postings.
type AccountRole string

const (
	RoleSummary    AccountRole = "Sumaria"
	RolePosting    AccountRole = "Detalle"
	RoleSectorized AccountRole = "Sectorizada"
	RoleControl    AccountRole = "Control"
)

// ChartAccount is a node in the hierarchical chart of accounts.
type ChartAccount struct {
	Number string
	Name   string
	Nature AccountNature
	Role   AccountRole
	// Type is the account group (Activo, Pasivo, Capital, ...). Accounts
	// without a type inherit the one of their top level account.
	Type  string
	Level int
}

// AccountsChart is a chart of accounts shared by one or more ledgers.
type AccountsChart struct {
	UID          string
	Name         string
	Delimiter    string
	BaseCurrency string
	Accounts     []*ChartAccount
}

// AccountDelimiter returns the segment delimiter used by the chart.
func (c *AccountsChart) AccountDelimiter() string {
	if c.Delimiter == "" {
		return DefaultAccountDelimiter
	}
	return c.Delimiter
}

// Validate checks natures, account number format and uniqueness.
func (c *AccountsChart) Validate() error {
	if c.UID == "" {
		return &InvalidQueryError{Field: "accounts_chart", Reason: "uid is required"}
	}
	seen := make(map[string]struct{}, len(c.Accounts))
	for _, acc := range c.Accounts {
		if err := ValidateAccountNumber(acc.Number, c.AccountDelimiter()); err != nil {
			return err
		}
		if !acc.Nature.IsValid() {
			return fmt.Errorf("%w: account %s has nature %q", ErrInvalidAccountNumber, acc.Number, acc.Nature)
		}
		if _, ok := seen[acc.Number]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAccount, acc.Number)
		}
		seen[acc.Number] = struct{}{}
	}
	return nil
}
