package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// Query errors
	ErrInvalidQuery       = errors.New("invalid balance query")
	ErrInvalidPeriod      = errors.New("date range outside opened calendar periods")
	ErrChartNotFound      = errors.New("accounts chart not found")
	ErrNegativeMovement   = errors.New("debit and credit must not be negative")
	ErrInvalidPostingLine = errors.New("invalid posting entry")

	// Hierarchy errors
	ErrOrphanAccount    = errors.New("account has no resolvable parent in the accounts chart")
	ErrDuplicateAccount = errors.New("duplicate account number in accounts chart")

	// Valuation errors
	ErrMissingExchangeRate = errors.New("exchange rate not found")
	ErrInvalidExchangeRate = errors.New("invalid exchange rate")

	// Reconciliation errors
	ErrInconsistentBalance = errors.New("balance reconciliation failed")
)

// InvalidQueryError reports a malformed balance query.
type InvalidQueryError struct {
	Field  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidQuery, e.Field, e.Reason)
}

func (e *InvalidQueryError) Unwrap() error { return ErrInvalidQuery }

// InvalidPeriodError reports a date range with no opened calendar period.
type InvalidPeriodError struct {
	AccountsChart string
	Period        DateRange
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("%s: chart %s period %s", ErrInvalidPeriod, e.AccountsChart, e.Period)
}

func (e *InvalidPeriodError) Unwrap() error { return ErrInvalidPeriod }

// OrphanAccountError reports an account whose position in the chart hierarchy
// cannot be resolved. Parent is empty when the account itself is missing.
type OrphanAccountError struct {
	AccountsChart string
	Account       string
	Parent        string
}

func (e *OrphanAccountError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("%s: account %s is not defined in chart %s", ErrOrphanAccount, e.Account, e.AccountsChart)
	}
	return fmt.Sprintf("%s: account %s references missing parent %s in chart %s",
		ErrOrphanAccount, e.Account, e.Parent, e.AccountsChart)
}

func (e *OrphanAccountError) Unwrap() error { return ErrOrphanAccount }

// MissingExchangeRateError reports a valuation that found no rate.
type MissingExchangeRateError struct {
	FromCurrency string
	ToCurrency   string
	Date         time.Time
	RateType     string
}

func (e *MissingExchangeRateError) Error() string {
	return fmt.Sprintf("%s: %s->%s type %s on %s",
		ErrMissingExchangeRate, e.FromCurrency, e.ToCurrency, e.RateType, e.Date.Format(DateLayout))
}

func (e *MissingExchangeRateError) Unwrap() error { return ErrMissingExchangeRate }

// InconsistentBalanceError reports a failed reconciliation check.
type InconsistentBalanceError struct {
	Check    string
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *InconsistentBalanceError) Error() string {
	return fmt.Sprintf("%s: %s expected=%s actual=%s difference=%s",
		ErrInconsistentBalance, e.Check, e.Expected, e.Actual, e.Expected.Sub(e.Actual))
}

func (e *InconsistentBalanceError) Unwrap() error { return ErrInconsistentBalance }
