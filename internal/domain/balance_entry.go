package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType tags a trial balance row with its level in the rollup hierarchy.
type ItemType string

const (
	ItemTypeEntry                    ItemType = "Entry"
	ItemTypeSummary                  ItemType = "Summary"
	ItemTypeTotalSector              ItemType = "TotalSector"
	ItemTypeGroup                    ItemType = "Group"
	ItemTypeTotal                    ItemType = "Total"
	ItemTypeTotalCurrency            ItemType = "TotalCurrency"
	ItemTypeBalanceTotalConsolidated ItemType = "BalanceTotalConsolidated"
)

// IsTotal reports whether the item type is a report total rather than an account row.
func (t ItemType) IsTotal() bool {
	switch t {
	case ItemTypeTotalSector, ItemTypeGroup, ItemTypeTotal, ItemTypeTotalCurrency, ItemTypeBalanceTotalConsolidated:
		return true
	}
	return false
}

// BalanceEntry is one row of a trial balance.
type BalanceEntry struct {
	LastChangeDate time.Time

	ItemType         ItemType
	AccountNumber    string
	AccountName      string
	AccountType      string
	Nature           AccountNature
	Level            int
	SectorCode       string
	CurrencyCode     string
	SubledgerAccount string
	LedgerUID        string
	GroupNumber      string

	InitialBalance decimal.Decimal
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	CurrentBalance decimal.Decimal

	// Valuation columns, set when the entry was valued into another currency.
	Valuated           bool
	ExchangeRate       decimal.Decimal
	SecondExchangeRate decimal.Decimal
	ValuedBalance      decimal.Decimal
	ValuedEffect       decimal.Decimal

	// Analytic columns split an account balance by domestic and foreign currency.
	DomesticBalance decimal.Decimal
	ForeignBalance  decimal.Decimal

	// Comparative columns.
	ComparisonBalance decimal.Decimal
	Variation         decimal.Decimal

	Monthly *MonthlyColumns

	HasParentPostingEntry bool
	IsParentPostingEntry  bool
	IsLedgerBreakdown     bool
}

// Recalculate derives the current balance from the initial balance and movements.
func (e *BalanceEntry) Recalculate() {
	e.CurrentBalance = e.Nature.Balance(e.InitialBalance, e.Debit, e.Credit)
}

// ReportingBalance is the valued balance when the entry was valued, else the
// native current balance.
func (e *BalanceEntry) ReportingBalance() decimal.Decimal {
	if e.Valuated {
		return e.ValuedBalance
	}
	return e.CurrentBalance
}

// SignedBalance expresses the reporting balance with debtor accounts positive
// and creditor accounts negative.
func (e *BalanceEntry) SignedBalance() decimal.Decimal {
	return e.Nature.Signed(e.ReportingBalance())
}

// HasMovements reports whether the entry has debits or credits in the period.
func (e *BalanceEntry) HasMovements() bool {
	return !e.Debit.IsZero() || !e.Credit.IsZero()
}

// Accumulate adds other's amounts to e, re-expressing balances in e's nature.
func (e *BalanceEntry) Accumulate(other *BalanceEntry) {
	e.InitialBalance = e.InitialBalance.Add(e.Nature.ConvertFrom(other.Nature, other.InitialBalance))
	e.Debit = e.Debit.Add(other.Debit)
	e.Credit = e.Credit.Add(other.Credit)
	e.Recalculate()

	if other.Valuated {
		e.Valuated = true
		e.ValuedBalance = e.ValuedBalance.Add(e.Nature.ConvertFrom(other.Nature, other.ValuedBalance))
		e.ValuedEffect = e.ValuedEffect.Add(e.Nature.ConvertFrom(other.Nature, other.ValuedEffect))
		if e.ExchangeRate.IsZero() {
			e.ExchangeRate = other.ExchangeRate
			e.SecondExchangeRate = other.SecondExchangeRate
		}
	}

	e.DomesticBalance = e.DomesticBalance.Add(e.Nature.ConvertFrom(other.Nature, other.DomesticBalance))
	e.ForeignBalance = e.ForeignBalance.Add(e.Nature.ConvertFrom(other.Nature, other.ForeignBalance))

	if other.Monthly != nil {
		if e.Monthly == nil {
			e.Monthly = &MonthlyColumns{}
		}
		e.Monthly.Accumulate(other.Monthly, e.Nature.ConvertFrom(other.Nature, decimal.NewFromInt(1)))
	}

	if other.LastChangeDate.After(e.LastChangeDate) {
		e.LastChangeDate = other.LastChangeDate
	}
}

// Clone returns a deep copy of the entry.
func (e *BalanceEntry) Clone() *BalanceEntry {
	c := *e
	if e.Monthly != nil {
		m := *e.Monthly
		c.Monthly = &m
	}
	return &c
}

// MonthlyColumns holds one valuation column per calendar month plus an
// accumulated column. Only months flagged in Present carry data.
type MonthlyColumns struct {
	Months      [12]decimal.Decimal
	Present     [12]bool
	Accumulated decimal.Decimal
}

// Set stores the value for a month.
func (m *MonthlyColumns) Set(month time.Month, value decimal.Decimal) {
	m.Months[month-1] = value
	m.Present[month-1] = true
}

// Get returns the value for a month and whether it was set.
func (m *MonthlyColumns) Get(month time.Month) (decimal.Decimal, bool) {
	return m.Months[month-1], m.Present[month-1]
}

// Accumulate adds other's columns multiplied by sign.
func (m *MonthlyColumns) Accumulate(other *MonthlyColumns, sign decimal.Decimal) {
	for i := range other.Months {
		if !other.Present[i] {
			continue
		}
		m.Months[i] = m.Months[i].Add(other.Months[i].Mul(sign))
		m.Present[i] = true
	}
	m.Accumulated = m.Accumulated.Add(other.Accumulated.Mul(sign))
}
