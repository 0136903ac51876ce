package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NoSector is the sector code of entries without sector detail.
const NoSector = "00"

// PostingEntry is one raw ledger line attributable to a single standard
// account for a period. Entries are read-only once fetched.
type PostingEntry struct {
	LastChangeDate   time.Time
	AccountNumber    string
	SectorCode       string
	CurrencyCode     string
	SubledgerAccount string
	LedgerUID        string
	InitialBalance   decimal.Decimal
	Debit            decimal.Decimal
	Credit           decimal.Decimal
}

// Validate checks the invariants of a posting entry.
func (p *PostingEntry) Validate() error {
	if p.AccountNumber == "" {
		return &InvalidQueryError{Field: "account_number", Reason: "is empty in posting entry"}
	}
	if p.CurrencyCode == "" {
		return &InvalidQueryError{Field: "currency", Reason: "is empty in posting entry for account " + p.AccountNumber}
	}
	if p.Debit.IsNegative() || p.Credit.IsNegative() {
		return fmt.Errorf("%w: account %s debit=%s credit=%s", ErrNegativeMovement, p.AccountNumber, p.Debit, p.Credit)
	}
	return nil
}

// Sector returns the sector code, defaulting to NoSector.
func (p *PostingEntry) Sector() string {
	if p.SectorCode == "" {
		return NoSector
	}
	return p.SectorCode
}
