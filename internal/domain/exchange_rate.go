package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRateType is the official exchange rate type used for default valuation.
const DefaultRateType = "FIX"

// ExchangeRate is the value of one unit of FromCurrency expressed in ToCurrency.
type ExchangeRate struct {
	Date         time.Time
	UID          string
	RateType     string
	FromCurrency string
	ToCurrency   string
	Value        decimal.Decimal
	UpdatedAt    time.Time
}

// Validate checks rate currencies, type and value.
func (r *ExchangeRate) Validate() error {
	if err := ValidateRateType(r.RateType); err != nil {
		return err
	}
	if err := ValidateCurrency(r.FromCurrency); err != nil {
		return err
	}
	if err := ValidateCurrency(r.ToCurrency); err != nil {
		return err
	}
	if r.FromCurrency == r.ToCurrency {
		return fmt.Errorf("%w: %s->%s", ErrInvalidExchangeRate, r.FromCurrency, r.ToCurrency)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidExchangeRate)
	}
	if !r.Value.IsPositive() {
		return fmt.Errorf("%w: value must be positive, got %s", ErrInvalidExchangeRate, r.Value)
	}
	return nil
}
