package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidCurrency      = errors.New("invalid currency code")
	ErrInvalidSectorCode    = errors.New("invalid sector code")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidRateType      = errors.New("invalid exchange rate type")
)

// Validation constants
const (
	MaxAccountNumberLength = 64
	MaxAccountLevel        = 12
	MaxRateTypeLength      = 16
)

// Valid currency codes (ISO 4217 plus investment units used in Mexican reporting)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
	"UDI": true,
}

var (
	sectorRegex   = regexp.MustCompile(`^[0-9]{2}$`)
	rateTypeRegex = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// NormalizeCurrency upper-cases and trims a currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// ValidateCurrency validates currency code
func ValidateCurrency(currency string) error {
	currency = NormalizeCurrency(currency)

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a supported currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateSectorCode validates a two digit economic sector code.
func ValidateSectorCode(sector string) error {
	if !sectorRegex.MatchString(sector) {
		return fmt.Errorf("%w: %q", ErrInvalidSectorCode, sector)
	}
	return nil
}

// ValidateAccountNumber checks that every segment of the account number is
// non-empty and numeric.
func ValidateAccountNumber(number, delimiter string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("%w: number cannot be empty", ErrInvalidAccountNumber)
	}

	if len(number) > MaxAccountNumberLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidAccountNumber, number, MaxAccountNumberLength)
	}

	segments := AccountSegments(number, delimiter)
	if len(segments) > MaxAccountLevel {
		return fmt.Errorf("%w: %s is deeper than %d levels", ErrInvalidAccountNumber, number, MaxAccountLevel)
	}

	for _, segment := range segments {
		if !isDigits(segment) {
			return fmt.Errorf("%w: %s has malformed segment %q", ErrInvalidAccountNumber, number, segment)
		}
	}

	return nil
}

// ValidateRateType validates an exchange rate type code such as FIX.
func ValidateRateType(rateType string) error {
	if len(rateType) == 0 || len(rateType) > MaxRateTypeLength || !rateTypeRegex.MatchString(rateType) {
		return fmt.Errorf("%w: %q", ErrInvalidRateType, rateType)
	}
	return nil
}
