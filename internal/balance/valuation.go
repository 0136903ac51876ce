package balance

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
)

// RateProvider looks up the value of one unit of `from` expressed in `to`.
// Implementations return a *domain.MissingExchangeRateError when no rate exists.
type RateProvider interface {
	FetchExchangeRate(ctx context.Context, from, to string, date time.Time, rateType string) (decimal.Decimal, error)
}

// ValuedBalance is the result of valuing one balance into a target currency.
type ValuedBalance struct {
	Rate       decimal.Decimal
	SecondRate decimal.Decimal
	Balance    decimal.Decimal
	Effect     decimal.Decimal
}

type rateKey struct {
	currency string
	date     time.Time
}

// Valuator converts balances into a target currency. Rates are memoised for
// the lifetime of the valuator, which is one computation.
type Valuator struct {
	provider     RateProvider
	target       string
	rateType     string
	asOf         time.Time
	period       domain.DateRange
	reportEffect bool
	consolidate  bool

	mu   sync.Mutex
	memo map[rateKey]decimal.Decimal
}

// NewValuator creates a valuator for a query and its resolved target currency.
func NewValuator(provider RateProvider, query domain.BalanceQuery, target string) *Valuator {
	return &Valuator{
		provider:     provider,
		target:       target,
		rateType:     query.RateType(),
		asOf:         query.ValuationDate(),
		period:       query.Period,
		reportEffect: query.ReportValuedEffect,
		consolidate:  query.ConsolidateBalancesToTargetCurrency,
		memo:         make(map[rateKey]decimal.Decimal),
	}
}

// Target returns the target currency.
func (v *Valuator) Target() string { return v.target }

// RateAt returns the rate from currency into the target currency on date.
// Same-currency conversions never hit the provider.
func (v *Valuator) RateAt(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	if currency == v.target {
		return decimal.NewFromInt(1), nil
	}
	date = domain.TruncateDay(date)
	key := rateKey{currency: currency, date: date}

	v.mu.Lock()
	rate, ok := v.memo[key]
	v.mu.Unlock()
	if ok {
		return rate, nil
	}

	if v.provider == nil {
		return decimal.Zero, v.missing(currency, date)
	}
	rate, err := v.provider.FetchExchangeRate(ctx, currency, v.target, date, v.rateType)
	if err != nil {
		var missing *domain.MissingExchangeRateError
		if errors.As(err, &missing) || errors.Is(err, domain.ErrMissingExchangeRate) {
			return decimal.Zero, v.missing(currency, date)
		}
		return decimal.Zero, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, v.missing(currency, date)
	}

	v.mu.Lock()
	v.memo[key] = rate
	v.mu.Unlock()
	return rate, nil
}

func (v *Valuator) missing(currency string, date time.Time) error {
	return &domain.MissingExchangeRateError{
		FromCurrency: currency,
		ToCurrency:   v.target,
		Date:         date,
		RateType:     v.rateType,
	}
}

// Valuate values the current balance of entry on asOf into target. When the
// valued effect is reported, the second rate is the one at the end of the
// previous month and the effect is balance * (rate - second rate).
func (v *Valuator) Valuate(ctx context.Context, entry *domain.BalanceEntry, asOf time.Time, target string) (ValuedBalance, error) {
	if target != v.target {
		return ValuedBalance{}, &domain.InvalidQueryError{Field: "target_currency", Reason: "does not match valuation target " + v.target}
	}

	rate, err := v.RateAt(ctx, entry.CurrencyCode, asOf)
	if err != nil {
		return ValuedBalance{}, err
	}

	out := ValuedBalance{
		Rate:    rate,
		Balance: entry.CurrentBalance.Mul(rate),
	}

	if v.reportEffect {
		second, err := v.RateAt(ctx, entry.CurrencyCode, domain.EndOfPreviousMonth(asOf))
		if err != nil {
			return ValuedBalance{}, err
		}
		out.SecondRate = second
		out.Effect = entry.CurrentBalance.Mul(rate.Sub(second))
	}

	return out, nil
}

// Devaluate converts a valued amount back into its native currency.
func Devaluate(amount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return amount.DivRound(rate, 16)
}

// apply values every row and, when consolidating, re-keys the rows to the
// target currency and merges rows that collapse onto the same key.
func (v *Valuator) apply(ctx context.Context, rows []*domain.BalanceEntry, delimiter string) ([]*domain.BalanceEntry, error) {
	for _, row := range rows {
		valued, err := v.Valuate(ctx, row, v.asOf, v.target)
		if err != nil {
			return nil, err
		}
		row.Valuated = true
		row.ExchangeRate = valued.Rate
		row.SecondExchangeRate = valued.SecondRate
		row.ValuedBalance = valued.Balance
		row.ValuedEffect = valued.Effect
		if row.CurrencyCode == v.target {
			row.DomesticBalance = valued.Balance
		} else {
			row.ForeignBalance = valued.Balance
		}
	}

	if !v.consolidate {
		return rows, nil
	}
	return consolidate(rows, v.target, delimiter), nil
}

// consolidate expresses every row in the target currency using its exchange
// rate and merges rows sharing the same key.
func consolidate(rows []*domain.BalanceEntry, target string, delimiter string) []*domain.BalanceEntry {
	merged := make(map[entryKey]*domain.BalanceEntry, len(rows))
	mixed := make(map[entryKey]bool)
	out := make([]*domain.BalanceEntry, 0, len(rows))

	for _, row := range rows {
		converted := row.Clone()
		converted.InitialBalance = row.InitialBalance.Mul(row.ExchangeRate)
		converted.Debit = row.Debit.Mul(row.ExchangeRate)
		converted.Credit = row.Credit.Mul(row.ExchangeRate)
		converted.Recalculate()
		converted.ValuedBalance = converted.CurrentBalance
		converted.CurrencyCode = target

		key := keyOf(converted)
		existing, ok := merged[key]
		if !ok {
			merged[key] = converted
			out = append(out, converted)
			continue
		}
		if !existing.ExchangeRate.Equal(converted.ExchangeRate) {
			mixed[key] = true
		}
		existing.IsParentPostingEntry = existing.IsParentPostingEntry || converted.IsParentPostingEntry
		existing.HasParentPostingEntry = existing.HasParentPostingEntry || converted.HasParentPostingEntry
		existing.Accumulate(converted)
	}

	// Rows merged from several currencies carry no single rate.
	for key := range mixed {
		merged[key].ExchangeRate = decimal.Zero
		merged[key].SecondExchangeRate = decimal.Zero
	}

	sortRows(out, delimiter)
	return out
}
