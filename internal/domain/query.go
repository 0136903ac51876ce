package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// BalanceType selects the trial balance report variant.
type BalanceType string

const (
	BalanceTypeTrialBalance               BalanceType = "TrialBalance"
	BalanceTypeCascadeTrialBalance        BalanceType = "CascadeTrialBalance"
	BalanceTypeDollarizedTrialBalance     BalanceType = "DollarizedTrialBalance"
	BalanceTypeValorizedComparative       BalanceType = "ValorizedComparative"
	BalanceTypeValorizedEstimation        BalanceType = "ValorizedEstimation"
	BalanceTypeAnalyticByAccount          BalanceType = "AnalyticByAccount"
	BalanceTypeBalancesByAccount          BalanceType = "BalancesByAccount"
	BalanceTypeBalancesBySubledgerAccount BalanceType = "BalancesBySubledgerAccount"
	BalanceTypeSATBalance                 BalanceType = "SATBalance"
	BalanceTypeComparativeTrialBalance    BalanceType = "ComparativeTrialBalance"
)

var validBalanceTypes = map[BalanceType]bool{
	BalanceTypeTrialBalance:               true,
	BalanceTypeCascadeTrialBalance:        true,
	BalanceTypeDollarizedTrialBalance:     true,
	BalanceTypeValorizedComparative:       true,
	BalanceTypeValorizedEstimation:        true,
	BalanceTypeAnalyticByAccount:          true,
	BalanceTypeBalancesByAccount:          true,
	BalanceTypeBalancesBySubledgerAccount: true,
	BalanceTypeSATBalance:                 true,
	BalanceTypeComparativeTrialBalance:    true,
}

// IsValid checks if the balance type is known.
func (t BalanceType) IsValid() bool {
	return validBalanceTypes[t]
}

// BalancesFilter selects which account rows take part in the balance.
type BalancesFilter string

const (
	BalancesAllAccounts                  BalancesFilter = "AllAccounts"
	BalancesWithCurrentBalance           BalancesFilter = "WithCurrentBalance"
	BalancesWithCurrentBalanceOrMovement BalancesFilter = "WithCurrentBalanceOrMovements"
	BalancesWithMovements                BalancesFilter = "WithMovements"
)

// Keep reports whether an entry passes the filter.
func (f BalancesFilter) Keep(e *BalanceEntry) bool {
	switch f {
	case BalancesWithCurrentBalance:
		return !e.CurrentBalance.IsZero()
	case BalancesWithCurrentBalanceOrMovement:
		return !e.CurrentBalance.IsZero() || e.HasMovements()
	case BalancesWithMovements:
		return e.HasMovements()
	default:
		return true
	}
}

// IsValid checks if the filter is known. The empty filter means AllAccounts.
func (f BalancesFilter) IsValid() bool {
	switch f {
	case "", BalancesAllAccounts, BalancesWithCurrentBalance, BalancesWithCurrentBalanceOrMovement, BalancesWithMovements:
		return true
	}
	return false
}

// BalanceQuery describes what balance to compute. Values are treated as
// immutable: strategies return adjusted copies.
type BalanceQuery struct {
	AccountsChart    string
	BalanceType      BalanceType
	BalancesFilter   BalancesFilter
	Period           DateRange
	ComparisonPeriod *DateRange

	Ledgers     []string
	Currencies  []string
	FromAccount string
	ToAccount   string
	// Level restricts the output to accounts at or above this depth. 0 means no restriction.
	Level int

	ShowCascadeBalances                 bool
	ConsolidateBalancesToTargetCurrency bool
	ValuateBalances                     bool
	UseDefaultValuation                 bool
	WithSubledgerAccount                bool
	WithSectorization                   bool
	HidePostingEntries                  bool
	ReportValuedEffect                  bool

	TargetCurrency   string
	ExchangeRateType string
	ExchangeRateDate time.Time
}

// Validate checks the query invariants that do not need external data.
func (q BalanceQuery) Validate() error {
	if strings.TrimSpace(q.AccountsChart) == "" {
		return &InvalidQueryError{Field: "accounts_chart", Reason: "is required"}
	}
	if !q.BalanceType.IsValid() {
		return &InvalidQueryError{Field: "balance_type", Reason: fmt.Sprintf("%q is not supported", q.BalanceType)}
	}
	if !q.BalancesFilter.IsValid() {
		return &InvalidQueryError{Field: "balances_filter", Reason: fmt.Sprintf("%q is not supported", q.BalancesFilter)}
	}
	if q.Period.From.IsZero() || q.Period.To.IsZero() {
		return &InvalidQueryError{Field: "period", Reason: "from and to dates are required"}
	}
	if q.Period.From.After(q.Period.To) {
		return &InvalidQueryError{Field: "period", Reason: fmt.Sprintf("from date %s is after to date %s",
			q.Period.From.Format(DateLayout), q.Period.To.Format(DateLayout))}
	}
	if q.ComparisonPeriod != nil && !q.ComparisonPeriod.IsValid() {
		return &InvalidQueryError{Field: "comparison_period", Reason: "from date must not be after to date"}
	}
	if q.BalanceType == BalanceTypeComparativeTrialBalance && q.ComparisonPeriod == nil {
		return &InvalidQueryError{Field: "comparison_period", Reason: "is required for comparative balances"}
	}
	if q.Level < 0 {
		return &InvalidQueryError{Field: "level", Reason: "must not be negative"}
	}
	if q.FromAccount != "" && q.ToAccount != "" && CompareAccountNumbers(q.FromAccount, q.ToAccount, "") > 0 {
		return &InvalidQueryError{Field: "account_range", Reason: "from account is after to account"}
	}
	for _, c := range q.Currencies {
		if err := ValidateCurrency(c); err != nil {
			return &InvalidQueryError{Field: "currencies", Reason: err.Error()}
		}
	}
	if q.TargetCurrency != "" {
		if err := ValidateCurrency(q.TargetCurrency); err != nil {
			return &InvalidQueryError{Field: "target_currency", Reason: err.Error()}
		}
	}
	if q.ExchangeRateType != "" {
		if err := ValidateRateType(q.ExchangeRateType); err != nil {
			return &InvalidQueryError{Field: "exchange_rate_type", Reason: err.Error()}
		}
	}
	return nil
}

// RequiresValuation reports whether balances must be valued into a target currency.
func (q BalanceQuery) RequiresValuation() bool {
	return q.ValuateBalances || q.ConsolidateBalancesToTargetCurrency
}

// ResolveTargetCurrency returns the valuation target: the query's target
// currency, else the chart's base currency.
func (q BalanceQuery) ResolveTargetCurrency(chart *AccountsChart) (string, error) {
	if q.TargetCurrency != "" {
		return NormalizeCurrency(q.TargetCurrency), nil
	}
	if chart != nil && chart.BaseCurrency != "" {
		return NormalizeCurrency(chart.BaseCurrency), nil
	}
	if q.RequiresValuation() {
		return "", &InvalidQueryError{Field: "target_currency", Reason: "cannot be resolved for valuation"}
	}
	return "", nil
}

// RateType returns the exchange rate type the valuation must use.
func (q BalanceQuery) RateType() string {
	if q.UseDefaultValuation || q.ExchangeRateType == "" {
		return DefaultRateType
	}
	return q.ExchangeRateType
}

// ValuationDate returns the date whose rates are used for valuation.
func (q BalanceQuery) ValuationDate() time.Time {
	if q.UseDefaultValuation || q.ExchangeRateDate.IsZero() {
		return TruncateDay(q.Period.To)
	}
	return TruncateDay(q.ExchangeRateDate)
}

// InAccountRange reports whether an account number falls in the query's
// account range. Descendants of the upper bound are included.
func (q BalanceQuery) InAccountRange(number, delimiter string) bool {
	if q.FromAccount != "" && CompareAccountNumbers(number, q.FromAccount, delimiter) < 0 {
		return false
	}
	if q.ToAccount != "" && CompareAccountNumbers(number, q.ToAccount, delimiter) > 0 &&
		!IsDescendantAccount(number, q.ToAccount, delimiter) {
		return false
	}
	return true
}

// Fingerprint returns a stable key identifying the query, used for caching.
func (q BalanceQuery) Fingerprint() string {
	ledgers := append([]string(nil), q.Ledgers...)
	sort.Strings(ledgers)
	currencies := append([]string(nil), q.Currencies...)
	sort.Strings(currencies)

	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%s", q.AccountsChart, q.BalanceType, q.BalancesFilter, q.Period)
	if q.ComparisonPeriod != nil {
		fmt.Fprintf(&b, "|cmp=%s", q.ComparisonPeriod)
	}
	fmt.Fprintf(&b, "|l=%s|c=%s|a=%s..%s|lvl=%d", strings.Join(ledgers, ","), strings.Join(currencies, ","),
		q.FromAccount, q.ToAccount, q.Level)
	fmt.Fprintf(&b, "|%t%t%t%t%t%t%t%t", q.ShowCascadeBalances, q.ConsolidateBalancesToTargetCurrency,
		q.ValuateBalances, q.UseDefaultValuation, q.WithSubledgerAccount, q.WithSectorization,
		q.HidePostingEntries, q.ReportValuedEffect)
	fmt.Fprintf(&b, "|%s|%s|%s", q.TargetCurrency, q.ExchangeRateType, q.ExchangeRateDate.Format(DateLayout))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
