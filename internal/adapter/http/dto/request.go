package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/usecase"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of a request.
func Validate(req any) error {
	return validate.Struct(req)
}

// FieldErrors flattens validator errors into field -> rule messages.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Namespace()] = rule
	}
	return out
}

// TrialBalanceRequest represents a request to compute a trial balance.
type TrialBalanceRequest struct {
	AccountsChart      string   `json:"accounts_chart"       validate:"required"`
	BalanceType        string   `json:"balance_type"         validate:"required"`
	BalancesFilter     string   `json:"balances_filter"`
	FromDate           string   `json:"from_date"            validate:"required,datetime=2006-01-02"`
	ToDate             string   `json:"to_date"              validate:"required,datetime=2006-01-02"`
	ComparisonFromDate string   `json:"comparison_from_date" validate:"omitempty,datetime=2006-01-02"`
	ComparisonToDate   string   `json:"comparison_to_date"   validate:"omitempty,datetime=2006-01-02"`
	Ledgers            []string `json:"ledgers"              validate:"omitempty,dive,required"`
	Currencies         []string `json:"currencies"           validate:"omitempty,dive,len=3"`
	FromAccount        string   `json:"from_account"`
	ToAccount          string   `json:"to_account"`
	Level              int      `json:"level"                validate:"gte=0,lte=12"`

	ShowCascadeBalances                 bool `json:"show_cascade_balances"`
	ConsolidateBalancesToTargetCurrency bool `json:"consolidate_balances_to_target_currency"`
	ValuateBalances                     bool `json:"valuate_balances"`
	UseDefaultValuation                 bool `json:"use_default_valuation"`
	WithSubledgerAccount                bool `json:"with_subledger_account"`
	WithSectorization                   bool `json:"with_sectorization"`
	HidePostingEntries                  bool `json:"hide_posting_entries"`
	ReportValuedEffect                  bool `json:"report_valued_effect"`

	TargetCurrency   string `json:"target_currency"    validate:"omitempty,len=3"`
	ExchangeRateType string `json:"exchange_rate_type" validate:"omitempty,max=16"`
	ExchangeRateDate string `json:"exchange_rate_date" validate:"omitempty,datetime=2006-01-02"`
}

// ToQuery converts the request into a balance query. Dates were checked by
// Validate; a parse failure here still reports the offending field.
func (r *TrialBalanceRequest) ToQuery() (domain.BalanceQuery, error) {
	from, err := parseDate("from_date", r.FromDate)
	if err != nil {
		return domain.BalanceQuery{}, err
	}
	to, err := parseDate("to_date", r.ToDate)
	if err != nil {
		return domain.BalanceQuery{}, err
	}

	q := domain.BalanceQuery{
		AccountsChart:  strings.TrimSpace(r.AccountsChart),
		BalanceType:    domain.BalanceType(r.BalanceType),
		BalancesFilter: domain.BalancesFilter(r.BalancesFilter),
		Period:         domain.NewDateRange(from, to),
		Ledgers:        r.Ledgers,
		Currencies:     r.Currencies,
		FromAccount:    r.FromAccount,
		ToAccount:      r.ToAccount,
		Level:          r.Level,

		ShowCascadeBalances:                 r.ShowCascadeBalances,
		ConsolidateBalancesToTargetCurrency: r.ConsolidateBalancesToTargetCurrency,
		ValuateBalances:                     r.ValuateBalances,
		UseDefaultValuation:                 r.UseDefaultValuation,
		WithSubledgerAccount:                r.WithSubledgerAccount,
		WithSectorization:                   r.WithSectorization,
		HidePostingEntries:                  r.HidePostingEntries,
		ReportValuedEffect:                  r.ReportValuedEffect,

		TargetCurrency:   domain.NormalizeCurrency(r.TargetCurrency),
		ExchangeRateType: strings.ToUpper(strings.TrimSpace(r.ExchangeRateType)),
	}

	if (r.ComparisonFromDate == "") != (r.ComparisonToDate == "") {
		return domain.BalanceQuery{}, &domain.InvalidQueryError{Field: "comparison_period", Reason: "needs both comparison_from_date and comparison_to_date"}
	}
	if r.ComparisonFromDate != "" {
		cf, err := parseDate("comparison_from_date", r.ComparisonFromDate)
		if err != nil {
			return domain.BalanceQuery{}, err
		}
		ct, err := parseDate("comparison_to_date", r.ComparisonToDate)
		if err != nil {
			return domain.BalanceQuery{}, err
		}
		cmp := domain.NewDateRange(cf, ct)
		q.ComparisonPeriod = &cmp
	}

	if r.ExchangeRateDate != "" {
		d, err := parseDate("exchange_rate_date", r.ExchangeRateDate)
		if err != nil {
			return domain.BalanceQuery{}, err
		}
		q.ExchangeRateDate = d
	}

	return q, nil
}

// TrialBalanceRequestFromQuery reads a balance request from URL query
// parameters. List parameters are comma separated.
func TrialBalanceRequestFromQuery(values url.Values) (*TrialBalanceRequest, error) {
	req := &TrialBalanceRequest{
		AccountsChart:      values.Get("accounts_chart"),
		BalanceType:        values.Get("balance_type"),
		BalancesFilter:     values.Get("balances_filter"),
		FromDate:           values.Get("from_date"),
		ToDate:             values.Get("to_date"),
		ComparisonFromDate: values.Get("comparison_from_date"),
		ComparisonToDate:   values.Get("comparison_to_date"),
		Ledgers:            splitList(values.Get("ledgers")),
		Currencies:         splitList(values.Get("currencies")),
		FromAccount:        values.Get("from_account"),
		ToAccount:          values.Get("to_account"),
		TargetCurrency:     values.Get("target_currency"),
		ExchangeRateType:   values.Get("exchange_rate_type"),
		ExchangeRateDate:   values.Get("exchange_rate_date"),
	}
	if req.BalanceType == "" {
		req.BalanceType = string(domain.BalanceTypeTrialBalance)
	}

	if v := values.Get("level"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return nil, &domain.InvalidQueryError{Field: "level", Reason: fmt.Sprintf("%q is not a number", v)}
		}
		req.Level = level
	}

	flags := map[string]*bool{
		"show_cascade_balances":                   &req.ShowCascadeBalances,
		"consolidate_balances_to_target_currency": &req.ConsolidateBalancesToTargetCurrency,
		"valuate_balances":                        &req.ValuateBalances,
		"use_default_valuation":                   &req.UseDefaultValuation,
		"with_subledger_account":                  &req.WithSubledgerAccount,
		"with_sectorization":                      &req.WithSectorization,
	}
	for name, dst := range flags {
		v := values.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &domain.InvalidQueryError{Field: name, Reason: fmt.Sprintf("%q is not a boolean", v)}
		}
		*dst = b
	}

	return req, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, &domain.InvalidQueryError{Field: field, Reason: fmt.Sprintf("%q is not a %s date", value, domain.DateLayout)}
	}
	return t, nil
}

// SaveRatesRequest represents a request to store the rates of one day and type.
type SaveRatesRequest struct {
	Date     string     `json:"date"      validate:"required,datetime=2006-01-02"`
	RateType string     `json:"rate_type" validate:"required,max=16"`
	Rates    []RateItem `json:"rates"     validate:"required,min=1,max=500,dive"`
}

// RateItem represents a single rate in a batch.
type RateItem struct {
	FromCurrency string          `json:"from_currency" validate:"required,len=3"`
	ToCurrency   string          `json:"to_currency"   validate:"required,len=3,nefield=FromCurrency"`
	Value        decimal.Decimal `json:"value"`
}

// ToUseCaseInput converts to use case input.
func (r *SaveRatesRequest) ToUseCaseInput() (usecase.SaveRatesInput, error) {
	day, err := parseDate("date", r.Date)
	if err != nil {
		return usecase.SaveRatesInput{}, err
	}

	rates := make([]usecase.RateInput, len(r.Rates))
	for i, item := range r.Rates {
		rates[i] = usecase.RateInput{
			FromCurrency: item.FromCurrency,
			ToCurrency:   item.ToCurrency,
			Value:        item.Value,
		}
	}

	return usecase.SaveRatesInput{
		Date:     day,
		RateType: r.RateType,
		Rates:    rates,
	}, nil
}
