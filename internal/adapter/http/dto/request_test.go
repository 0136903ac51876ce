package dto

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
)

func validRequest() *TrialBalanceRequest {
	return &TrialBalanceRequest{
		AccountsChart: " IFRS ",
		BalanceType:   "TrialBalance",
		FromDate:      "2025-01-01",
		ToDate:        "2025-01-31",
		Ledgers:       []string{"L1"},
		Currencies:    []string{"MXN", "USD"},
	}
}

func TestTrialBalanceRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *TrialBalanceRequest)
		wantField string
	}{
		{name: "valid", mutate: func(r *TrialBalanceRequest) {}},
		{name: "missing chart", mutate: func(r *TrialBalanceRequest) { r.AccountsChart = "" }, wantField: "TrialBalanceRequest.AccountsChart"},
		{name: "bad from date", mutate: func(r *TrialBalanceRequest) { r.FromDate = "01/01/2025" }, wantField: "TrialBalanceRequest.FromDate"},
		{name: "bad currency", mutate: func(r *TrialBalanceRequest) { r.Currencies = []string{"PESO"} }, wantField: "TrialBalanceRequest.Currencies[0]"},
		{name: "level too deep", mutate: func(r *TrialBalanceRequest) { r.Level = 13 }, wantField: "TrialBalanceRequest.Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := Validate(req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			fields := FieldErrors(err)
			if _, ok := fields[tt.wantField]; !ok {
				t.Fatalf("expected error on %s, got %v", tt.wantField, fields)
			}
		})
	}
}

func TestTrialBalanceRequest_ToQuery(t *testing.T) {
	req := validRequest()
	req.ComparisonFromDate = "2024-01-01"
	req.ComparisonToDate = "2024-01-31"
	req.TargetCurrency = "usd"
	req.ExchangeRateType = "fix"
	req.ExchangeRateDate = "2025-01-31"
	req.ValuateBalances = true

	q, err := req.ToQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.AccountsChart != "IFRS" || q.BalanceType != domain.BalanceTypeTrialBalance {
		t.Errorf("unexpected query: %+v", q)
	}
	if !q.Period.From.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected period: %s", q.Period)
	}
	if q.ComparisonPeriod == nil || q.ComparisonPeriod.To.Year() != 2024 {
		t.Errorf("unexpected comparison period: %v", q.ComparisonPeriod)
	}
	if q.TargetCurrency != "USD" || q.ExchangeRateType != "FIX" || !q.ValuateBalances {
		t.Errorf("unexpected valuation settings: %+v", q)
	}
}

func TestTrialBalanceRequest_ToQuery_HalfComparisonPeriod(t *testing.T) {
	req := validRequest()
	req.ComparisonFromDate = "2024-01-01"

	_, err := req.ToQuery()
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestTrialBalanceRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("accounts_chart", "IFRS")
	values.Set("from_date", "2025-01-01")
	values.Set("to_date", "2025-01-31")
	values.Set("ledgers", "L1, L2,")
	values.Set("level", "2")
	values.Set("with_sectorization", "true")

	req, err := TrialBalanceRequestFromQuery(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.BalanceType != string(domain.BalanceTypeTrialBalance) {
		t.Errorf("expected default balance type, got %q", req.BalanceType)
	}
	if len(req.Ledgers) != 2 || req.Ledgers[1] != "L2" {
		t.Errorf("unexpected ledgers: %v", req.Ledgers)
	}
	if req.Level != 2 || !req.WithSectorization {
		t.Errorf("unexpected request: %+v", req)
	}

	values.Set("level", "deep")
	if _, err := TrialBalanceRequestFromQuery(values); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestSaveRatesRequest(t *testing.T) {
	req := &SaveRatesRequest{
		Date:     "2025-01-31",
		RateType: "FIX",
		Rates: []RateItem{
			{FromCurrency: "USD", ToCurrency: "MXN", Value: decimal.RequireFromString("20.5")},
		},
	}
	if err := Validate(req); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !input.Date.Equal(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)) || len(input.Rates) != 1 {
		t.Errorf("unexpected input: %+v", input)
	}

	req.Rates[0].ToCurrency = "USD"
	if fields := FieldErrors(Validate(req)); fields["SaveRatesRequest.Rates[0].ToCurrency"] != "nefield=FromCurrency" {
		t.Errorf("expected same-currency rejection, got %v", fields)
	}

	req.Rates = nil
	if err := Validate(req); err == nil {
		t.Error("expected empty batch to fail validation")
	}
}
