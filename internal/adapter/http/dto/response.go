package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/balance"
	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Kind    string            `json:"kind,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// BalanceEntryResponse represents one trial balance row.
type BalanceEntryResponse struct {
	ItemType         domain.ItemType      `json:"item_type"`
	AccountNumber    string               `json:"account_number,omitempty"`
	AccountName      string               `json:"account_name,omitempty"`
	AccountType      string               `json:"account_type,omitempty"`
	Nature           domain.AccountNature `json:"nature,omitempty"`
	Level            int                  `json:"level"`
	SectorCode       string               `json:"sector_code,omitempty"`
	CurrencyCode     string               `json:"currency_code,omitempty"`
	SubledgerAccount string               `json:"subledger_account,omitempty"`
	LedgerUID        string               `json:"ledger_uid,omitempty"`
	GroupNumber      string               `json:"group_number,omitempty"`

	InitialBalance decimal.Decimal `json:"initial_balance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	CurrentBalance decimal.Decimal `json:"current_balance"`

	ExchangeRate       *decimal.Decimal `json:"exchange_rate,omitempty"`
	SecondExchangeRate *decimal.Decimal `json:"second_exchange_rate,omitempty"`
	ValuedBalance      *decimal.Decimal `json:"valued_balance,omitempty"`
	ValuedEffect       *decimal.Decimal `json:"valued_effect,omitempty"`

	DomesticBalance   *decimal.Decimal `json:"domestic_balance,omitempty"`
	ForeignBalance    *decimal.Decimal `json:"foreign_balance,omitempty"`
	ComparisonBalance *decimal.Decimal `json:"comparison_balance,omitempty"`
	Variation         *decimal.Decimal `json:"variation,omitempty"`

	Monthly map[string]decimal.Decimal `json:"monthly,omitempty"`

	LastChangeDate *time.Time `json:"last_change_date,omitempty"`
}

// BalanceEntryFromDomain converts a balance row to response.
func BalanceEntryFromDomain(e *domain.BalanceEntry, query domain.BalanceQuery) *BalanceEntryResponse {
	resp := &BalanceEntryResponse{
		ItemType:         e.ItemType,
		AccountNumber:    e.AccountNumber,
		AccountName:      e.AccountName,
		AccountType:      e.AccountType,
		Nature:           e.Nature,
		Level:            e.Level,
		SectorCode:       e.SectorCode,
		CurrencyCode:     e.CurrencyCode,
		SubledgerAccount: e.SubledgerAccount,
		LedgerUID:        e.LedgerUID,
		GroupNumber:      e.GroupNumber,
		InitialBalance:   e.InitialBalance,
		Debit:            e.Debit,
		Credit:           e.Credit,
		CurrentBalance:   e.CurrentBalance,
	}

	if e.Valuated {
		resp.ExchangeRate = ptr(e.ExchangeRate)
		resp.ValuedBalance = ptr(e.ValuedBalance)
		if !e.SecondExchangeRate.IsZero() {
			resp.SecondExchangeRate = ptr(e.SecondExchangeRate)
		}
		if query.ReportValuedEffect {
			resp.ValuedEffect = ptr(e.ValuedEffect)
		}
	}

	switch query.BalanceType {
	case domain.BalanceTypeAnalyticByAccount:
		resp.DomesticBalance = ptr(e.DomesticBalance)
		resp.ForeignBalance = ptr(e.ForeignBalance)
	case domain.BalanceTypeComparativeTrialBalance, domain.BalanceTypeValorizedComparative:
		resp.ComparisonBalance = ptr(e.ComparisonBalance)
		resp.Variation = ptr(e.Variation)
	}

	if e.Monthly != nil {
		resp.Monthly = make(map[string]decimal.Decimal, 13)
		for m := time.January; m <= time.December; m++ {
			if v, ok := e.Monthly.Get(m); ok {
				resp.Monthly[m.String()] = v
			}
		}
		resp.Monthly["Accumulated"] = e.Monthly.Accumulated
	}

	if !e.LastChangeDate.IsZero() {
		d := e.LastChangeDate
		resp.LastChangeDate = &d
	}

	return resp
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// ReconciliationSummary is the reconciliation block of a balance response.
type ReconciliationSummary struct {
	LeafTotal     decimal.Decimal `json:"leaf_total"`
	DebtorTotal   decimal.Decimal `json:"debtor_total"`
	CreditorTotal decimal.Decimal `json:"creditor_total"`
	Consolidated  decimal.Decimal `json:"consolidated"`
	Difference    decimal.Decimal `json:"difference"`
}

// TrialBalanceResponse represents a computed trial balance.
type TrialBalanceResponse struct {
	AccountsChart  string                  `json:"accounts_chart"`
	BalanceType    domain.BalanceType      `json:"balance_type"`
	FromDate       string                  `json:"from_date"`
	ToDate         string                  `json:"to_date"`
	TargetCurrency string                  `json:"target_currency,omitempty"`
	Entries        []*BalanceEntryResponse `json:"entries"`
	Reconciliation ReconciliationSummary   `json:"reconciliation"`
}

// TrialBalanceFromDomain converts a computed trial balance to response.
func TrialBalanceFromDomain(tb *balance.TrialBalance) *TrialBalanceResponse {
	entries := make([]*BalanceEntryResponse, len(tb.Entries))
	for i, e := range tb.Entries {
		entries[i] = BalanceEntryFromDomain(e, tb.Query)
	}

	return &TrialBalanceResponse{
		AccountsChart:  tb.Query.AccountsChart,
		BalanceType:    tb.Query.BalanceType,
		FromDate:       tb.Query.Period.From.Format(domain.DateLayout),
		ToDate:         tb.Query.Period.To.Format(domain.DateLayout),
		TargetCurrency: tb.TargetCurrency,
		Entries:        entries,
		Reconciliation: ReconciliationSummary{
			LeafTotal:     tb.Reconciliation.LeafTotal,
			DebtorTotal:   tb.Reconciliation.DebtorTotal,
			CreditorTotal: tb.Reconciliation.CreditorTotal,
			Consolidated:  tb.Reconciliation.Consolidated,
			Difference:    tb.Reconciliation.Difference,
		},
	}
}

// ExchangeRateResponse represents an exchange rate in API responses.
type ExchangeRateResponse struct {
	UID          string          `json:"uid"`
	Date         string          `json:"date"`
	RateType     string          `json:"rate_type"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Value        decimal.Decimal `json:"value"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// ExchangeRateFromDomain converts a domain rate to response.
func ExchangeRateFromDomain(r *domain.ExchangeRate) *ExchangeRateResponse {
	resp := &ExchangeRateResponse{
		UID:          r.UID,
		Date:         r.Date.Format(domain.DateLayout),
		RateType:     r.RateType,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Value:        r.Value,
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// ExchangeRatesFromDomain converts domain rates to responses.
func ExchangeRatesFromDomain(rates []*domain.ExchangeRate) []*ExchangeRateResponse {
	result := make([]*ExchangeRateResponse, len(rates))
	for i, r := range rates {
		result[i] = ExchangeRateFromDomain(r)
	}
	return result
}

// ReconciliationResponse represents the outcome of a reconciliation check.
type ReconciliationResponse struct {
	AccountsChart string             `json:"accounts_chart"`
	BalanceType   domain.BalanceType `json:"balance_type"`
	FromDate      string             `json:"from_date"`
	ToDate        string             `json:"to_date"`
	IsReconciled  bool               `json:"is_reconciled"`
	FailedCheck   string             `json:"failed_check,omitempty"`
	LeafTotal     decimal.Decimal    `json:"leaf_total"`
	DebtorTotal   decimal.Decimal    `json:"debtor_total"`
	CreditorTotal decimal.Decimal    `json:"creditor_total"`
	Consolidated  decimal.Decimal    `json:"consolidated"`
	Difference    decimal.Decimal    `json:"difference"`
	CheckedAt     time.Time          `json:"checked_at"`
}

// ReconciliationFromUseCase converts a reconciliation result to response.
func ReconciliationFromUseCase(r *usecase.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		AccountsChart: r.AccountsChart,
		BalanceType:   r.BalanceType,
		FromDate:      r.Period.From.Format(domain.DateLayout),
		ToDate:        r.Period.To.Format(domain.DateLayout),
		IsReconciled:  r.IsReconciled,
		FailedCheck:   r.FailedCheck,
		LeafTotal:     r.LeafTotal,
		DebtorTotal:   r.DebtorTotal,
		CreditorTotal: r.CreditorTotal,
		Consolidated:  r.Consolidated,
		Difference:    r.Difference,
		CheckedAt:     r.LastChecked,
	}
}
