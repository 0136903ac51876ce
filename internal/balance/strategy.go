package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/gotrialbalance/internal/domain"
)

// Strategy adapts the single aggregation algorithm to one report variant.
type Strategy interface {
	// Prepare returns the query the engine must run for the variant.
	Prepare(query domain.BalanceQuery) domain.BalanceQuery
	// Enrich adds variant columns to account rows before assembly. The
	// valuator is nil when the query does not value balances.
	Enrich(ctx context.Context, valuator *Valuator, rows []*domain.BalanceEntry) error
	// PostProcess shapes the assembled balance.
	PostProcess(tb *TrialBalance) (*TrialBalance, error)
}

// PeriodComparer is implemented by strategies that need the balance of the
// query's comparison period.
type PeriodComparer interface {
	Compare(current, previous *TrialBalance) (*TrialBalance, error)
}

// baseStrategy is the identity strategy.
type baseStrategy struct{}

func (baseStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery { return q }

func (baseStrategy) Enrich(context.Context, *Valuator, []*domain.BalanceEntry) error { return nil }

func (baseStrategy) PostProcess(tb *TrialBalance) (*TrialBalance, error) { return tb, nil }

// TrialBalanceStrategy is the ordinary balance (Balanza).
type TrialBalanceStrategy struct{ baseStrategy }

// CascadeStrategy shows per-ledger breakdowns.
type CascadeStrategy struct{ baseStrategy }

func (CascadeStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.ShowCascadeBalances = true
	return q
}

// DollarizedCurrency is the default target of dollarized balances.
const DollarizedCurrency = "USD"

// DollarizedStrategy consolidates every balance into US dollars.
type DollarizedStrategy struct{ baseStrategy }

func (DollarizedStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.ValuateBalances = true
	q.ConsolidateBalancesToTargetCurrency = true
	if q.TargetCurrency == "" {
		q.TargetCurrency = DollarizedCurrency
	}
	return q
}

// ValorizedComparativeStrategy values foreign balances and reports the
// effect of the rate change against the end of the previous month.
type ValorizedComparativeStrategy struct{ baseStrategy }

func (ValorizedComparativeStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.ValuateBalances = true
	q.ReportValuedEffect = true
	return q
}

// ValorizedEstimationStrategy values each balance with the closing rate of
// every month in the period and adds an accumulated column.
type ValorizedEstimationStrategy struct{ baseStrategy }

func (ValorizedEstimationStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.ValuateBalances = true
	q.ConsolidateBalancesToTargetCurrency = false
	return q
}

func (ValorizedEstimationStrategy) Enrich(ctx context.Context, v *Valuator, rows []*domain.BalanceEntry) error {
	if v == nil || len(rows) == 0 {
		return nil
	}
	months, err := periodMonths(v.period)
	if err != nil {
		return err
	}

	for _, row := range rows {
		monthly := &domain.MonthlyColumns{}
		for _, closing := range months {
			rate, err := v.RateAt(ctx, row.CurrencyCode, closing)
			if err != nil {
				return err
			}
			valued := row.CurrentBalance.Mul(rate)
			monthly.Set(closing.Month(), valued)
			monthly.Accumulated = monthly.Accumulated.Add(valued)
		}
		row.Monthly = monthly
	}
	return nil
}

// periodMonths returns the closing date of each month of the period, the
// last one clipped to the end of the period.
func periodMonths(period domain.DateRange) ([]time.Time, error) {
	from := domain.TruncateDay(period.From)
	to := domain.TruncateDay(period.To)

	span := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
	if span > 12 {
		return nil, &domain.InvalidQueryError{Field: "period", Reason: "monthly valuation spans more than 12 months"}
	}

	out := make([]time.Time, 0, span)
	for m := 0; m < span; m++ {
		closing := domain.EndOfMonth(time.Date(from.Year(), from.Month()+time.Month(m), 1, 0, 0, 0, 0, time.UTC))
		if closing.After(to) {
			closing = to
		}
		out = append(out, closing)
	}
	return out, nil
}

// AnalyticByAccountStrategy consolidates every account into the target
// currency while splitting domestic and foreign currency balances.
type AnalyticByAccountStrategy struct{ baseStrategy }

func (AnalyticByAccountStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.ValuateBalances = true
	q.ConsolidateBalancesToTargetCurrency = true
	return q
}

// BalancesByAccountStrategy lists posting accounts with currency and
// consolidated totals only.
type BalancesByAccountStrategy struct{ baseStrategy }

func (BalancesByAccountStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.HidePostingEntries = false
	return q
}

func (BalancesByAccountStrategy) PostProcess(tb *TrialBalance) (*TrialBalance, error) {
	return keepRows(tb, func(e *domain.BalanceEntry) bool {
		switch e.ItemType {
		case domain.ItemTypeEntry, domain.ItemTypeTotalCurrency, domain.ItemTypeBalanceTotalConsolidated:
			return true
		}
		return false
	}), nil
}

// BalancesBySubledgerAccountStrategy lists subledger accounts under their
// parent posting entries.
type BalancesBySubledgerAccountStrategy struct{ baseStrategy }

func (BalancesBySubledgerAccountStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.WithSubledgerAccount = true
	q.HidePostingEntries = false
	return q
}

func (BalancesBySubledgerAccountStrategy) PostProcess(tb *TrialBalance) (*TrialBalance, error) {
	return keepRows(tb, func(e *domain.BalanceEntry) bool {
		switch e.ItemType {
		case domain.ItemTypeEntry:
			return e.IsParentPostingEntry || e.HasParentPostingEntry
		case domain.ItemTypeTotalCurrency, domain.ItemTypeBalanceTotalConsolidated:
			return true
		}
		return false
	}), nil
}

// SATMaxLevel is the deepest account level reported to the tax authority.
const SATMaxLevel = 2

// SATBalanceStrategy is the regulatory balance: consolidated into the base
// currency at the official rate, two account levels, no sector or ledger detail.
type SATBalanceStrategy struct{ baseStrategy }

func (SATBalanceStrategy) Prepare(q domain.BalanceQuery) domain.BalanceQuery {
	q.ValuateBalances = true
	q.ConsolidateBalancesToTargetCurrency = true
	q.UseDefaultValuation = true
	q.TargetCurrency = ""
	q.WithSectorization = false
	q.WithSubledgerAccount = false
	q.ShowCascadeBalances = false
	q.ReportValuedEffect = false
	if q.Level == 0 || q.Level > SATMaxLevel {
		q.Level = SATMaxLevel
	}
	return q
}

var strategies = map[domain.BalanceType]Strategy{
	domain.BalanceTypeTrialBalance:               TrialBalanceStrategy{},
	domain.BalanceTypeCascadeTrialBalance:        CascadeStrategy{},
	domain.BalanceTypeDollarizedTrialBalance:     DollarizedStrategy{},
	domain.BalanceTypeValorizedComparative:       ValorizedComparativeStrategy{},
	domain.BalanceTypeValorizedEstimation:        ValorizedEstimationStrategy{},
	domain.BalanceTypeAnalyticByAccount:          AnalyticByAccountStrategy{},
	domain.BalanceTypeBalancesByAccount:          BalancesByAccountStrategy{},
	domain.BalanceTypeBalancesBySubledgerAccount: BalancesBySubledgerAccountStrategy{},
	domain.BalanceTypeSATBalance:                 SATBalanceStrategy{},
	domain.BalanceTypeComparativeTrialBalance:    ComparativeStrategy{},
}

// StrategyFor returns the strategy of a balance type.
func StrategyFor(t domain.BalanceType) (Strategy, error) {
	s, ok := strategies[t]
	if !ok {
		return nil, &domain.InvalidQueryError{Field: "balance_type", Reason: fmt.Sprintf("%q is not supported", t)}
	}
	return s, nil
}

func keepRows(tb *TrialBalance, keep func(*domain.BalanceEntry) bool) *TrialBalance {
	out := *tb
	out.Entries = make([]*domain.BalanceEntry, 0, len(tb.Entries))
	for _, e := range tb.Entries {
		if keep(e) {
			out.Entries = append(out.Entries, e)
		}
	}
	return &out
}
