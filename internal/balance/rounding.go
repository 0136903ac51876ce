package balance

import (
	"github.com/iho/gotrialbalance/internal/domain"
)

const (
	// AmountPlaces is the precision of every reported amount.
	AmountPlaces = 2
	// RatePlaces is the precision of reported exchange rates.
	RatePlaces = 6
)

// roundEntry rounds amounts half away from zero. It is the only place where
// rounding happens.
func roundEntry(e *domain.BalanceEntry) {
	e.InitialBalance = e.InitialBalance.Round(AmountPlaces)
	e.Debit = e.Debit.Round(AmountPlaces)
	e.Credit = e.Credit.Round(AmountPlaces)
	e.Recalculate()

	e.ExchangeRate = e.ExchangeRate.Round(RatePlaces)
	e.SecondExchangeRate = e.SecondExchangeRate.Round(RatePlaces)
	e.ValuedBalance = e.ValuedBalance.Round(AmountPlaces)
	e.ValuedEffect = e.ValuedEffect.Round(AmountPlaces)
	e.DomesticBalance = e.DomesticBalance.Round(AmountPlaces)
	e.ForeignBalance = e.ForeignBalance.Round(AmountPlaces)
	e.ComparisonBalance = e.ComparisonBalance.Round(AmountPlaces)
	e.Variation = e.Variation.Round(AmountPlaces)

	if e.Monthly != nil {
		for i := range e.Monthly.Months {
			e.Monthly.Months[i] = e.Monthly.Months[i].Round(AmountPlaces)
		}
		e.Monthly.Accumulated = e.Monthly.Accumulated.Round(AmountPlaces)
	}
}
