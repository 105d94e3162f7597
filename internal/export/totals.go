package export

import (
	"github.com/shopspring/decimal"

	"github.com/pkordes/trip-planner/internal/domain"
)

var currencySymbols = map[domain.Currency]string{
	domain.CurrencyTWD: "NT$",
	domain.CurrencyJPY: "¥",
	domain.CurrencyUSD: "$",
}

// Symbol returns the display symbol for c, or the code itself when c has none.
func Symbol(c domain.Currency) string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// FormatCurrency renders amount as "<symbol> <amount>" with two decimals,
// e.g. "NT$ 1500.00".
func FormatCurrency(amount float64, c domain.Currency) string {
	return formatDecimal(decimal.NewFromFloat(amount), c)
}

func formatDecimal(amount decimal.Decimal, c domain.Currency) string {
	return Symbol(c) + " " + amount.StringFixed(2)
}

type total struct {
	currency domain.Currency
	amount   decimal.Decimal
}

// Totals sums every expense of trip, general expenses first and then each
// activity's in day order, grouped by currency. Currencies appear in the
// order they are first seen. An expense without a currency counts toward the
// trip's, and a trip without one toward USD.
func Totals(trip domain.Trip) []domain.CurrencyTotal {
	sums := sum(trip)
	out := make([]domain.CurrencyTotal, len(sums))
	for i, t := range sums {
		out[i] = domain.CurrencyTotal{
			Currency: t.currency,
			Amount:   t.amount.Round(2).InexactFloat64(),
		}
	}
	return out
}

func sum(trip domain.Trip) []total {
	tripCur := tripCurrency(trip)
	var out []total
	add := func(e domain.Expense) {
		c := expenseCurrency(e, tripCur)
		amt := decimal.NewFromFloat(e.Amount)
		for i := range out {
			if out[i].currency == c {
				out[i].amount = out[i].amount.Add(amt)
				return
			}
		}
		out = append(out, total{currency: c, amount: amt})
	}

	for _, e := range trip.GeneralExpenses {
		add(e)
	}
	for _, d := range trip.Days {
		for _, a := range d.Activities {
			for _, e := range a.Expenses {
				add(e)
			}
		}
	}
	return out
}

func tripCurrency(trip domain.Trip) domain.Currency {
	if trip.Currency == "" {
		return domain.DefaultCurrency
	}
	return trip.Currency
}

func expenseCurrency(e domain.Expense, tripCur domain.Currency) domain.Currency {
	if e.Currency == "" {
		return tripCur
	}
	return e.Currency
}
