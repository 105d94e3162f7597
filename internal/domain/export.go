package domain

// CurrencyTotal is the summed amount of every expense recorded in one currency.
// Amount is already rounded to two decimal places.
type CurrencyTotal struct {
	Currency Currency `json:"currency"`
	Amount   float64  `json:"amount"`
}
