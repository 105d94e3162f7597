// Package domain contains the core data types for the Trip Planner application.
// This package has zero external dependencies and is imported by every other
// internal package (migrate, repo, service, export, handler).
package domain

import "time"

// Currency is an ISO 4217 code. Trips created through the API use one of the
// supported codes below; legacy data may carry any string and it is kept
// verbatim.
type Currency string

const (
	CurrencyTWD Currency = "TWD"
	CurrencyJPY Currency = "JPY"
	CurrencyUSD Currency = "USD"
)

// DefaultCurrency is assigned to trips persisted before currency existed.
const DefaultCurrency = CurrencyUSD

// Supported reports whether c is one of the currencies a new trip may use.
func (c Currency) Supported() bool {
	switch c {
	case CurrencyTWD, CurrencyJPY, CurrencyUSD:
		return true
	}
	return false
}

// DateLayout is the ISO layout used for every stored date.
const DateLayout = "2006-01-02"

// Trip is the top-level aggregate: a journey with a date range, a currency,
// and one DaySchedule per calendar day.
type Trip struct {
	ID              string        `json:"id"`
	Destination     string        `json:"destination"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	Currency        Currency      `json:"currency"`
	Days            []DaySchedule `json:"days"`
	GeneralExpenses []Expense     `json:"generalExpenses"`
}

// DaySchedule is one calendar day of a trip.
// Activities keep user order; Journals are kept sorted by Timestamp.
type DaySchedule struct {
	Date       string         `json:"date"`
	Activities []Activity     `json:"activities"`
	Journals   []JournalEntry `json:"journals"`
}

// Day returns a pointer to the day at index, or nil when out of range.
func (t *Trip) Day(index int) *DaySchedule {
	if index < 0 || index >= len(t.Days) {
		return nil
	}
	return &t.Days[index]
}

// ApplyDefaults fills every slice the model guarantees to be present and
// gives currency-less expenses the trip's currency. It is safe to call on a
// trip that already satisfies the invariants.
func (t *Trip) ApplyDefaults() {
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	if t.Days == nil {
		t.Days = []DaySchedule{}
	}
	if t.GeneralExpenses == nil {
		t.GeneralExpenses = []Expense{}
	}
	for i := range t.GeneralExpenses {
		t.GeneralExpenses[i].ApplyDefaults(t.Currency)
	}
	for i := range t.Days {
		d := &t.Days[i]
		if d.Activities == nil {
			d.Activities = []Activity{}
		}
		if d.Journals == nil {
			d.Journals = []JournalEntry{}
		}
		for j := range d.Activities {
			d.Activities[j].ApplyDefaults(t.Currency)
		}
		for j := range d.Journals {
			d.Journals[j].ApplyDefaults()
		}
	}
}

// Clone returns a deep copy of t. Photos are strings and are shared safely.
func (t Trip) Clone() Trip {
	out := t
	if t.Days != nil {
		out.Days = make([]DaySchedule, len(t.Days))
		for i, d := range t.Days {
			out.Days[i] = d.Clone()
		}
	}
	out.GeneralExpenses = cloneExpenses(t.GeneralExpenses)
	return out
}

// Clone returns a deep copy of d.
func (d DaySchedule) Clone() DaySchedule {
	out := d
	if d.Activities != nil {
		out.Activities = make([]Activity, len(d.Activities))
		for i, a := range d.Activities {
			out.Activities[i] = a.Clone()
		}
	}
	if d.Journals != nil {
		out.Journals = make([]JournalEntry, len(d.Journals))
		for i, j := range d.Journals {
			out.Journals[i] = j.Clone()
		}
	}
	return out
}

// DatesBetween returns every ISO date from start to end inclusive.
// It returns nil when either date does not parse or end is before start.
func DatesBetween(start, end string) []string {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil || e.Before(s) {
		return nil
	}
	var out []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}
	return out
}
