// Package migrate upgrades persisted trip data of any earlier shape into the
// current domain model.
//
// The input is the loosely-typed value produced by decoding JSON into an any
// (maps, slices, float64, string, bool, nil). Migration is total: it never
// panics and never fails for a decoded value. Fields that are missing or have
// the wrong type are defaulted. Only values that cannot be a trip at all (a
// top-level value that is not an array, or array elements that are not
// objects) are dropped.
//
// Migration is also idempotent: feeding the output back in, after a JSON round
// trip, yields the same trips. The legacy shapes it understands are:
//
//   - a trip without currency (becomes USD);
//   - a day with a singular "journal" object and no (or a null) "journals" list;
//   - a journal entry without "photos";
//   - an activity with "actualCost"/"category" and no (or a null) "expenses" list;
//   - an expense without "currency" (inherits the trip's).
package migrate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Option configures a migration run.
type Option func(*migrator)

// WithIDFunc replaces the ID generator used for records synthesized from
// legacy fields and for records that were persisted without an id.
func WithIDFunc(fn func() string) Option {
	return func(m *migrator) { m.newID = fn }
}

type migrator struct {
	newID func() string
}

// Decode parses data as JSON and migrates the result. Empty or whitespace-only
// input is an empty collection. A syntax error is returned unchanged so the
// caller can decide what to do with unreadable data.
func Decode(data []byte, opts ...Option) ([]domain.Trip, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Trip{}, nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("migrate.Decode: %w", err)
	}
	return Trips(raw, opts...), nil
}

// Trips normalizes a decoded trip collection. It never modifies raw.
func Trips(raw any, opts ...Option) []domain.Trip {
	m := &migrator{newID: uuid.NewString}
	for _, opt := range opts {
		opt(m)
	}

	items, _ := raw.([]any)
	out := make([]domain.Trip, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, m.trip(obj))
	}
	return out
}

func (m *migrator) trip(obj map[string]any) domain.Trip {
	t := domain.Trip{
		ID:          m.idOrNew(obj),
		Destination: str(obj, "destination"),
		StartDate:   str(obj, "startDate"),
		EndDate:     str(obj, "endDate"),
		Currency:    domain.Currency(str(obj, "currency")),
	}
	if t.Currency == "" {
		t.Currency = domain.DefaultCurrency
	}

	days := list(obj, "days")
	t.Days = make([]domain.DaySchedule, 0, len(days))
	for _, d := range days {
		dayObj, ok := d.(map[string]any)
		if !ok {
			// A day slot must stay index-aligned with the date range, so a
			// garbled day is kept as an empty one rather than dropped.
			dayObj = map[string]any{}
		}
		t.Days = append(t.Days, m.day(dayObj, t.Currency))
	}

	general := list(obj, "generalExpenses")
	t.GeneralExpenses = make([]domain.Expense, 0, len(general))
	for _, e := range general {
		if eObj, ok := e.(map[string]any); ok {
			t.GeneralExpenses = append(t.GeneralExpenses, m.expense(eObj, t.Currency))
		}
	}
	return t
}

func (m *migrator) day(obj map[string]any, currency domain.Currency) domain.DaySchedule {
	d := domain.DaySchedule{Date: str(obj, "date")}

	acts := list(obj, "activities")
	d.Activities = make([]domain.Activity, 0, len(acts))
	for _, a := range acts {
		if aObj, ok := a.(map[string]any); ok {
			d.Activities = append(d.Activities, m.activity(aObj, currency, d.Date))
		}
	}

	if obj["journals"] != nil {
		entries := list(obj, "journals")
		d.Journals = make([]domain.JournalEntry, 0, len(entries))
		for _, e := range entries {
			if eObj, ok := e.(map[string]any); ok {
				d.Journals = append(d.Journals, m.journal(eObj))
			}
		}
	} else {
		d.Journals = []domain.JournalEntry{}
		if legacy, ok := obj["journal"].(map[string]any); ok {
			content, location := str(legacy, "content"), str(legacy, "location")
			if content != "" || location != "" {
				d.Journals = append(d.Journals, domain.JournalEntry{
					ID:        m.newID(),
					Timestamp: domain.DefaultJournalTimestamp,
					Content:   content,
					Weather:   domain.Weather(str(legacy, "weather")),
					Location:  location,
					Photos:    []string{},
				})
			}
		}
	}
	domain.SortJournals(d.Journals)
	return d
}

func (m *migrator) activity(obj map[string]any, currency domain.Currency, date string) domain.Activity {
	a := domain.Activity{
		ID:            m.idOrNew(obj),
		Name:          str(obj, "name"),
		Address:       str(obj, "address"),
		Lat:           num(obj, "lat"),
		Lng:           num(obj, "lng"),
		EstimatedCost: num(obj, "estimatedCost"),
		TransportType: domain.TransportType(str(obj, "transportType")),
		Notes:         str(obj, "notes"),
		Completed:     boolean(obj, "completed"),
	}

	if obj["expenses"] != nil {
		entries := list(obj, "expenses")
		a.Expenses = make([]domain.Expense, 0, len(entries))
		for _, e := range entries {
			if eObj, ok := e.(map[string]any); ok {
				a.Expenses = append(a.Expenses, m.expense(eObj, currency))
			}
		}
		return a
	}

	a.Expenses = []domain.Expense{}
	if cost := num(obj, "actualCost"); cost != 0 {
		category := domain.Category(str(obj, "category"))
		if category == "" {
			category = domain.CategoryOther
		}
		a.Expenses = append(a.Expenses, domain.Expense{
			ID:       m.newID(),
			Amount:   cost,
			Category: category,
			Date:     date,
			Currency: currency,
		})
	}
	return a
}

// expense normalizes one expense. Only the currency is defaulted; a missing
// category is shown as "other" at display time rather than rewritten here.
func (m *migrator) expense(obj map[string]any, currency domain.Currency) domain.Expense {
	e := domain.Expense{
		ID:       m.idOrNew(obj),
		Amount:   num(obj, "amount"),
		Category: domain.Category(str(obj, "category")),
		Date:     str(obj, "date"),
		Currency: domain.Currency(str(obj, "currency")),
		Name:     str(obj, "name"),
	}
	e.ApplyDefaults(currency)
	return e
}

func (m *migrator) journal(obj map[string]any) domain.JournalEntry {
	j := domain.JournalEntry{
		ID:        m.idOrNew(obj),
		Timestamp: str(obj, "timestamp"),
		Content:   str(obj, "content"),
		Weather:   domain.Weather(str(obj, "weather")),
		Location:  str(obj, "location"),
	}
	photos := list(obj, "photos")
	j.Photos = make([]string, 0, len(photos))
	for _, p := range photos {
		if s, ok := p.(string); ok {
			j.Photos = append(j.Photos, s)
		}
	}
	return j
}

func (m *migrator) idOrNew(obj map[string]any) string {
	if id := str(obj, "id"); id != "" {
		return id
	}
	return m.newID()
}
