// Package export renders a trip as a standalone, printable HTML document.
//
// The output embeds its own stylesheet (light and dark palettes plus a print
// layout) and references nothing external, so it can be saved and opened
// offline. Rendering has no side effects: the same trip, localizer and options
// always produce the same bytes.
package export

import (
	_ "embed"
	"html/template"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/i18n"
)

//go:embed trip.html.tmpl
var tripTemplateText string

var tripTemplate = template.Must(template.New("trip").Parse(tripTemplateText))

// Option configures a render.
type Option func(*options)

type options struct {
	generatedOn time.Time
}

// WithGeneratedOn stamps the footer with the date the document was produced.
// Without it the footer carries no date.
func WithGeneratedOn(t time.Time) Option {
	return func(o *options) { o.generatedOn = t }
}

type page struct {
	Lang          string
	Title         string
	Heading       string
	Meta          string
	TotalsHeading string
	Totals        []string
	NoExpenses    string
	General       *generalSection
	Days          []dayView
	Footer        string
}

type generalSection struct {
	Heading string
	Items   []generalItem
}

type generalItem struct {
	Label    string
	Amount   string
	Category string
}

type dayView struct {
	Heading    string
	Empty      string
	Activities []activityView
}

type activityView struct {
	Name     string
	Estimate string
	Address  string
	Notes    string
	Expenses []string
}

// TripToHTML renders trip as a complete HTML document in loc's language.
func TripToHTML(trip domain.Trip, loc i18n.Localizer, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tripCur := tripCurrency(trip)
	p := page{
		Lang:          loc.Lang(),
		Title:         trip.Destination + " - " + loc.T("export.itinerary"),
		Heading:       loc.T("export.titlePrefix") + trip.Destination,
		Meta:          loc.T("export.datePrefix") + loc.LongDate(trip.StartDate) + " - " + loc.LongDate(trip.EndDate),
		TotalsHeading: loc.T("finance.totalActual"),
		NoExpenses:    loc.T("modal.noExpenses"),
		Footer:        loc.T("export.generatedBy"),
	}
	if !o.generatedOn.IsZero() {
		p.Footer += " " + loc.LongDate(o.generatedOn.Format(domain.DateLayout))
	}

	for _, t := range sum(trip) {
		p.Totals = append(p.Totals, formatDecimal(t.amount, t.currency))
	}

	if len(trip.GeneralExpenses) > 0 {
		g := &generalSection{Heading: loc.T("finance.view.all") + " " + loc.T("finance.finances")}
		for _, e := range trip.GeneralExpenses {
			g.Items = append(g.Items, generalItem{
				Label:    expenseLabel(loc, e),
				Amount:   FormatCurrency(e.Amount, expenseCurrency(e, tripCur)),
				Category: categoryLabel(loc, e.Category),
			})
		}
		p.General = g
	}

	for i, d := range trip.Days {
		day := dayView{
			Heading: loc.Day(i+1) + ": " + loc.LongDate(d.Date),
			Empty:   loc.T("trip.emptyActivities"),
		}
		for _, a := range d.Activities {
			av := activityView{Name: a.Name, Address: a.Address, Notes: a.Notes}
			if a.EstimatedCost != 0 {
				av.Estimate = loc.T("export.estimate") + " " + FormatCurrency(a.EstimatedCost, tripCur)
			}
			for _, e := range a.Expenses {
				av.Expenses = append(av.Expenses,
					expenseLabel(loc, e)+": "+FormatCurrency(e.Amount, expenseCurrency(e, tripCur)))
			}
			day.Activities = append(day.Activities, av)
		}
		p.Days = append(p.Days, day)
	}

	var b strings.Builder
	if err := tripTemplate.Execute(&b, p); err != nil {
		// The view model only holds strings and slices of them; Execute
		// cannot fail on it short of a template defect.
		panic(err)
	}
	return b.String()
}

func expenseLabel(loc i18n.Localizer, e domain.Expense) string {
	if e.Name != "" {
		return e.Name
	}
	return categoryLabel(loc, e.Category)
}

func categoryLabel(loc i18n.Localizer, c domain.Category) string {
	if c == "" {
		c = domain.CategoryOther
	}
	return loc.T("cat." + string(c))
}
