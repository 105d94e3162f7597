package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/export"
	"github.com/pkordes/trip-planner/internal/i18n"
)

// TripGetter looks up a single trip.
type TripGetter interface {
	GetTrip(id string) (domain.Trip, bool)
}

// LocaleSource supplies the current UI language.
type LocaleSource interface {
	Lang() string
}

// ExportService produces the per-currency totals and the printable HTML
// itinerary of a trip.
type ExportService struct {
	trips  TripGetter
	locale LocaleSource
	now    func() time.Time
}

// NewExportService constructs an ExportService. locale supplies the language
// used when a request does not name one.
func NewExportService(trips TripGetter, locale LocaleSource) *ExportService {
	return &ExportService{trips: trips, locale: locale, now: time.Now}
}

// Totals returns the trip's spending per currency in first-seen order.
func (s *ExportService) Totals(_ context.Context, tripID string) ([]domain.CurrencyTotal, error) {
	trip, ok := s.trips.GetTrip(tripID)
	if !ok {
		return nil, fmt.Errorf("service.ExportService.Totals: trip %s: %w", tripID, domain.ErrNotFound)
	}
	return export.Totals(trip), nil
}

// HTML renders the trip as a standalone HTML document. An empty lang uses the
// current UI language; any other value is normalized to "en" or "zh".
func (s *ExportService) HTML(_ context.Context, tripID, lang string) (string, error) {
	trip, ok := s.trips.GetTrip(tripID)
	if !ok {
		return "", fmt.Errorf("service.ExportService.HTML: trip %s: %w", tripID, domain.ErrNotFound)
	}
	if lang == "" {
		lang = s.locale.Lang()
	}
	return export.TripToHTML(trip, i18n.For(lang), export.WithGeneratedOn(s.now())), nil
}
