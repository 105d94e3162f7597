// Package handler implements the HTTP handlers for the Trip Planner API.
// All handlers are methods on Server. They are split into resource-specific
// files (health.go, trip.go, itinerary.go, export.go, locale.go) but share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the repository or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// ItineraryServicer defines the nested activity, expense and journal
// operations.
type ItineraryServicer interface {
	AddActivity(ctx context.Context, tripID string, dayIndex int, a domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, tripID string, dayIndex int, a domain.Activity) (domain.Activity, error)
	RemoveActivity(ctx context.Context, tripID string, dayIndex, index int) error
	SetActivityCompleted(ctx context.Context, tripID string, dayIndex int, activityID string, completed bool) error

	AddExpense(ctx context.Context, tripID string, dayIndex int, activityID string, e domain.Expense) (domain.Expense, error)
	UpdateExpense(ctx context.Context, tripID string, dayIndex int, activityID string, e domain.Expense) (domain.Expense, error)
	RemoveExpense(ctx context.Context, tripID string, dayIndex int, activityID, expenseID string) error
	AddGeneralExpense(ctx context.Context, tripID string, e domain.Expense) (domain.Expense, error)
	UpdateGeneralExpense(ctx context.Context, tripID string, e domain.Expense) (domain.Expense, error)
	RemoveGeneralExpense(ctx context.Context, tripID, expenseID string) error

	AddJournalEntry(ctx context.Context, tripID string, dayIndex int, entry domain.JournalEntry) (domain.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, tripID string, dayIndex int, entry domain.JournalEntry) (domain.JournalEntry, error)
	RemoveJournalEntry(ctx context.Context, tripID string, dayIndex int, entryID string) error
}

// ExportServicer produces totals and the HTML itinerary.
type ExportServicer interface {
	Totals(ctx context.Context, tripID string) ([]domain.CurrencyTotal, error)
	HTML(ctx context.Context, tripID, lang string) (string, error)
}

// LocaleServicer reads and changes the persisted UI language.
// *i18n.LocaleStore satisfies it.
type LocaleServicer interface {
	Lang() string
	Set(ctx context.Context, lang string) (string, error)
	Toggle(ctx context.Context) (string, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	trips     TripServicer
	itinerary ItineraryServicer
	exports   ExportServicer
	locale    LocaleServicer
	log       *slog.Logger
	validate  *validator.Validate
}

// Services groups the dependencies passed to NewServer. Tests that exercise a
// single resource may leave the other fields nil.
type Services struct {
	Trips     TripServicer
	Itinerary ItineraryServicer
	Exports   ExportServicer
	Locale    LocaleServicer
}

// NewServer constructs the Server. A nil log uses slog.Default().
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:     svc.Trips,
		itinerary: svc.Itinerary,
		exports:   svc.Exports,
		locale:    svc.Locale,
		log:       log,
		validate:  newValidator(),
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Services{}, nil)
}

// Routes returns a chi router serving every API endpoint. Cross-cutting
// middleware (logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/totals", s.GetTotals)
			r.Get("/export", s.ExportTrip)

			r.Post("/expenses", s.AddGeneralExpense)
			r.Put("/expenses", s.UpdateGeneralExpense)
			r.Delete("/expenses/{expenseID}", s.RemoveGeneralExpense)

			r.Route("/days/{dayIndex}", func(r chi.Router) {
				r.Post("/activities", s.AddActivity)
				r.Put("/activities", s.UpdateActivity)
				// {activity} is a position for DELETE and an id below it.
				r.Delete("/activities/{activity}", s.RemoveActivity)
				r.Put("/activities/{activity}/completed", s.SetActivityCompleted)
				r.Post("/activities/{activity}/expenses", s.AddExpense)
				r.Put("/activities/{activity}/expenses", s.UpdateExpense)
				r.Delete("/activities/{activity}/expenses/{expenseID}", s.RemoveExpense)

				r.Post("/journals", s.AddJournalEntry)
				r.Put("/journals", s.UpdateJournalEntry)
				r.Delete("/journals/{entryID}", s.RemoveJournalEntry)
			})
		})
	})

	r.Get("/locale", s.GetLocale)
	r.Put("/locale", s.SetLocale)
	r.Post("/locale/toggle", s.ToggleLocale)
	return r
}
