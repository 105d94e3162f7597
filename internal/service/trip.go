// Package service contains the business logic for the Trip Planner API.
// Services validate inputs, generate ids and day schedules, and turn a
// repository miss into domain.ErrNotFound. They depend on small interfaces
// satisfied by *repo.TripRepo, never on the repository type itself.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripRepository is the trip-level part of the repository.
type TripRepository interface {
	Trips() []domain.Trip
	GetTrip(id string) (domain.Trip, bool)
	AddTrip(trip domain.Trip) bool
	UpdateTrip(trip domain.Trip) bool
	RemoveTrip(id string) bool
}

// TripService implements business logic for Trip operations.
type TripService struct {
	repo  TripRepository
	newID func() string
}

// NewTripService constructs a TripService backed by the provided repository.
func NewTripService(r TripRepository) *TripService {
	return &TripService{repo: r, newID: uuid.NewString}
}

// Create validates trip, assigns it a fresh id and one empty day per date in
// its range, and stores it. Any id or days supplied by the caller are ignored.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	dates, err := validateTrip(&trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip.ID = s.newID()
	trip.Days = alignDays(dates, nil)
	trip.GeneralExpenses = []domain.Expense{}
	if !s.repo.AddTrip(trip) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: trip %s already exists", trip.ID)
	}
	return s.GetByID(ctx, trip.ID)
}

// GetByID returns a single trip by id.
func (s *TripService) GetByID(_ context.Context, id string) (domain.Trip, error) {
	trip, ok := s.repo.GetTrip(id)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: trip %s: %w", id, domain.ErrNotFound)
	}
	return trip, nil
}

// List returns one page of trips in creation order and the total count.
func (s *TripService) List(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int, error) {
	all := s.repo.Trips()
	return domain.Paginate(all, p), len(all), nil
}

// Update validates trip and replaces the stored trip with the same id.
// The day list is rebuilt for the (possibly changed) date range: each date
// keeps the matching day from trip.Days, or from the stored trip when
// trip.Days is nil, and dates without one get an empty day.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	dates, err := validateTrip(&trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	existing, ok := s.repo.GetTrip(trip.ID)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: trip %s: %w", trip.ID, domain.ErrNotFound)
	}
	days := trip.Days
	if days == nil {
		days = existing.Days
	}
	trip.Days = alignDays(dates, days)
	if trip.GeneralExpenses == nil {
		trip.GeneralExpenses = existing.GeneralExpenses
	}

	if !s.repo.UpdateTrip(trip) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: trip %s: %w", trip.ID, domain.ErrNotFound)
	}
	return s.GetByID(ctx, trip.ID)
}

// Delete removes a trip by id.
func (s *TripService) Delete(_ context.Context, id string) error {
	if !s.repo.RemoveTrip(id) {
		return fmt.Errorf("service.TripService.Delete: trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// validateTrip normalizes the user-editable trip fields in place and returns
// the dates of its range.
func validateTrip(trip *domain.Trip) ([]string, error) {
	trip.Destination = strings.TrimSpace(trip.Destination)
	if trip.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.Currency == "" {
		trip.Currency = domain.DefaultCurrency
	}
	if !trip.Currency.Supported() {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, trip.Currency)
	}
	start, err := time.Parse(domain.DateLayout, trip.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", domain.ErrValidation)
	}
	end, err := time.Parse(domain.DateLayout, trip.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	// Sub saturates for very wide ranges, which still exceeds the cap.
	if end.Sub(start) >= maxTripDays*24*time.Hour {
		return nil, fmt.Errorf("%w: a trip may span at most %d days", domain.ErrValidation, maxTripDays)
	}
	return domain.DatesBetween(trip.StartDate, trip.EndDate), nil
}

// maxTripDays bounds the number of day schedules a single trip allocates.
const maxTripDays = 366

// alignDays returns one day per date, reusing the day in days with the same
// date when there is one.
func alignDays(dates []string, days []domain.DaySchedule) []domain.DaySchedule {
	byDate := make(map[string]domain.DaySchedule, len(days))
	for _, d := range days {
		if _, seen := byDate[d.Date]; !seen {
			byDate[d.Date] = d
		}
	}
	out := make([]domain.DaySchedule, len(dates))
	for i, date := range dates {
		d, ok := byDate[date]
		if !ok {
			d = domain.DaySchedule{Date: date, Activities: []domain.Activity{}, Journals: []domain.JournalEntry{}}
		}
		out[i] = d
	}
	return out
}
