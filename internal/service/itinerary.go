package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ItineraryRepository is the nested-entity part of the repository. Each
// mutation reports whether its path resolved.
type ItineraryRepository interface {
	GetTrip(id string) (domain.Trip, bool)

	AddActivity(tripID string, dayIndex int, activity domain.Activity) bool
	UpdateActivity(tripID string, dayIndex int, activity domain.Activity) bool
	RemoveActivity(tripID string, dayIndex, activityIndex int) bool
	SetActivityCompleted(tripID string, dayIndex int, activityID string, completed bool) bool

	AddExpense(tripID string, dayIndex int, activityID string, expense domain.Expense) bool
	UpdateExpense(tripID string, dayIndex int, activityID string, expense domain.Expense) bool
	RemoveExpense(tripID string, dayIndex int, activityID, expenseID string) bool
	AddGeneralExpense(tripID string, expense domain.Expense) bool
	UpdateGeneralExpense(tripID string, expense domain.Expense) bool
	RemoveGeneralExpense(tripID, expenseID string) bool

	AddJournalEntry(tripID string, dayIndex int, entry domain.JournalEntry) bool
	UpdateJournalEntry(tripID string, dayIndex int, entry domain.JournalEntry) bool
	RemoveJournalEntry(tripID string, dayIndex int, entryID string) bool
}

// ItineraryService manages the activities, expenses and journal entries
// nested inside trips.
type ItineraryService struct {
	repo  ItineraryRepository
	newID func() string
}

// NewItineraryService constructs an ItineraryService backed by r.
func NewItineraryService(r ItineraryRepository) *ItineraryService {
	return &ItineraryService{repo: r, newID: uuid.NewString}
}

// miss builds the error returned when a repository path does not resolve.
func miss(op, path string) error {
	return fmt.Errorf("service.ItineraryService.%s: %s: %w", op, path, domain.ErrNotFound)
}

// tripCurrency returns the currency unset expense currencies default to, so a
// returned entity matches what the repository stores. It is empty for an
// unknown trip; the repository call that follows reports the miss.
func (s *ItineraryService) tripCurrency(tripID string) domain.Currency {
	t, ok := s.repo.GetTrip(tripID)
	if !ok {
		return ""
	}
	return t.Currency
}

func dayPath(tripID string, dayIndex int) string {
	return fmt.Sprintf("trip %s day %d", tripID, dayIndex)
}

// ---- activities ------------------------------------------------------------

// AddActivity validates a, assigns it a new id (and ids to its expenses)
// and appends it to the day.
func (s *ItineraryService) AddActivity(_ context.Context, tripID string, dayIndex int, a domain.Activity) (domain.Activity, error) {
	if err := s.prepareActivity(&a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	a.ID = s.newID()
	a.ApplyDefaults(s.tripCurrency(tripID))
	if !s.repo.AddActivity(tripID, dayIndex, a) {
		return domain.Activity{}, miss("AddActivity", dayPath(tripID, dayIndex))
	}
	return a, nil
}

// UpdateActivity replaces the activity with a.ID on the day.
func (s *ItineraryService) UpdateActivity(_ context.Context, tripID string, dayIndex int, a domain.Activity) (domain.Activity, error) {
	if a.ID == "" {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.UpdateActivity: %w: id is required", domain.ErrValidation)
	}
	if err := s.prepareActivity(&a); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.UpdateActivity: %w", err)
	}
	a.ApplyDefaults(s.tripCurrency(tripID))
	if !s.repo.UpdateActivity(tripID, dayIndex, a) {
		return domain.Activity{}, miss("UpdateActivity", dayPath(tripID, dayIndex)+" activity "+a.ID)
	}
	return a, nil
}

// RemoveActivity deletes the activity at position index within the day.
func (s *ItineraryService) RemoveActivity(_ context.Context, tripID string, dayIndex, index int) error {
	if !s.repo.RemoveActivity(tripID, dayIndex, index) {
		return miss("RemoveActivity", fmt.Sprintf("%s activity #%d", dayPath(tripID, dayIndex), index))
	}
	return nil
}

// SetActivityCompleted marks the activity done or not done.
func (s *ItineraryService) SetActivityCompleted(_ context.Context, tripID string, dayIndex int, activityID string, completed bool) error {
	if !s.repo.SetActivityCompleted(tripID, dayIndex, activityID, completed) {
		return miss("SetActivityCompleted", dayPath(tripID, dayIndex)+" activity "+activityID)
	}
	return nil
}

func (s *ItineraryService) prepareActivity(a *domain.Activity) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if a.EstimatedCost < 0 {
		return fmt.Errorf("%w: estimated cost must not be negative", domain.ErrValidation)
	}
	if a.TransportType != "" && !a.TransportType.Valid() {
		return fmt.Errorf("%w: unknown transport type %q", domain.ErrValidation, a.TransportType)
	}
	seen := make(map[string]bool, len(a.Expenses))
	for i := range a.Expenses {
		if err := s.prepareExpense(&a.Expenses[i]); err != nil {
			return err
		}
		if seen[a.Expenses[i].ID] {
			return fmt.Errorf("%w: duplicate expense id %q", domain.ErrValidation, a.Expenses[i].ID)
		}
		seen[a.Expenses[i].ID] = true
	}
	return nil
}

// ---- expenses --------------------------------------------------------------

// AddExpense validates e, assigns it a new id and attaches it to the activity.
func (s *ItineraryService) AddExpense(_ context.Context, tripID string, dayIndex int, activityID string, e domain.Expense) (domain.Expense, error) {
	e.ID = ""
	if err := s.prepareExpense(&e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.AddExpense: %w", err)
	}
	e.ApplyDefaults(s.tripCurrency(tripID))
	if !s.repo.AddExpense(tripID, dayIndex, activityID, e) {
		return domain.Expense{}, miss("AddExpense", dayPath(tripID, dayIndex)+" activity "+activityID)
	}
	return e, nil
}

// UpdateExpense replaces the activity's expense with e.ID.
func (s *ItineraryService) UpdateExpense(_ context.Context, tripID string, dayIndex int, activityID string, e domain.Expense) (domain.Expense, error) {
	if e.ID == "" {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateExpense: %w: id is required", domain.ErrValidation)
	}
	if err := s.prepareExpense(&e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateExpense: %w", err)
	}
	e.ApplyDefaults(s.tripCurrency(tripID))
	if !s.repo.UpdateExpense(tripID, dayIndex, activityID, e) {
		return domain.Expense{}, miss("UpdateExpense", dayPath(tripID, dayIndex)+" expense "+e.ID)
	}
	return e, nil
}

// RemoveExpense deletes the activity's expense with expenseID.
func (s *ItineraryService) RemoveExpense(_ context.Context, tripID string, dayIndex int, activityID, expenseID string) error {
	if !s.repo.RemoveExpense(tripID, dayIndex, activityID, expenseID) {
		return miss("RemoveExpense", dayPath(tripID, dayIndex)+" expense "+expenseID)
	}
	return nil
}

// AddGeneralExpense validates e, assigns it a new id and attaches it to the
// trip itself.
func (s *ItineraryService) AddGeneralExpense(_ context.Context, tripID string, e domain.Expense) (domain.Expense, error) {
	e.ID = ""
	if err := s.prepareExpense(&e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.AddGeneralExpense: %w", err)
	}
	e.ApplyDefaults(s.tripCurrency(tripID))
	if !s.repo.AddGeneralExpense(tripID, e) {
		return domain.Expense{}, miss("AddGeneralExpense", "trip "+tripID)
	}
	return e, nil
}

// UpdateGeneralExpense replaces the trip-level expense with e.ID.
func (s *ItineraryService) UpdateGeneralExpense(_ context.Context, tripID string, e domain.Expense) (domain.Expense, error) {
	if e.ID == "" {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateGeneralExpense: %w: id is required", domain.ErrValidation)
	}
	if err := s.prepareExpense(&e); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateGeneralExpense: %w", err)
	}
	e.ApplyDefaults(s.tripCurrency(tripID))
	if !s.repo.UpdateGeneralExpense(tripID, e) {
		return domain.Expense{}, miss("UpdateGeneralExpense", "trip "+tripID+" expense "+e.ID)
	}
	return e, nil
}

// RemoveGeneralExpense deletes the trip-level expense with expenseID.
func (s *ItineraryService) RemoveGeneralExpense(_ context.Context, tripID, expenseID string) error {
	if !s.repo.RemoveGeneralExpense(tripID, expenseID) {
		return miss("RemoveGeneralExpense", "trip "+tripID+" expense "+expenseID)
	}
	return nil
}

// prepareExpense validates e and fills its id and category. The currency is
// left empty when unset so the repository applies the trip's.
func (s *ItineraryService) prepareExpense(e *domain.Expense) error {
	if e.Amount < 0 {
		return fmt.Errorf("%w: expense amount must not be negative", domain.ErrValidation)
	}
	if e.Category == "" {
		e.Category = domain.CategoryOther
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown expense category %q", domain.ErrValidation, e.Category)
	}
	if e.Date != "" {
		if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
			return fmt.Errorf("%w: expense date must be YYYY-MM-DD", domain.ErrValidation)
		}
	}
	e.Name = strings.TrimSpace(e.Name)
	if e.ID == "" {
		e.ID = s.newID()
	}
	return nil
}

// ---- journals --------------------------------------------------------------

// AddJournalEntry validates entry, assigns it a new id and inserts it into
// the day in timestamp order.
func (s *ItineraryService) AddJournalEntry(_ context.Context, tripID string, dayIndex int, entry domain.JournalEntry) (domain.JournalEntry, error) {
	if err := validateJournal(&entry); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("service.ItineraryService.AddJournalEntry: %w", err)
	}
	entry.ID = s.newID()
	if !s.repo.AddJournalEntry(tripID, dayIndex, entry) {
		return domain.JournalEntry{}, miss("AddJournalEntry", dayPath(tripID, dayIndex))
	}
	return entry, nil
}

// UpdateJournalEntry replaces the entry with entry.ID.
func (s *ItineraryService) UpdateJournalEntry(_ context.Context, tripID string, dayIndex int, entry domain.JournalEntry) (domain.JournalEntry, error) {
	if entry.ID == "" {
		return domain.JournalEntry{}, fmt.Errorf("service.ItineraryService.UpdateJournalEntry: %w: id is required", domain.ErrValidation)
	}
	if err := validateJournal(&entry); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("service.ItineraryService.UpdateJournalEntry: %w", err)
	}
	if !s.repo.UpdateJournalEntry(tripID, dayIndex, entry) {
		return domain.JournalEntry{}, miss("UpdateJournalEntry", dayPath(tripID, dayIndex)+" entry "+entry.ID)
	}
	return entry, nil
}

// RemoveJournalEntry deletes the entry with entryID.
func (s *ItineraryService) RemoveJournalEntry(_ context.Context, tripID string, dayIndex int, entryID string) error {
	if !s.repo.RemoveJournalEntry(tripID, dayIndex, entryID) {
		return miss("RemoveJournalEntry", dayPath(tripID, dayIndex)+" entry "+entryID)
	}
	return nil
}

func validateJournal(entry *domain.JournalEntry) error {
	// Entries sort by comparing timestamps as strings, so "9:00" is rejected.
	if _, err := time.Parse("15:04", entry.Timestamp); err != nil || len(entry.Timestamp) != 5 {
		return fmt.Errorf("%w: timestamp must be HH:MM", domain.ErrValidation)
	}
	if !entry.Weather.Valid() {
		return fmt.Errorf("%w: unknown weather %q", domain.ErrValidation, entry.Weather)
	}
	entry.Location = strings.TrimSpace(entry.Location)
	if entry.Photos == nil {
		entry.Photos = []string{}
	}
	return nil
}
