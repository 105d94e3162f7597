package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// expenseRequest is the body of the expense endpoints, and each element of
// an activity's expenses.
type expenseRequest struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount" validate:"gte=0"`
	Category domain.Category `json:"category" validate:"omitempty,oneof=transport food stay shopping medical other"`
	Date     string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Currency domain.Currency `json:"currency" validate:"omitempty,alpha,len=3"`
	Name     string          `json:"name"`
}

func (req expenseRequest) toDomain() domain.Expense {
	return domain.Expense{
		ID:       req.ID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Currency: req.Currency,
		Name:     req.Name,
	}
}

// activityRequest is the body of POST and PUT .../activities.
type activityRequest struct {
	ID            string               `json:"id"`
	Name          string               `json:"name" validate:"required"`
	Address       string               `json:"address"`
	Lat           float64              `json:"lat" validate:"gte=-90,lte=90"`
	Lng           float64              `json:"lng" validate:"gte=-180,lte=180"`
	EstimatedCost float64              `json:"estimatedCost" validate:"gte=0"`
	Expenses      []expenseRequest     `json:"expenses" validate:"dive"`
	TransportType domain.TransportType `json:"transportType" validate:"omitempty,oneof=walk car public other"`
	Notes         string               `json:"notes"`
	Completed     bool                 `json:"completed"`
}

func (req activityRequest) toDomain() domain.Activity {
	a := domain.Activity{
		ID:            req.ID,
		Name:          req.Name,
		Address:       req.Address,
		Lat:           req.Lat,
		Lng:           req.Lng,
		EstimatedCost: req.EstimatedCost,
		TransportType: req.TransportType,
		Notes:         req.Notes,
		Completed:     req.Completed,
		Expenses:      make([]domain.Expense, len(req.Expenses)),
	}
	for i, e := range req.Expenses {
		a.Expenses[i] = e.toDomain()
	}
	return a
}

// journalRequest is the body of POST and PUT .../journals.
type journalRequest struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp" validate:"required,datetime=15:04"`
	Content   string         `json:"content"`
	Weather   domain.Weather `json:"weather" validate:"omitempty,oneof=sunny cloudy rainy snowy windy"`
	Location  string         `json:"location"`
	Photos    []string       `json:"photos"`
}

func (req journalRequest) toDomain() domain.JournalEntry {
	return domain.JournalEntry{
		ID:        req.ID,
		Timestamp: req.Timestamp,
		Content:   req.Content,
		Weather:   req.Weather,
		Location:  req.Location,
		Photos:    req.Photos,
	}
}

// completedRequest is the body of PUT .../activities/{activity}/completed.
type completedRequest struct {
	Completed bool `json:"completed"`
}

// ---- activities ------------------------------------------------------------

// AddActivity handles POST /trips/{tripID}/days/{dayIndex}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var req activityRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	a, err := s.itinerary.AddActivity(r.Context(), tripID, day, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "trip or day not found")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// UpdateActivity handles PUT /trips/{tripID}/days/{dayIndex}/activities.
// The activity is matched by the id in the body.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var req activityRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	a, err := s.itinerary.UpdateActivity(r.Context(), tripID, day, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// RemoveActivity handles DELETE /trips/{tripID}/days/{dayIndex}/activities/{activity},
// where {activity} is the activity's position within the day.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var index int
	if !pathParam(w, r, "activity", &index) {
		return
	}
	if err := s.itinerary.RemoveActivity(r.Context(), tripID, day, index); err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetActivityCompleted handles PUT .../activities/{activity}/completed.
func (s *Server) SetActivityCompleted(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var activityID string
	if !pathParam(w, r, "activity", &activityID) {
		return
	}
	var req completedRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.itinerary.SetActivityCompleted(r.Context(), tripID, day, activityID, req.Completed); err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- activity expenses -----------------------------------------------------

// AddExpense handles POST .../activities/{activity}/expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var activityID string
	if !pathParam(w, r, "activity", &activityID) {
		return
	}
	var req expenseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.itinerary.AddExpense(r.Context(), tripID, day, activityID, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// UpdateExpense handles PUT .../activities/{activity}/expenses.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var activityID string
	if !pathParam(w, r, "activity", &activityID) {
		return
	}
	var req expenseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.itinerary.UpdateExpense(r.Context(), tripID, day, activityID, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// RemoveExpense handles DELETE .../activities/{activity}/expenses/{expenseID}.
func (s *Server) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var activityID, expenseID string
	if !pathParam(w, r, "activity", &activityID) || !pathParam(w, r, "expenseID", &expenseID) {
		return
	}
	if err := s.itinerary.RemoveExpense(r.Context(), tripID, day, activityID, expenseID); err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- general expenses ------------------------------------------------------

// AddGeneralExpense handles POST /trips/{tripID}/expenses.
func (s *Server) AddGeneralExpense(w http.ResponseWriter, r *http.Request) {
	var tripID string
	if !pathParam(w, r, "tripID", &tripID) {
		return
	}
	var req expenseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.itinerary.AddGeneralExpense(r.Context(), tripID, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// UpdateGeneralExpense handles PUT /trips/{tripID}/expenses.
func (s *Server) UpdateGeneralExpense(w http.ResponseWriter, r *http.Request) {
	var tripID string
	if !pathParam(w, r, "tripID", &tripID) {
		return
	}
	var req expenseRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.itinerary.UpdateGeneralExpense(r.Context(), tripID, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// RemoveGeneralExpense handles DELETE /trips/{tripID}/expenses/{expenseID}.
func (s *Server) RemoveGeneralExpense(w http.ResponseWriter, r *http.Request) {
	var tripID, expenseID string
	if !pathParam(w, r, "tripID", &tripID) || !pathParam(w, r, "expenseID", &expenseID) {
		return
	}
	if err := s.itinerary.RemoveGeneralExpense(r.Context(), tripID, expenseID); err != nil {
		s.writeServiceError(w, r, err, "expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- journals --------------------------------------------------------------

// AddJournalEntry handles POST /trips/{tripID}/days/{dayIndex}/journals.
func (s *Server) AddJournalEntry(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var req journalRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.itinerary.AddJournalEntry(r.Context(), tripID, day, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "trip or day not found")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// UpdateJournalEntry handles PUT /trips/{tripID}/days/{dayIndex}/journals.
func (s *Server) UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var req journalRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.itinerary.UpdateJournalEntry(r.Context(), tripID, day, req.toDomain())
	if err != nil {
		s.writeServiceError(w, r, err, "journal entry not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// RemoveJournalEntry handles DELETE /trips/{tripID}/days/{dayIndex}/journals/{entryID}.
func (s *Server) RemoveJournalEntry(w http.ResponseWriter, r *http.Request) {
	tripID, day, ok := tripDayParams(w, r)
	if !ok {
		return
	}
	var entryID string
	if !pathParam(w, r, "entryID", &entryID) {
		return
	}
	if err := s.itinerary.RemoveJournalEntry(r.Context(), tripID, day, entryID); err != nil {
		s.writeServiceError(w, r, err, "journal entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
