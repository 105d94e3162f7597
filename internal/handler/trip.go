package handler

import (
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/internal/domain"
)

// tripRequest is the body of POST /trips and PUT /trips/{tripID}.
// Days and generalExpenses are only honoured on update; omitting them keeps
// the stored ones.
type tripRequest struct {
	Destination     string               `json:"destination" validate:"required"`
	StartDate       string               `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string               `json:"endDate" validate:"required,datetime=2006-01-02"`
	Currency        domain.Currency      `json:"currency" validate:"omitempty,oneof=TWD JPY USD"`
	Days            []domain.DaySchedule `json:"days,omitempty"`
	GeneralExpenses []domain.Expense     `json:"generalExpenses,omitempty"`
}

func (req tripRequest) toDomain(id string) domain.Trip {
	return domain.Trip{
		ID:              id,
		Destination:     req.Destination,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Currency:        req.Currency,
		Days:            req.Days,
		GeneralExpenses: req.GeneralExpenses,
	}
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	created, err := s.trips.Create(r.Context(), req.toDomain(""))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	q := r.URL.Query()
	if !queryParam(w, q, "page", &page) || !queryParam(w, q, "limit", &limit) {
		return
	}
	params := domain.NewPaginationParams(page, limit)

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err, "trips not found")
		return
	}
	writeJSON(w, http.StatusOK, TripList{
		Data:       trips,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	var id string
	if !pathParam(w, r, "tripID", &id) {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var id string
	if !pathParam(w, r, "tripID", &id) {
		return
	}
	var req tripRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	updated, err := s.trips.Update(r.Context(), req.toDomain(id))
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	var id string
	if !pathParam(w, r, "tripID", &id) {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryParam binds an optional form-style query parameter. On failure it
// writes a 400 response and returns false.
func queryParam(w http.ResponseWriter, q url.Values, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid query parameter "+name))
		return false
	}
	return true
}
