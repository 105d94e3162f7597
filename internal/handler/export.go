package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TotalsResponse is the body of GET /trips/{tripID}/totals.
type TotalsResponse struct {
	Totals []domain.CurrencyTotal `json:"totals"`
}

// GetTotals handles GET /trips/{tripID}/totals.
// Totals are listed per currency in first-seen order.
func (s *Server) GetTotals(w http.ResponseWriter, r *http.Request) {
	var id string
	if !pathParam(w, r, "tripID", &id) {
		return
	}
	totals, err := s.exports.Totals(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	if totals == nil {
		totals = []domain.CurrencyTotal{}
	}
	writeJSON(w, http.StatusOK, TotalsResponse{Totals: totals})
}

// ExportTrip handles GET /trips/{tripID}/export.
// The optional ?lang= overrides the persisted locale for this document only.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	var id string
	if !pathParam(w, r, "tripID", &id) {
		return
	}
	var lang *string
	if !queryParam(w, r.URL.Query(), "lang", &lang) {
		return
	}
	code := ""
	if lang != nil {
		code = *lang
	}

	doc, err := s.exports.HTML(r.Context(), id, code)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // the status line is already written.
	w.Write([]byte(doc))
}
