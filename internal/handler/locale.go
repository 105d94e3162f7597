package handler

import "net/http"

// LocaleResponse is the body of every /locale response.
type LocaleResponse struct {
	Lang string `json:"lang"`
}

type localeRequest struct {
	Lang string `json:"lang" validate:"required"`
}

// GetLocale handles GET /locale.
func (s *Server) GetLocale(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, LocaleResponse{Lang: s.locale.Lang()})
}

// SetLocale handles PUT /locale. Unrecognised codes normalise to "en".
func (s *Server) SetLocale(w http.ResponseWriter, r *http.Request) {
	var req localeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	lang, err := s.locale.Set(r.Context(), req.Lang)
	if err != nil {
		s.writeServiceError(w, r, err, "locale not found")
		return
	}
	writeJSON(w, http.StatusOK, LocaleResponse{Lang: lang})
}

// ToggleLocale handles POST /locale/toggle, switching between "en" and "zh".
func (s *Server) ToggleLocale(w http.ResponseWriter, r *http.Request) {
	lang, err := s.locale.Toggle(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "locale not found")
		return
	}
	writeJSON(w, http.StatusOK, LocaleResponse{Lang: lang})
}
