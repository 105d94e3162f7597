package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
)

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// pathParam binds the chi URL parameter name into dest using the OpenAPI
// "simple" style, so "3" binds to an int and anything else to a string.
// On failure it writes a 400 response and returns false.
func pathParam(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(fmt.Sprintf("invalid path parameter %s", name)))
		return false
	}
	return true
}

// tripDayParams binds {tripID} and {dayIndex}.
func tripDayParams(w http.ResponseWriter, r *http.Request) (tripID string, dayIndex int, ok bool) {
	if !pathParam(w, r, "tripID", &tripID) || !pathParam(w, r, "dayIndex", &dayIndex) {
		return "", 0, false
	}
	return tripID, dayIndex, true
}

// decodeBody reads a JSON request body into dst and validates it.
// It writes the error response itself and returns false when the body is
// missing, malformed (400), too large (413) or invalid (422).
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		writeJSON(w, http.StatusBadRequest, requestBody("request body is required"))
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				ErrorResponse{Error: ErrorDetail{Code: "too_large", Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)}})
			return false
		}
		writeJSON(w, http.StatusBadRequest, requestBody("malformed JSON body"))
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: describeValidation(err)}})
		return false
	}
	return true
}

// describeValidation renders validator errors as "field: rule" pairs.
func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fieldPath(fe), rule))
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "activityRequest.expenses[0].amount" becomes "expenses[0].amount".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
