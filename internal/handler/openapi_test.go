package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/spec"
)

// TestRoutes_documentedInOpenAPI verifies that every route the server
// registers appears in the embedded OpenAPI document with the same method.
func TestRoutes_documentedInOpenAPI(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(spec.OpenAPI, &doc))

	routes := handler.NewServer(handler.Services{}, nil).Routes()
	count := 0
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		ops, ok := doc.Paths[route]
		if assert.True(t, ok, "route %s missing from openapi.yaml", route) {
			assert.Contains(t, ops, strings.ToLower(method), "%s %s missing from openapi.yaml", method, route)
		}
		count++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 24, count)
}
