package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/i18n"
)

// fakeLocale is an in-memory handler.LocaleServicer.
type fakeLocale struct {
	lang    string
	failPut bool
}

func (f *fakeLocale) Lang() string { return f.lang }

func (f *fakeLocale) Set(_ context.Context, lang string) (string, error) {
	if f.failPut {
		return f.lang, errors.New("storage unavailable")
	}
	f.lang = i18n.Normalize(lang)
	return f.lang, nil
}

func (f *fakeLocale) Toggle(ctx context.Context) (string, error) {
	if f.lang == i18n.Chinese {
		return f.Set(ctx, i18n.English)
	}
	return f.Set(ctx, i18n.Chinese)
}

var _ handler.LocaleServicer = (*fakeLocale)(nil)

func decodeLang(t *testing.T, body []byte) string {
	t.Helper()
	var resp handler.LocaleResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Lang
}

func TestGetLocale_200(t *testing.T) {
	h := newHTTPHandler(handler.Services{Locale: &fakeLocale{lang: "zh"}})

	rec := do(h, http.MethodGet, "/locale", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "zh", decodeLang(t, rec.Body.Bytes()))
}

func TestSetLocale_Normalizes(t *testing.T) {
	loc := &fakeLocale{lang: "en"}
	h := newHTTPHandler(handler.Services{Locale: loc})

	rec := do(h, http.MethodPut, "/locale", jsonBody(t, map[string]any{"lang": "zh-Hant"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "zh", decodeLang(t, rec.Body.Bytes()))
	assert.Equal(t, "zh", loc.lang)
}

func TestSetLocale_422_MissingLang(t *testing.T) {
	h := newHTTPHandler(handler.Services{Locale: &fakeLocale{lang: "en"}})

	rec := do(h, http.MethodPut, "/locale", jsonBody(t, map[string]any{}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "lang: required")
}

func TestSetLocale_500_StorageFailure(t *testing.T) {
	h := newHTTPHandler(handler.Services{Locale: &fakeLocale{lang: "en", failPut: true}})

	rec := do(h, http.MethodPut, "/locale", jsonBody(t, map[string]any{"lang": "zh"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestToggleLocale_Flips(t *testing.T) {
	loc := &fakeLocale{lang: "en"}
	h := newHTTPHandler(handler.Services{Locale: loc})

	first := do(h, http.MethodPost, "/locale/toggle", nil)
	second := do(h, http.MethodPost, "/locale/toggle", nil)

	assert.Equal(t, "zh", decodeLang(t, first.Body.Bytes()))
	assert.Equal(t, "en", decodeLang(t, second.Body.Bytes()))
}
