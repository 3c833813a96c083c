package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"color-chooser/internal/ui"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	ui.SetOutput(io.Discard)
	m.Run()
}

func get(t *testing.T, h http.Handler, target, acceptLang string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLang != "" {
		req.Header.Set("Accept-Language", acceptLang)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPageRendersInitialState(t *testing.T) {
	rec := get(t, NewHandler("/api"), "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, `alt="logo"`)
	assert.Contains(t, body, "Current color: #1abc9c")
	assert.Contains(t, body, "background-color: #1abc9c")
	assert.Contains(t, body, "Loading colors...")
	assert.Contains(t, body, `"api":"/api"`)
	assert.Contains(t, body, `"red":"Red"`)
}

func TestPageLocalization(t *testing.T) {
	h := NewHandler("/api")

	tests := []struct {
		name       string
		target     string
		acceptLang string
		lang       string
		current    string
		label      string
	}{
		{"accept language", "/", "es-MX,es;q=0.9", "es", "Color actual: #1abc9c", `"red":"Rojo"`},
		{"query wins", "/?lang=fr", "de-DE", "fr", "Couleur actuelle : #1abc9c", `"yellow":"Jaune"`},
		{"german", "/?lang=de", "", "de", "Aktuelle Farbe: #1abc9c", `"red":"Rot"`},
		{"unsupported falls back", "/?lang=ja", "ja-JP", "en", "Current color: #1abc9c", `"red":"Red"`},
		{"garbage query ignored", "/?lang=!!", "es", "es", "Color actual: #1abc9c", `"red":"Rojo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target, tt.acceptLang)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()

			assert.Equal(t, tt.lang, rec.Header().Get("Content-Language"))
			assert.Contains(t, body, `<html lang="`+tt.lang+`">`)
			assert.Contains(t, body, tt.current)
			assert.Contains(t, body, tt.label)
			assert.Contains(t, body, `alt="logo"`, "logo label is not localized")
		})
	}
}

func TestLabelFallsBackToName(t *testing.T) {
	es := catalogs[1]
	assert.Equal(t, "Rojo", es.Label("Red"))
	assert.Equal(t, "Rojo", es.Label("RED"))
	assert.Equal(t, "Magenta", es.Label("Magenta"))
}

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "es", "fr", "de"}, Locales())
}

func TestStaticAssets(t *testing.T) {
	h := NewHandler("/api")

	for _, path := range []string{"/static/app.js", "/static/app.css", "/static/logo.svg"} {
		rec := get(t, h, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Body.String(), path)
	}

	js := get(t, h, "/static/app.js", "").Body.String()
	assert.True(t, strings.Contains(js, "gen !== generation"), "page script must drop stale lookups")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/static/missing.js", "").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/elsewhere", "").Code)
}
