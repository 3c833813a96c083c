// Package web renders the color chooser page: a header painted in the
// display color, the current hex, and one button per color record. The
// page script talks to the lookup service through the router's API prefix.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/samber/lo"

	"color-chooser/internal/colors"
	"color-chooser/internal/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTmpl = lo.Must(template.ParseFS(templateFS, "templates/index.html"))

// boot is handed to the page script.
type boot struct {
	API     string            `json:"api"`
	Initial string            `json:"initial"`
	Current string            `json:"current"`
	Labels  map[string]string `json:"labels"`
}

type pageData struct {
	*Catalog
	Initial string
	Boot    boot
}

// Handler serves the page and its static assets.
type Handler struct {
	apiPrefix string
	mux       *http.ServeMux
}

// NewHandler returns the UI for a lookup service reachable under apiPrefix.
func NewHandler(apiPrefix string) *Handler {
	h := &Handler{apiPrefix: apiPrefix, mux: http.NewServeMux()}

	static := lo.Must(fs.Sub(staticFS, "static"))
	h.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	h.mux.HandleFunc("GET /{$}", h.page)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	cat := CatalogFor(r)
	data := pageData{
		Catalog: cat,
		Initial: colors.DefaultHex,
		Boot: boot{
			API:     h.apiPrefix,
			Initial: colors.DefaultHex,
			Current: cat.Current,
			Labels:  cat.Names,
		},
	}

	// render fully before writing so a template error is a clean 500
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		ui.LogStatus("error", "Render page: "+err.Error())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", cat.Lang())
	w.Header().Set("Vary", "Accept-Language")
	w.Write(buf.Bytes())
}
