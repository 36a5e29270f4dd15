// Page handlers for the browser UI shell. The pages are deliberately
// minimal; they just host the fetch calls against /api/generate/*.
package handlers

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var pageFS embed.FS

var pageTemplates = template.Must(template.ParseFS(pageFS, "templates/*.html"))

// PageHandler renders the static page shells.
type PageHandler struct{}

// NewPageHandler creates a PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html")
}

// Text handles GET /text.
func (h *PageHandler) Text(w http.ResponseWriter, r *http.Request) {
	h.render(w, "text.html")
}

// Code handles GET /code.
func (h *PageHandler) Code(w http.ResponseWriter, r *http.Request) {
	h.render(w, "code.html")
}

// Audio handles GET /audio.
func (h *PageHandler) Audio(w http.ResponseWriter, r *http.Request) {
	h.render(w, "audio.html")
}

// Image handles GET /image.
func (h *PageHandler) Image(w http.ResponseWriter, r *http.Request) {
	h.render(w, "image.html")
}

func (h *PageHandler) render(w http.ResponseWriter, name string) {
	w.Header().Set(headerContentType, "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, nil); err != nil {
		WriteError(w, http.StatusInternalServerError, msgInternal)
	}
}
