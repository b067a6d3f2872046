// Package webui serves the HTML converter and counter pages and the debug
// dump of the conversion table. Pages keep no server-side session: the whole
// page state travels in the query string of each request.
package webui

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"unitconv.dev/internal/app"
	"unitconv.dev/internal/logging"
)

//go:embed *.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "*.html"))

type WebUI struct {
	*app.Application
}

func New(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// render executes the named template into a buffer so that a failing
// template turns into a clean 500 instead of a half written page.
func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render page", err,
			slog.String("template", name),
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(webUI.Logger, "failed to write page", err,
			slog.String("template", name))
	}
}

// pageHeaders sets the security headers of HTML pages. Pages use inline
// styles and submit forms to themselves only.
func pageHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; form-action 'self'; frame-ancestors 'none';")
		next.ServeHTTP(w, r)
	})
}
