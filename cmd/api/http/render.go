package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = map[string]*template.Template{
	"index.html": parsePage("index.html"),
	"add.html":   parsePage("add.html"),
	"error.html": parsePage("error.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

type listPage struct {
	Title string
	Cafes []cafe.Cafe
}

type formPage struct {
	Title     string
	Action    string
	Form      cafe.Form
	Errors    cafe.FieldErrors
	FormError string
	Seats     []string
	Token     string
}

type errorPage struct {
	Title   string
	Message string
}

/* Executes a page into a buffer first, so a template failure still produces a clean 500. */
func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	err := pages[name].ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("writing page")
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render(w, r, status, "error.html", errorPage{
		Title:   http.StatusText(status),
		Message: message,
	})
}
