package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexData feeds the trip request form.
type IndexData struct {
	Categories   []string
	DayOptions   []int
	ErrorMessage string
}

// ErrorData feeds the generic error page.
type ErrorData struct {
	Message string
}

// Renderer holds the parsed template set. Templates are embedded so the
// binary stays self-contained.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"slotName": func(i int) string {
			switch i {
			case 0:
				return "Morning: "
			case 1:
				return "Afternoon: "
			case 2:
				return "Evening: "
			}
			return ""
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into a buffer first, so a template
// failure never leaves a half-written page on the wire.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
