package httpserver

import (
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/albisatrio/heritage-jakarta-website/templates"
)

// Renderer executes embedded page templates. Templates are parsed once at
// startup; a parse failure is a programming error surfaced immediately.
type Renderer struct {
	tmpl *template.Template
	log  *zap.Logger
}

// NewRenderer parses the embedded template set.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.ParseFS(templates.FS(), "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Render writes the named page with the given status code.
func (r *Renderer) Render(w http.ResponseWriter, name string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error("template execute failed", zap.String("template", name), zap.Error(err))
	}
}
