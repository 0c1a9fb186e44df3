package templates

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
)

//go:embed *.html
var files embed.FS

// pages lists every standalone page template. Each is parsed together
// with layout.html into its own template set.
var pages = []string{
	"home.html",
	"about.html",
	"articles.html",
	"article.html",
	"article_images.html",
	"register.html",
	"login.html",
	"dashboard.html",
	"article_form.html",
	"upload.html",
	"404.html",
}

var funcs = template.FuncMap{
	// seq returns 1..n for ranging over gallery image indexes.
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i + 1
		}
		return s
	},
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "layout.html", "comments.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		parsed[page] = t
	}
	return &Renderer{templates: parsed}, nil
}

// Render writes the named page with the given status code and data.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		logger.Log.Errorw("unknown template", "name", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Log.Errorw("failed to render template", "name", name, "error", err)
	}
}
