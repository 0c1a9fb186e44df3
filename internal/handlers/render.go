package handlers

import (
	"context"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// Renderer writes a named page template with the given status code.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

// Sessioner defines what handlers need from the session manager: the
// signed-in username for navigation, the session cookie, and flash
// notices.
type Sessioner interface {
	Username(r *http.Request) (string, error)
	Write(w http.ResponseWriter, token string)
	Clear(w http.ResponseWriter)
	AddFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, f models.Flash) error
	PopFlashes(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]models.Flash, error)
}

// newPage assembles the data every template needs. A failing flash store
// drops the notices; the page still renders.
func newPage(w http.ResponseWriter, r *http.Request, sess Sessioner, title string) models.Page {
	username, _ := sess.Username(r)

	flashes, err := sess.PopFlashes(r.Context(), w, r)
	if err != nil {
		logger.Log.Errorw("failed to pop flash notices", "error", err)
	}

	return models.Page{
		Title:    title,
		Username: username,
		Flashes:  flashes,
	}
}

// addFlash queues a notice for the requesting visitor, logging store
// failures instead of surfacing them.
func addFlash(w http.ResponseWriter, r *http.Request, sess Sessioner, category, message string) {
	f := models.Flash{Category: category, Message: message}
	if err := sess.AddFlash(r.Context(), w, r, f); err != nil {
		logger.Log.Errorw("failed to add flash notice", "message", message, "error", err)
	}
}

// renderNotFound renders the 404 page.
func renderNotFound(w http.ResponseWriter, r *http.Request, renderer Renderer, sess Sessioner) {
	renderer.Render(w, http.StatusNotFound, "404.html", newPage(w, r, sess, "Page Not Found"))
}
