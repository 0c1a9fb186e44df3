package handlers

import (
	"context"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/middlewares"
	"github.com/articleboard/articleboard/internal/models"
)

// AuthorArticleLister defines the interface that the service must implement.
type AuthorArticleLister interface {
	ListByAuthor(ctx context.Context, author string) ([]models.ArticleDB, error)
}

// NewDashboardHandler returns an HTTP handler for the signed-in user's
// own articles.
func NewDashboardHandler(renderer Renderer, sess Sessioner, svc AuthorArticleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.GetUsernameFromContext(r.Context())

		articles, err := svc.ListByAuthor(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("failed to list articles by author", "author", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		page := models.DashboardPage{
			Page:     newPage(w, r, sess, "Dashboard"),
			Articles: articles,
		}
		if len(articles) == 0 {
			page.Message = "No articles found. Why not add one?"
		}

		renderer.Render(w, http.StatusOK, "dashboard.html", page)
	}
}
