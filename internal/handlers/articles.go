package handlers

import (
	"context"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// ArticleLister defines the interface that the service must implement.
type ArticleLister interface {
	List(ctx context.Context) ([]models.ArticleDB, error)
}

// NewArticlesHandler returns an HTTP handler for the public article list.
func NewArticlesHandler(renderer Renderer, sess Sessioner, svc ArticleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list articles", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		page := models.ArticlesPage{
			Page:     newPage(w, r, sess, "Articles"),
			Articles: articles,
		}
		if len(articles) == 0 {
			page.Message = "No articles found."
		}

		renderer.Render(w, http.StatusOK, "articles.html", page)
	}
}
