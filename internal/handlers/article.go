package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

// ArticleGetter defines the interface that the service must implement.
type ArticleGetter interface {
	Get(ctx context.Context, id int64) (*models.ArticleDB, error)
}

// CommentLister defines the interface that the comment service must implement.
type CommentLister interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.CommentDB, error)
}

// NewArticleHandler returns an HTTP handler for the single-article view.
// Image articles render the gallery variant, text articles the text one.
func NewArticleHandler(renderer Renderer, sess Sessioner, articles ArticleGetter, comments CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			renderNotFound(w, r, renderer, sess)
			return
		}

		article, err := articles.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrArticleNotFound) {
				renderNotFound(w, r, renderer, sess)
				return
			}
			logger.Log.Errorw("failed to get article", "id", id, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		renderArticle(w, r, renderer, sess, comments, article)
	}
}

// renderArticle fetches the article's comments and renders the view in
// the variant the article calls for.
func renderArticle(w http.ResponseWriter, r *http.Request, renderer Renderer, sess Sessioner, comments CommentLister, article *models.ArticleDB) {
	cmts, err := comments.ListByArticle(r.Context(), article.ID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "article_id", article.ID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := models.ArticlePage{
		Page:     newPage(w, r, sess, article.Title),
		Article:  article,
		Comments: cmts,
	}

	name := "article.html"
	if article.IsImage() {
		name = "article_images.html"
	}
	renderer.Render(w, http.StatusOK, name, page)
}
