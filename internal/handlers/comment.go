package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/middlewares"
	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

// CommentPoster defines the interface that the service must implement.
type CommentPoster interface {
	Add(ctx context.Context, articleID int64, author, body string) error
}

// NewSubmitCommentHandler returns an HTTP handler for posting a comment
// and re-rendering the article view.
func NewSubmitCommentHandler(renderer Renderer, sess Sessioner, articles ArticleGetter, comments CommentLister, poster CommentPoster) http.HandlerFunc {
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

		username := middlewares.GetUsernameFromContext(r.Context())
		if err := poster.Add(r.Context(), id, username, r.PostFormValue("comment")); err != nil {
			logger.Log.Errorw("failed to add comment", "article_id", id, "author", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		addFlash(w, r, sess, models.FlashSuccess, "Comment added.")
		renderArticle(w, r, renderer, sess, comments, article)
	}
}
