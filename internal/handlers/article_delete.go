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

// ArticleDeleter defines the interface that the service must implement.
type ArticleDeleter interface {
	Delete(ctx context.Context, id int64, author string) error
}

// NewDeleteArticleHandler returns an HTTP handler for deleting an owned
// article. Both GET and POST perform the delete.
func NewDeleteArticleHandler(sess Sessioner, svc ArticleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		username := middlewares.GetUsernameFromContext(r.Context())

		switch err := svc.Delete(r.Context(), id, username); {
		case err == nil:
			addFlash(w, r, sess, models.FlashSuccess, "Article deleted.")
		case errors.Is(err, services.ErrPermissionDenied):
			addFlash(w, r, sess, models.FlashDanger, "Permission denied.")
		default:
			logger.Log.Errorw("failed to delete article", "id", id, "author", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
