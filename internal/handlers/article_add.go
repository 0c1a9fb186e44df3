package handlers

import (
	"context"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/middlewares"
	"github.com/articleboard/articleboard/internal/models"
)

// ArticleCreator defines the interface that the service must implement.
type ArticleCreator interface {
	Create(ctx context.Context, title, body, author string) error
}

// NewAddArticleHandler returns an HTTP handler for creating a text
// article. The author is always the signed-in user.
func NewAddArticleHandler(renderer Renderer, sess Sessioner, svc ArticleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			renderer.Render(w, http.StatusOK, "article_form.html", models.ArticleFormPage{
				Page: newPage(w, r, sess, "Add Article"),
			})
			return
		}

		form := models.ArticleForm{
			Title: r.PostFormValue("title"),
			Body:  r.PostFormValue("body"),
		}

		if fieldErrs := form.Validate(); fieldErrs != nil {
			renderer.Render(w, http.StatusBadRequest, "article_form.html", models.ArticleFormPage{
				Page:   newPage(w, r, sess, "Add Article"),
				Form:   form,
				Errors: fieldErrs,
			})
			return
		}

		username := middlewares.GetUsernameFromContext(r.Context())
		if err := svc.Create(r.Context(), form.Title, form.Body, username); err != nil {
			logger.Log.Errorw("failed to create article", "author", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		addFlash(w, r, sess, models.FlashSuccess, "Article created.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
