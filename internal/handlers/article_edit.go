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

// ArticleEditor defines the interface that the service must implement.
type ArticleEditor interface {
	GetOwned(ctx context.Context, author string, id int64) (*models.ArticleDB, error)
	UpdateText(ctx context.Context, id int64, author, title, body string) error
	UpdateTitle(ctx context.Context, id int64, author, title string) error
}

// NewEditArticleHandler returns an HTTP handler for editing an owned
// article. Text articles get the title+body form, image articles the
// title-only one.
func NewEditArticleHandler(renderer Renderer, sess Sessioner, svc ArticleEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			renderNotFound(w, r, renderer, sess)
			return
		}

		username := middlewares.GetUsernameFromContext(r.Context())

		article, err := svc.GetOwned(r.Context(), username, id)
		if err != nil {
			if errors.Is(err, services.ErrPermissionDenied) {
				addFlash(w, r, sess, models.FlashDanger, "Permission denied.")
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
			logger.Log.Errorw("failed to get owned article", "id", id, "author", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if r.Method == http.MethodGet {
			renderer.Render(w, http.StatusOK, "article_form.html", models.ArticleFormPage{
				Page:      newPage(w, r, sess, "Edit Article"),
				Form:      models.ArticleForm{Title: article.Title, Body: article.BodyText()},
				ArticleID: article.ID,
				TitleOnly: article.IsImage(),
			})
			return
		}

		if article.IsImage() {
			editImageArticle(w, r, renderer, sess, svc, article)
			return
		}
		editTextArticle(w, r, renderer, sess, svc, article)
	}
}

func editTextArticle(w http.ResponseWriter, r *http.Request, renderer Renderer, sess Sessioner, svc ArticleEditor, article *models.ArticleDB) {
	form := models.ArticleForm{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	}

	if fieldErrs := form.Validate(); fieldErrs != nil {
		renderer.Render(w, http.StatusBadRequest, "article_form.html", models.ArticleFormPage{
			Page:      newPage(w, r, sess, "Edit Article"),
			Form:      form,
			Errors:    fieldErrs,
			ArticleID: article.ID,
		})
		return
	}

	username := middlewares.GetUsernameFromContext(r.Context())
	err := svc.UpdateText(r.Context(), article.ID, username, form.Title, form.Body)
	finishEdit(w, r, sess, article.ID, username, err)
}

func editImageArticle(w http.ResponseWriter, r *http.Request, renderer Renderer, sess Sessioner, svc ArticleEditor, article *models.ArticleDB) {
	form := models.ImageArticleForm{Title: r.PostFormValue("title")}

	if fieldErrs := form.Validate(); fieldErrs != nil {
		renderer.Render(w, http.StatusBadRequest, "article_form.html", models.ArticleFormPage{
			Page:      newPage(w, r, sess, "Edit Article"),
			Form:      models.ArticleForm{Title: form.Title},
			Errors:    fieldErrs,
			ArticleID: article.ID,
			TitleOnly: true,
		})
		return
	}

	username := middlewares.GetUsernameFromContext(r.Context())
	err := svc.UpdateTitle(r.Context(), article.ID, username, form.Title)
	finishEdit(w, r, sess, article.ID, username, err)
}

func finishEdit(w http.ResponseWriter, r *http.Request, sess Sessioner, id int64, username string, err error) {
	switch {
	case err == nil:
		addFlash(w, r, sess, models.FlashSuccess, "Article updated.")
	case errors.Is(err, services.ErrPermissionDenied):
		addFlash(w, r, sess, models.FlashDanger, "Permission denied.")
	default:
		logger.Log.Errorw("failed to update article", "id", id, "author", username, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
