package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/middlewares"
	"github.com/articleboard/articleboard/internal/models"
)

// ImageArticleCreator defines the interface that the service must implement.
type ImageArticleCreator interface {
	CreateImage(ctx context.Context, author, url string, numImgs int, title string) error
}

// NewStoreHandler returns an HTTP handler that stores a submitted image
// gallery as a new article. GET sends the visitor back to the upload
// instructions.
func NewStoreHandler(sess Sessioner, svc ImageArticleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.Redirect(w, r, "/upload", http.StatusSeeOther)
			return
		}

		numImgs, err := strconv.Atoi(r.PostFormValue("num_imgs"))
		if err != nil {
			addFlash(w, r, sess, models.FlashDanger, "Image count must be a number.")
			http.Redirect(w, r, "/upload", http.StatusSeeOther)
			return
		}

		form := models.ImageUploadForm{
			Title:   r.PostFormValue("title"),
			URL:     r.PostFormValue("url"),
			NumImgs: numImgs,
		}

		if fieldErrs := form.Validate(); fieldErrs != nil {
			for _, msg := range fieldErrs {
				addFlash(w, r, sess, models.FlashDanger, msg)
			}
			http.Redirect(w, r, "/upload", http.StatusSeeOther)
			return
		}

		username := middlewares.GetUsernameFromContext(r.Context())
		if err := svc.CreateImage(r.Context(), username, form.URL, form.NumImgs, form.Title); err != nil {
			logger.Log.Errorw("failed to create image article", "author", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		addFlash(w, r, sess, models.FlashSuccess, "Uploaded successfully.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
