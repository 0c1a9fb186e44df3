package handlers

import "net/http"

// NewUploadHandler returns an HTTP handler for the gallery upload page.
func NewUploadHandler(renderer Renderer, sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, "upload.html", newPage(w, r, sess, "Upload"))
	}
}
