package handlers

import "net/http"

// NewHomeHandler returns an HTTP handler for the home page.
func NewHomeHandler(renderer Renderer, sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, "home.html", newPage(w, r, sess, "Home"))
	}
}

// NewAboutHandler returns an HTTP handler for the about page.
func NewAboutHandler(renderer Renderer, sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, "about.html", newPage(w, r, sess, "About"))
	}
}

// NewNotFoundHandler returns the handler for unmatched routes.
func NewNotFoundHandler(renderer Renderer, sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(w, r, renderer, sess)
	}
}
