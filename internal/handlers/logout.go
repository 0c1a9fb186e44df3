package handlers

import (
	"net/http"

	"github.com/articleboard/articleboard/internal/models"
)

// NewLogoutHandler returns an HTTP handler that clears the session.
func NewLogoutHandler(sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess.Clear(w)
		addFlash(w, r, sess, models.FlashSuccess, "You are now logged out.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
