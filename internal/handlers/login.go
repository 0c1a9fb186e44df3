package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for login. Unknown usernames
// and wrong passwords get the same form message; the log tells them
// apart.
func NewLoginHandler(renderer Renderer, sess Sessioner, svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			renderer.Render(w, http.StatusOK, "login.html", models.LoginPage{
				Page: newPage(w, r, sess, "Login"),
			})
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
				renderer.Render(w, http.StatusUnauthorized, "login.html", models.LoginPage{
					Page:  newPage(w, r, sess, "Login"),
					Error: "Invalid username or password",
				})
				return
			}
			logger.Log.Errorw("failed to log user in", "username", username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		sess.Write(w, token)
		addFlash(w, r, sess, models.FlashSuccess, "You are now logged in.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
