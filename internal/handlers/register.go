package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, username, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// GET renders the form, POST validates and creates the account.
func NewRegisterHandler(renderer Renderer, sess Sessioner, svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			renderer.Render(w, http.StatusOK, "register.html", models.RegisterPage{
				Page: newPage(w, r, sess, "Register"),
			})
			return
		}

		form := models.RegisterForm{
			Name:     r.PostFormValue("name"),
			Email:    r.PostFormValue("email"),
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
			Confirm:  r.PostFormValue("confirm"),
		}

		if fieldErrs := form.Validate(); fieldErrs != nil {
			renderer.Render(w, http.StatusBadRequest, "register.html", models.RegisterPage{
				Page:   newPage(w, r, sess, "Register"),
				Form:   form,
				Errors: fieldErrs,
			})
			return
		}

		err := svc.Register(r.Context(), form.Name, form.Email, form.Username, form.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				addFlash(w, r, sess, models.FlashDanger, "This username already exists.")
				renderer.Render(w, http.StatusBadRequest, "register.html", models.RegisterPage{
					Page: newPage(w, r, sess, "Register"),
					Form: form,
				})
				return
			}
			logger.Log.Errorw("failed to register user", "username", form.Username, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		addFlash(w, r, sess, models.FlashSuccess, "You are now registered and can log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
