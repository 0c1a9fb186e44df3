package middlewares

import (
	"context"
	"net/http"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// Sessioner defines the minimal session access the guard needs.
type Sessioner interface {
	Username(r *http.Request) (string, error)
	AddFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, f models.Flash) error
}

// AuthMiddleware guards routes that require a signed-in user. Requests
// without a valid session are flashed a notice and redirected to the
// login page; authenticated requests proceed with the username stored in
// the context.
func AuthMiddleware(sess Sessioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			username, err := sess.Username(r)
			if err != nil {
				logger.Log.Infow("unauthenticated request", "path", r.URL.Path, "error", err)
				if ferr := sess.AddFlash(ctx, w, r, models.Flash{
					Category: models.FlashDanger,
					Message:  "Please login first. Takes less than a minute!",
				}); ferr != nil {
					logger.Log.Errorw("failed to queue flash", "error", ferr)
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUsernameToContext(ctx, username)))
		})
	}
}

// usernameContextKey is an unexported type for the username context key.
type usernameContextKey struct{}

var usernameKey = usernameContextKey{}

// SetUsernameToContext stores the authenticated username in the context.
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. Returns the empty string if not present.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
