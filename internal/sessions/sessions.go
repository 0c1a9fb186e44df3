package sessions

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/articleboard/articleboard/internal/jwt"
	"github.com/articleboard/articleboard/internal/models"
)

// VisitorCookie identifies a browser across requests so flash notices can
// be queued for it. It is set for anonymous visitors too.
const VisitorCookie = "visitor_id"

// TokenReader parses session tokens out of incoming requests.
type TokenReader interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// FlashStore queues one-shot notices per visitor.
type FlashStore interface {
	Push(ctx context.Context, visitorID string, f models.Flash) error
	PopAll(ctx context.Context, visitorID string) ([]models.Flash, error)
}

// Manager owns the session and visitor cookies: it writes and clears the
// session token, resolves the signed-in username, and queues and drains
// flash notices.
type Manager struct {
	tokens TokenReader
	flash  FlashStore
}

// New creates a session manager.
func New(tokens TokenReader, flash FlashStore) *Manager {
	return &Manager{
		tokens: tokens,
		flash:  flash,
	}
}

// Write stores the session token in the session cookie.
func (m *Manager) Write(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Username returns the signed-in username carried by the request's
// session cookie, or an error for anonymous or invalid sessions.
func (m *Manager) Username(r *http.Request) (string, error) {
	ctx := r.Context()

	token, err := m.tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return "", err
	}

	claims, err := m.tokens.GetClaims(ctx, token)
	if err != nil {
		return "", err
	}

	return claims.Username, nil
}

// AddFlash queues a notice for the requesting visitor.
func (m *Manager) AddFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, f models.Flash) error {
	return m.flash.Push(ctx, m.visitorID(w, r), f)
}

// PopFlashes drains the visitor's pending notices for rendering.
func (m *Manager) PopFlashes(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]models.Flash, error) {
	return m.flash.PopAll(ctx, m.visitorID(w, r))
}

// visitorID returns the visitor cookie value, minting and setting a new
// one when the request carries none.
func (m *Manager) visitorID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(VisitorCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
