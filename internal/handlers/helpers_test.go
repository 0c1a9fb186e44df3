package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/articleboard/articleboard/internal/middlewares"
	"github.com/articleboard/articleboard/internal/templates"
)

// newTestRenderer parses the real embedded templates so tests can assert
// on rendered HTML.
func newTestRenderer(t *testing.T) *templates.Renderer {
	t.Helper()
	r, err := templates.New()
	require.NoError(t, err)
	return r
}

// anonSession stubs the session manager for a visitor with no session
// and no pending flashes.
func anonSession(m *MockSessioner) {
	m.EXPECT().Username(gomock.Any()).Return("", http.ErrNoCookie).AnyTimes()
	m.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

// userSession stubs the session manager for a signed-in user.
func userSession(m *MockSessioner, username string) {
	m.EXPECT().Username(gomock.Any()).Return(username, nil).AnyTimes()
	m.EXPECT().PopFlashes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

// formRequest builds a POST request with an urlencoded form body.
func formRequest(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// withChiParam installs a chi route parameter on the request.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser injects the authenticated username the way the auth middleware
// does.
func asUser(r *http.Request, username string) *http.Request {
	return r.WithContext(middlewares.SetUsernameToContext(r.Context(), username))
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
