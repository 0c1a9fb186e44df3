package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/articleboard/articleboard/internal/jwt"
	"github.com/articleboard/articleboard/internal/models"
)

func TestManager_WriteAndClear(t *testing.T) {
	m := New(jwt.New(), nil)

	rr := httptest.NewRecorder()
	m.Write(rr, "sometoken")

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, jwt.SessionCookie, cookies[0].Name)
	assert.Equal(t, "sometoken", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rr = httptest.NewRecorder()
	m.Clear(rr)

	cookies = rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, jwt.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestManager_Username(t *testing.T) {
	tokens := jwt.New(jwt.WithExpiration(time.Hour))
	m := New(tokens, nil)

	token, err := tokens.Generate(context.Background(), "alice1")
	assert.NoError(t, err)

	t.Run("ValidSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: jwt.SessionCookie, Value: token})

		username, err := m.Username(req)
		assert.NoError(t, err)
		assert.Equal(t, "alice1", username)
	})

	t.Run("NoCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

		username, err := m.Username(req)
		assert.Error(t, err)
		assert.Empty(t, username)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: jwt.SessionCookie, Value: "garbage"})

		username, err := m.Username(req)
		assert.Error(t, err)
		assert.Empty(t, username)
	})
}

func TestManager_FlashRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockFlashStore(ctrl)
	m := New(jwt.New(), store)

	notice := models.Flash{Category: models.FlashSuccess, Message: "You are now logged in."}

	t.Run("KnownVisitor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "visitor-1"})
		rr := httptest.NewRecorder()

		store.EXPECT().Push(gomock.Any(), "visitor-1", notice).Return(nil)
		err := m.AddFlash(req.Context(), rr, req, notice)
		assert.NoError(t, err)

		// No new visitor cookie should be set.
		assert.Empty(t, rr.Result().Cookies())

		store.EXPECT().PopAll(gomock.Any(), "visitor-1").Return([]models.Flash{notice}, nil)
		flashes, err := m.PopFlashes(req.Context(), rr, req)
		assert.NoError(t, err)
		assert.Equal(t, []models.Flash{notice}, flashes)
	})

	t.Run("NewVisitorGetsCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		var seenID string
		store.EXPECT().
			Push(gomock.Any(), gomock.Any(), notice).
			DoAndReturn(func(_ context.Context, visitorID string, _ models.Flash) error {
				seenID = visitorID
				return nil
			})

		err := m.AddFlash(req.Context(), rr, req, notice)
		assert.NoError(t, err)
		assert.NotEmpty(t, seenID)

		cookies := rr.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, VisitorCookie, cookies[0].Name)
		assert.Equal(t, seenID, cookies[0].Value)
	})
}
