package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/articleboard/articleboard/internal/models"
)

func TestStoreHandler(t *testing.T) {
	t.Run("valid submission creates the image article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockImageArticleCreator(ctrl)
		sess := NewMockSessioner(ctrl)

		svc.EXPECT().
			CreateImage(gomock.Any(), "alice1", "https://img.example.com/g/", 4, "My Gallery").
			Return(nil)
		sess.EXPECT().
			AddFlash(gomock.Any(), gomock.Any(), gomock.Any(), models.Flash{
				Category: models.FlashSuccess,
				Message:  "Uploaded successfully.",
			}).
			Return(nil)

		handler := NewStoreHandler(sess, svc)

		w := httptest.NewRecorder()
		r := asUser(formRequest("/store", url.Values{
			"title":    {"My Gallery"},
			"url":      {"https://img.example.com/g/"},
			"num_imgs": {"4"},
		}), "alice1")
		handler(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("non-numeric image count flashes and returns to upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sess := NewMockSessioner(ctrl)
		sess.EXPECT().
			AddFlash(gomock.Any(), gomock.Any(), gomock.Any(), models.Flash{
				Category: models.FlashDanger,
				Message:  "Image count must be a number.",
			}).
			Return(nil)

		handler := NewStoreHandler(sess, NewMockImageArticleCreator(ctrl))

		w := httptest.NewRecorder()
		r := asUser(formRequest("/store", url.Values{
			"title":    {"My Gallery"},
			"url":      {"https://img.example.com/g/"},
			"num_imgs": {"four"},
		}), "alice1")
		handler(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/upload", w.Header().Get("Location"))
	})

	t.Run("missing url flashes the field message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sess := NewMockSessioner(ctrl)
		sess.EXPECT().
			AddFlash(gomock.Any(), gomock.Any(), gomock.Any(), models.Flash{
				Category: models.FlashDanger,
				Message:  "Image reference is required",
			}).
			Return(nil)

		handler := NewStoreHandler(sess, NewMockImageArticleCreator(ctrl))

		w := httptest.NewRecorder()
		r := asUser(formRequest("/store", url.Values{
			"title":    {"My Gallery"},
			"num_imgs": {"4"},
		}), "alice1")
		handler(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/upload", w.Header().Get("Location"))
	})

	t.Run("GET redirects to the upload instructions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewStoreHandler(NewMockSessioner(ctrl), NewMockImageArticleCreator(ctrl))

		w := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/store", nil), "alice1")
		handler(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/upload", w.Header().Get("Location"))
	})
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := NewMockSessioner(ctrl)
	userSession(sess, "alice1")

	handler := NewUploadHandler(newTestRenderer(t), sess)

	w := httptest.NewRecorder()
	r := asUser(httptest.NewRequest(http.MethodGet, "/upload", nil), "alice1")
	handler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/store"`)
}
