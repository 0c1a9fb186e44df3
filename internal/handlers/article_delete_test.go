package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

func TestDeleteArticleHandler(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		mockSetup func(svc *MockArticleDeleter, sess *MockSessioner)
	}{
		{
			name:     "owner deletes and gets a success notice",
			username: "alice1",
			mockSetup: func(svc *MockArticleDeleter, sess *MockSessioner) {
				svc.EXPECT().Delete(gomock.Any(), int64(9), "alice1").Return(nil)
				sess.EXPECT().
					AddFlash(gomock.Any(), gomock.Any(), gomock.Any(), models.Flash{
						Category: models.FlashSuccess,
						Message:  "Article deleted.",
					}).
					Return(nil)
			},
		},
		{
			name:     "non-owner is denied",
			username: "mallory",
			mockSetup: func(svc *MockArticleDeleter, sess *MockSessioner) {
				svc.EXPECT().Delete(gomock.Any(), int64(9), "mallory").Return(services.ErrPermissionDenied)
				sess.EXPECT().
					AddFlash(gomock.Any(), gomock.Any(), gomock.Any(), models.Flash{
						Category: models.FlashDanger,
						Message:  "Permission denied.",
					}).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockArticleDeleter(ctrl)
			sess := NewMockSessioner(ctrl)
			tt.mockSetup(svc, sess)

			handler := NewDeleteArticleHandler(sess, svc)

			w := httptest.NewRecorder()
			r := asUser(withChiParam(httptest.NewRequest(http.MethodPost, "/delete_article/9", nil), "id", "9"), tt.username)
			handler(w, r)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		})
	}
}

func TestDeleteArticleHandler_BadIDRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewDeleteArticleHandler(NewMockSessioner(ctrl), NewMockArticleDeleter(ctrl))

	w := httptest.NewRecorder()
	r := asUser(withChiParam(httptest.NewRequest(http.MethodGet, "/delete_article/abc", nil), "id", "abc"), "alice1")
	handler(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}
