package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

func TestSubmitCommentHandler(t *testing.T) {
	t.Run("adds the comment and re-renders the article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articles := NewMockArticleGetter(ctrl)
		comments := NewMockCommentLister(ctrl)
		poster := NewMockCommentPoster(ctrl)
		sess := NewMockSessioner(ctrl)

		article := &models.ArticleDB{
			ID:        5,
			Title:     "A Text Post",
			Body:      strPtr("some long enough body for reading"),
			Author:    "alice1",
			CreatedAt: time.Now(),
		}
		articles.EXPECT().Get(gomock.Any(), int64(5)).Return(article, nil)
		poster.EXPECT().Add(gomock.Any(), int64(5), "bob22", "great read").Return(nil)
		comments.EXPECT().ListByArticle(gomock.Any(), int64(5)).Return([]models.CommentDB{
			{ID: 1, ArticleID: 5, CmtBy: "bob22", Body: "great read"},
		}, nil)
		sess.EXPECT().
			AddFlash(gomock.Any(), gomock.Any(), gomock.Any(), models.Flash{
				Category: models.FlashSuccess,
				Message:  "Comment added.",
			}).
			Return(nil)
		sess.EXPECT().Username(gomock.Any()).Return("bob22", nil).AnyTimes()
		sess.EXPECT().
			PopFlashes(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]models.Flash{{Category: models.FlashSuccess, Message: "Comment added."}}, nil)

		handler := NewSubmitCommentHandler(newTestRenderer(t), sess, articles, comments, poster)

		w := httptest.NewRecorder()
		r := asUser(withChiParam(formRequest("/submit_comment/5", url.Values{
			"comment": {"great read"},
		}), "id", "5"), "bob22")
		handler(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "great read")
		assert.Contains(t, body, "Comment added.")
	})

	t.Run("unknown article renders the 404 page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articles := NewMockArticleGetter(ctrl)
		sess := NewMockSessioner(ctrl)
		userSession(sess, "bob22")

		articles.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, services.ErrArticleNotFound)

		handler := NewSubmitCommentHandler(newTestRenderer(t), sess, articles, NewMockCommentLister(ctrl), NewMockCommentPoster(ctrl))

		w := httptest.NewRecorder()
		r := asUser(withChiParam(formRequest("/submit_comment/99", url.Values{
			"comment": {"anyone here?"},
		}), "id", "99"), "bob22")
		handler(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page Not Found")
	})
}
