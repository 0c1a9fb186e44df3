package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/articleboard/articleboard/internal/models"
	"github.com/articleboard/articleboard/internal/services"
)

func TestArticleService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, nil)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.ArticleDB{ID: 7, Title: "Hi there", Author: "alice1"}, nil)

		article, err := svc.Get(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Hi there", article.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		article, err := svc.Get(ctx, 404)
		assert.ErrorIs(t, err, services.ErrArticleNotFound)
		assert.Nil(t, article)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(nil, errors.New("db error"))

		article, err := svc.Get(ctx, 7)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, article)
	})
}

func TestArticleService_GetOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, nil)
	ctx := context.Background()

	t.Run("owned", func(t *testing.T) {
		mockReader.EXPECT().
			GetByAuthorAndID(gomock.Any(), "alice1", int64(7)).
			Return(&models.ArticleDB{ID: 7, Author: "alice1"}, nil)

		article, err := svc.GetOwned(ctx, "alice1", 7)
		assert.NoError(t, err)
		assert.NotNil(t, article)
	})

	t.Run("not owned or missing", func(t *testing.T) {
		mockReader.EXPECT().
			GetByAuthorAndID(gomock.Any(), "bob22", int64(7)).
			Return(nil, nil)

		article, err := svc.GetOwned(ctx, "bob22", 7)
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
		assert.Nil(t, article)
	})
}

func TestArticleService_CreatePublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, mockKafka)
	ctx := context.Background()

	mockWriter.EXPECT().
		SaveText(gomock.Any(), "Hi there", "a body long enough to be a real article", "alice1").
		Return(int64(42), nil)

	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			var event models.ContentEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.EventArticleCreated, event.Action)
			assert.EqualValues(t, 42, event.ArticleID)
			assert.Equal(t, "alice1", event.Author)
			assert.Equal(t, "Hi there", event.Title)
			return nil
		})

	err := svc.Create(ctx, "Hi there", "a body long enough to be a real article", "alice1")
	assert.NoError(t, err)
}

func TestArticleService_CreateWithoutKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, nil)

	mockWriter.EXPECT().
		SaveText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	// A nil kafka writer must not panic or fail the operation.
	assert.NoError(t, svc.Create(context.Background(), "t", "b", "alice1"))
}

func TestArticleService_OwnedMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, mockKafka)
	ctx := context.Background()

	t.Run("UpdateText denied on zero rows", func(t *testing.T) {
		mockWriter.EXPECT().
			UpdateText(gomock.Any(), int64(7), "bob22", "Hijacked", "body body body").
			Return(int64(0), nil)

		err := svc.UpdateText(ctx, 7, "bob22", "Hijacked", "body body body")
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
	})

	t.Run("UpdateText success publishes event", func(t *testing.T) {
		mockWriter.EXPECT().
			UpdateText(gomock.Any(), int64(7), "alice1", "New", "new body text").
			Return(int64(1), nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.UpdateText(ctx, 7, "alice1", "New", "new body text"))
	})

	t.Run("UpdateTitle denied on zero rows", func(t *testing.T) {
		mockWriter.EXPECT().
			UpdateTitle(gomock.Any(), int64(7), "bob22", "Hijacked").
			Return(int64(0), nil)

		err := svc.UpdateTitle(ctx, 7, "bob22", "Hijacked")
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
	})

	t.Run("Delete denied on zero rows", func(t *testing.T) {
		mockWriter.EXPECT().
			Delete(gomock.Any(), int64(7), "bob22").
			Return(int64(0), nil)

		err := svc.Delete(ctx, 7, "bob22")
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
	})

	t.Run("Delete success publishes event even when kafka fails", func(t *testing.T) {
		mockWriter.EXPECT().
			Delete(gomock.Any(), int64(7), "alice1").
			Return(int64(1), nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		// Publish failures are logged, not surfaced.
		assert.NoError(t, svc.Delete(ctx, 7, "alice1"))
	})
}
