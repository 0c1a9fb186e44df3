package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// CommentReader defines read operations for comments.
type CommentReader interface {
	ListByArticleID(ctx context.Context, articleID int64) ([]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, articleID int64, cmtBy, body string) error
}

// CommentService handles commenting. Comments are append-only.
type CommentService struct {
	readRepo    CommentReader
	writeRepo   CommentWriter
	kafkaWriter KafkaWriter
}

// NewCommentService creates a new CommentService.
func NewCommentService(readRepo CommentReader, writeRepo CommentWriter, kafkaWriter KafkaWriter) *CommentService {
	return &CommentService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// ListByArticle returns the article's comments, oldest first.
func (s *CommentService) ListByArticle(ctx context.Context, articleID int64) ([]models.CommentDB, error) {
	return s.readRepo.ListByArticleID(ctx, articleID)
}

// Add appends a comment to the article by the given user.
func (s *CommentService) Add(ctx context.Context, articleID int64, author, body string) error {
	if err := s.writeRepo.Save(ctx, articleID, author, body); err != nil {
		logger.Log.Errorw("failed to save comment", "article_id", articleID, "author", author, "error", err)
		return err
	}

	publishContentEvent(ctx, s.kafkaWriter, models.ContentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    models.EventCommentCreated,
		ArticleID: articleID,
		Author:    author,
	})
	return nil
}
