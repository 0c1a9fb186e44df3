package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

var (
	// ErrArticleNotFound is returned when the requested article id does not exist.
	ErrArticleNotFound = errors.New("article not found")
	// ErrPermissionDenied is returned when a user touches an article they do not own.
	ErrPermissionDenied = errors.New("permission denied")
)

// ArticleReader defines read operations for articles.
type ArticleReader interface {
	List(ctx context.Context) ([]models.ArticleDB, error)
	ListByAuthor(ctx context.Context, author string) ([]models.ArticleDB, error)
	GetByID(ctx context.Context, id int64) (*models.ArticleDB, error)
	GetByAuthorAndID(ctx context.Context, author string, id int64) (*models.ArticleDB, error)
}

// ArticleWriter defines write operations for articles. Update and delete
// carry the requesting author so ownership is checked inside the statement.
type ArticleWriter interface {
	SaveText(ctx context.Context, title, body, author string) (int64, error)
	SaveImage(ctx context.Context, author, url string, numImgs int, title string) (int64, error)
	UpdateText(ctx context.Context, id int64, author, title, body string) (int64, error)
	UpdateTitle(ctx context.Context, id int64, author, title string) (int64, error)
	Delete(ctx context.Context, id int64, author string) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ArticleService handles article listing, authoring and ownership-gated
// mutation, and publishes content events.
type ArticleService struct {
	readRepo    ArticleReader
	writeRepo   ArticleWriter
	kafkaWriter KafkaWriter
}

// NewArticleService creates a new ArticleService.
func NewArticleService(readRepo ArticleReader, writeRepo ArticleWriter, kafkaWriter KafkaWriter) *ArticleService {
	return &ArticleService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a content event to Kafka. Failures are logged
// and never surfaced to the visitor.
func (s *ArticleService) publishEvent(ctx context.Context, event models.ContentEvent) {
	publishContentEvent(ctx, s.kafkaWriter, event)
}

// List returns all articles.
func (s *ArticleService) List(ctx context.Context) ([]models.ArticleDB, error) {
	return s.readRepo.List(ctx)
}

// ListByAuthor returns the given author's articles.
func (s *ArticleService) ListByAuthor(ctx context.Context, author string) ([]models.ArticleDB, error) {
	return s.readRepo.ListByAuthor(ctx, author)
}

// Get returns the article with the given id or ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, id int64) (*models.ArticleDB, error) {
	article, err := s.readRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get article", "id", id, "error", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetOwned returns the article only if it is owned by author, otherwise
// ErrPermissionDenied. A missing article is indistinguishable from a
// non-owned one on purpose.
func (s *ArticleService) GetOwned(ctx context.Context, author string, id int64) (*models.ArticleDB, error) {
	article, err := s.readRepo.GetByAuthorAndID(ctx, author, id)
	if err != nil {
		logger.Log.Errorw("failed to get owned article", "id", id, "author", author, "error", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrPermissionDenied
	}
	return article, nil
}

// Create inserts a new text article authored by author.
func (s *ArticleService) Create(ctx context.Context, title, body, author string) error {
	id, err := s.writeRepo.SaveText(ctx, title, body, author)
	if err != nil {
		logger.Log.Errorw("failed to save article", "author", author, "error", err)
		return err
	}

	s.publishEvent(ctx, models.ContentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    models.EventArticleCreated,
		ArticleID: id,
		Author:    author,
		Title:     title,
	})
	return nil
}

// CreateImage inserts a new image article authored by author.
func (s *ArticleService) CreateImage(ctx context.Context, author, url string, numImgs int, title string) error {
	id, err := s.writeRepo.SaveImage(ctx, author, url, numImgs, title)
	if err != nil {
		logger.Log.Errorw("failed to save image article", "author", author, "error", err)
		return err
	}

	s.publishEvent(ctx, models.ContentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    models.EventArticleCreated,
		ArticleID: id,
		Author:    author,
		Title:     title,
	})
	return nil
}

// UpdateText updates title and body of an owned text article.
func (s *ArticleService) UpdateText(ctx context.Context, id int64, author, title, body string) error {
	rows, err := s.writeRepo.UpdateText(ctx, id, author, title, body)
	if err != nil {
		logger.Log.Errorw("failed to update article", "id", id, "author", author, "error", err)
		return err
	}
	if rows == 0 {
		return ErrPermissionDenied
	}

	s.publishEvent(ctx, models.ContentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    models.EventArticleUpdated,
		ArticleID: id,
		Author:    author,
		Title:     title,
	})
	return nil
}

// UpdateTitle updates only the title of an owned image article.
func (s *ArticleService) UpdateTitle(ctx context.Context, id int64, author, title string) error {
	rows, err := s.writeRepo.UpdateTitle(ctx, id, author, title)
	if err != nil {
		logger.Log.Errorw("failed to update article title", "id", id, "author", author, "error", err)
		return err
	}
	if rows == 0 {
		return ErrPermissionDenied
	}

	s.publishEvent(ctx, models.ContentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    models.EventArticleUpdated,
		ArticleID: id,
		Author:    author,
		Title:     title,
	})
	return nil
}

// Delete removes an owned article.
func (s *ArticleService) Delete(ctx context.Context, id int64, author string) error {
	rows, err := s.writeRepo.Delete(ctx, id, author)
	if err != nil {
		logger.Log.Errorw("failed to delete article", "id", id, "author", author, "error", err)
		return err
	}
	if rows == 0 {
		return ErrPermissionDenied
	}

	s.publishEvent(ctx, models.ContentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    models.EventArticleDeleted,
		ArticleID: id,
		Author:    author,
	})
	return nil
}

// publishContentEvent writes a content event to Kafka through writer.
// A nil writer disables publishing.
func publishContentEvent(ctx context.Context, writer KafkaWriter, event models.ContentEvent) {
	if writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal content event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish content event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("content event published", "event_id", event.EventID, "action", event.Action)
	}
}
