package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// CommentReadRepository handles comment read operations.
type CommentReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentReadRepository(db *sqlx.DB, txGetter TxGetter) *CommentReadRepository {
	return &CommentReadRepository{db: db, txGetter: txGetter}
}

// ListByArticleID returns the article's comments, oldest first.
func (r *CommentReadRepository) ListByArticleID(ctx context.Context, articleID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT id, article_id, cmt_by, body, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY id ASC
	`

	var comments []models.CommentDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &comments, query, articleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID},
		"result", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return comments, nil
}

// CommentWriteRepository handles comment write operations. Comments are
// append-only.
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter TxGetter) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new comment on the given article.
func (r *CommentWriteRepository) Save(ctx context.Context, articleID int64, cmtBy, body string) error {
	const query = `
		INSERT INTO comments (article_id, cmt_by, body, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{articleID, cmtBy, body}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
