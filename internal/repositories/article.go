package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// ArticleReadRepository handles article read operations.
type ArticleReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewArticleReadRepository(db *sqlx.DB, txGetter TxGetter) *ArticleReadRepository {
	return &ArticleReadRepository{db: db, txGetter: txGetter}
}

const articleColumns = "id, title, body, author, url, num_imgs, created_at"

// List returns all articles, newest first.
func (r *ArticleReadRepository) List(ctx context.Context) ([]models.ArticleDB, error) {
	const query = `
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY id DESC
	`

	var articles []models.ArticleDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &articles, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(articles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return articles, nil
}

// ListByAuthor returns the author's articles, newest first.
func (r *ArticleReadRepository) ListByAuthor(ctx context.Context, author string) ([]models.ArticleDB, error) {
	const query = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE author = $1
		ORDER BY id DESC
	`

	var articles []models.ArticleDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &articles, query, author)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{author},
		"result", len(articles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return articles, nil
}

// GetByID returns the article with the given id, or nil when no such
// article exists.
func (r *ArticleReadRepository) GetByID(ctx context.Context, id int64) (*models.ArticleDB, error) {
	const query = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1
		LIMIT 1
	`

	var article models.ArticleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &article, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// GetByAuthorAndID returns the article only when it is owned by the given
// author, nil otherwise. Used to gate the edit form.
func (r *ArticleReadRepository) GetByAuthorAndID(ctx context.Context, author string, id int64) (*models.ArticleDB, error) {
	const query = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE author = $1 AND id = $2
		LIMIT 1
	`

	var article models.ArticleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &article, query, author, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{author, id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// ArticleWriteRepository handles article write operations. Ownership
// checks are part of the update and delete statements themselves, so
// authorization and mutation are a single atomic operation.
type ArticleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewArticleWriteRepository(db *sqlx.DB, txGetter TxGetter) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db, txGetter: txGetter}
}

// SaveText inserts a new text article and returns its id.
func (r *ArticleWriteRepository) SaveText(ctx context.Context, title, body, author string) (int64, error) {
	const query = `
		INSERT INTO articles (title, body, author, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`
	args := []any{title, body, author}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// SaveImage inserts a new image article (url and image count, no body)
// and returns its id.
func (r *ArticleWriteRepository) SaveImage(ctx context.Context, author, url string, numImgs int, title string) (int64, error) {
	const query = `
		INSERT INTO articles (author, url, num_imgs, title, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{author, url, numImgs, title}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// UpdateText updates title and body of an owned text article. Returns the
// number of rows affected: zero means the article does not exist or is
// not owned by author.
func (r *ArticleWriteRepository) UpdateText(ctx context.Context, id int64, author, title, body string) (int64, error) {
	const query = `
		UPDATE articles
		SET title = $1, body = $2
		WHERE id = $3 AND author = $4
	`
	args := []any{title, body, id, author}

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

	return rowsAffected, err
}

// UpdateTitle updates only the title of an owned article. Image articles
// keep their gallery untouched.
func (r *ArticleWriteRepository) UpdateTitle(ctx context.Context, id int64, author, title string) (int64, error) {
	const query = `
		UPDATE articles
		SET title = $1
		WHERE id = $2 AND author = $3
	`
	args := []any{title, id, author}

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

	return rowsAffected, err
}

// Delete removes an owned article. Returns the number of rows affected:
// zero means the article does not exist or is not owned by author.
func (r *ArticleWriteRepository) Delete(ctx context.Context, id int64, author string) (int64, error) {
	const query = `
		DELETE FROM articles
		WHERE id = $1 AND author = $2
	`
	args := []any{id, author}

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

	return rowsAffected, err
}
