package models

import "time"

// CommentDB represents a comment record in the database.
// Comments are append-only: never updated or deleted.
type CommentDB struct {
	ID        int64     `db:"id"`
	ArticleID int64     `db:"article_id"`
	CmtBy     string    `db:"cmt_by"` // commenting user's username
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
