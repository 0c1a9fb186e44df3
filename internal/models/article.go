package models

import "time"

// ArticleDB represents an article record in the database.
// Text articles carry a body and no url; image articles carry a url and
// an image count and no body.
type ArticleDB struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Body      *string   `db:"body"`
	Author    string    `db:"author"` // references users.username by value
	URL       *string   `db:"url"`
	NumImgs   *int      `db:"num_imgs"`
	CreatedAt time.Time `db:"created_at"`
}

// IsImage reports whether the article is rendered with the gallery variant.
func (a *ArticleDB) IsImage() bool {
	return a.URL != nil && *a.URL != ""
}

// BodyText returns the article body, empty for image articles.
func (a *ArticleDB) BodyText() string {
	if a.Body == nil {
		return ""
	}
	return *a.Body
}

// ImageURL returns the gallery url, empty for text articles.
func (a *ArticleDB) ImageURL() string {
	if a.URL == nil {
		return ""
	}
	return *a.URL
}

// ImageCount returns the number of images in the gallery, zero for text articles.
func (a *ArticleDB) ImageCount() int {
	if a.NumImgs == nil {
		return 0
	}
	return *a.NumImgs
}
