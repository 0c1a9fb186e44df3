package models

// Content event actions published to Kafka.
const (
	EventArticleCreated = "article_created"
	EventArticleUpdated = "article_updated"
	EventArticleDeleted = "article_deleted"
	EventCommentCreated = "comment_created"
)

// ContentEvent is the message published for article and comment activity.
type ContentEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Action    string `json:"action"`
	ArticleID int64  `json:"article_id,omitempty"`
	Author    string `json:"author"`
	Title     string `json:"title,omitempty"`
}
