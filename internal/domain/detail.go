package domain

import "time"

// ThreadDetail is the assembled read model for GET /threads/{threadId}.
type ThreadDetail struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// CommentDetail is one comment within a thread detail. Content carries the
// deleted-comment placeholder when the underlying row is soft-deleted.
type CommentDetail struct {
	Id        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

// ReplyDetail is one reply within a comment.
type ReplyDetail struct {
	Id       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}
