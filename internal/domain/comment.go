package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCommentMissingProperty = errors.New("NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentWrongType       = errors.New("NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrCommentContentEmpty    = errors.New("NEW_COMMENT.CONTENT_EMPTY")
	ErrCommentNotFound        = errors.New("COMMENT_REPOSITORY.COMMENT_NOT_FOUND")
	ErrCommentNotOwner        = errors.New("COMMENT_REPOSITORY.NOT_THE_OWNER")
)

// DeletedCommentPlaceholder replaces the content of soft-deleted comments in
// thread detail responses. The stored content itself is never touched.
const DeletedCommentPlaceholder = "**komentar telah dihapus**"

// CommentCreation is the validated input for posting a comment.
type CommentCreation struct {
	Content string
}

// NewCommentCreation validates a raw payload into a CommentCreation.
// Content must be present, string-typed and not whitespace-only.
func NewCommentCreation(payload map[string]interface{}) (CommentCreation, error) {
	content, err := requireString(payload, "content", ErrCommentMissingProperty, ErrCommentWrongType)
	if err != nil {
		return CommentCreation{}, err
	}
	if strings.TrimSpace(content) == "" {
		return CommentCreation{}, ErrCommentContentEmpty
	}
	return CommentCreation{Content: content}, nil
}

// AddedComment is the creation result returned to the client.
type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// CommentRow is a comment as read from storage for thread detail assembly:
// owner username joined in, like count aggregated over comment_likes.
type CommentRow struct {
	Id        string
	Username  string
	Date      time.Time
	Content   string
	IsDelete  bool
	LikeCount int
}
