package domain

import "errors"

var (
	ErrCommentLikeMissingProperty = errors.New("COMMENT_LIKE.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentLikeWrongType       = errors.New("COMMENT_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrLikeNotFound               = errors.New("COMMENT_LIKE_REPOSITORY.LIKE_NOT_FOUND")
)

// CommentLike is a single like row. At most one exists per (commentId, owner)
// pair, enforced by the storage schema.
type CommentLike struct {
	Id        string
	CommentId string
	Owner     string
}

// NewCommentLike validates repository output into a CommentLike.
func NewCommentLike(payload map[string]interface{}) (CommentLike, error) {
	id, err := requireString(payload, "id", ErrCommentLikeMissingProperty, ErrCommentLikeWrongType)
	if err != nil {
		return CommentLike{}, err
	}
	commentId, err := requireString(payload, "commentId", ErrCommentLikeMissingProperty, ErrCommentLikeWrongType)
	if err != nil {
		return CommentLike{}, err
	}
	owner, err := requireString(payload, "owner", ErrCommentLikeMissingProperty, ErrCommentLikeWrongType)
	if err != nil {
		return CommentLike{}, err
	}
	return CommentLike{Id: id, CommentId: commentId, Owner: owner}, nil
}
