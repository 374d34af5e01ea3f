package service

import "github.com/diskusi-dev/diskusi/internal/domain"

// CommentLikeRepository is the storage capability contract for comment
// likes. Aggregated like counts are read through the comment repository, so
// they are not part of this interface.
type CommentLikeRepository interface {
	AddLike(commentId, owner string) (domain.CommentLike, error)
	RemoveLike(commentId, owner string) error
	VerifyLikeExistence(commentId, owner string) (bool, error)
}

// CommentLikeService toggles a user's like on a comment.
type CommentLikeService struct {
	likes    CommentLikeRepository
	comments CommentRepository
	threads  ThreadRepository
}

func NewCommentLike(likes CommentLikeRepository, comments CommentRepository, threads ThreadRepository) *CommentLikeService {
	return &CommentLikeService{likes, comments, threads}
}

// ToggleLike verifies the thread and comment, then flips the like state:
// an existing like is removed, a missing one is added. This is a toggle,
// not a set operation — two rapid toggles from one user alternate state.
func (s *CommentLikeService) ToggleLike(threadId, commentId, owner string) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}

	liked, err := s.likes.VerifyLikeExistence(commentId, owner)
	if err != nil {
		return err
	}

	if liked {
		return s.likes.RemoveLike(commentId, owner)
	}
	_, err = s.likes.AddLike(commentId, owner)
	return err
}
