package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	serviceutils "github.com/diskusi-dev/diskusi/internal/service/utils"
)

// CommentRepository is the storage capability contract for comments.
type CommentRepository interface {
	AddComment(creation domain.CommentCreation, threadId, owner string) (domain.AddedComment, error)
	DeleteComment(commentId string) error
	VerifyCommentOwner(commentId, owner string) error
	VerifyCommentExists(commentId string) error
	GetCommentsByThreadID(threadId string) ([]domain.CommentRow, error)
}

// CommentService covers posting and soft-deleting comments on threads.
type CommentService struct {
	comments CommentRepository
	threads  ThreadRepository
}

func NewComment(comments CommentRepository, threads ThreadRepository) *CommentService {
	return &CommentService{comments, threads}
}

// AddComment verifies the parent thread before validating the payload.
func (s *CommentService) AddComment(payload map[string]interface{}, threadId, owner string) (domain.AddedComment, error) {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return domain.AddedComment{}, err
	}

	creation, err := domain.NewCommentCreation(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	creation.Content = serviceutils.SanitizeContent(creation.Content)

	return s.comments.AddComment(creation, threadId, owner)
}

// DeleteComment soft-deletes after the ownership check. The ownership check
// implicitly verifies existence: a missing comment fails as not-found before
// the owner comparison. threadId is accepted but not cross-checked against
// the comment.
func (s *CommentService) DeleteComment(threadId, commentId, owner string) error {
	if err := s.comments.VerifyCommentOwner(commentId, owner); err != nil {
		return err
	}
	return s.comments.DeleteComment(commentId)
}
