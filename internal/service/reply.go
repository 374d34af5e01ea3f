package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	serviceutils "github.com/diskusi-dev/diskusi/internal/service/utils"
)

// ReplyRepository is the storage capability contract for replies. The
// storage layer carries more reply operations than listed here; services
// declare only what they call.
type ReplyRepository interface {
	AddReply(creation domain.ReplyCreation, commentId, owner string) (domain.AddedReply, error)
	DeleteReply(replyId string) error
	VerifyReplyOwner(replyId, owner string) error
	GetRepliesByCommentID(commentId string) ([]domain.ReplyRow, error)
}

// ReplyService covers posting and soft-deleting replies on comments.
type ReplyService struct {
	replies  ReplyRepository
	comments CommentRepository
	threads  ThreadRepository
}

func NewReply(replies ReplyRepository, comments CommentRepository, threads ThreadRepository) *ReplyService {
	return &ReplyService{replies, comments, threads}
}

// AddReply validates the payload before the existence checks, then verifies
// the thread and the parent comment.
func (s *ReplyService) AddReply(payload map[string]interface{}, commentId, threadId, owner string) (domain.AddedReply, error) {
	creation, err := domain.NewReplyCreation(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	creation.Content = serviceutils.SanitizeContent(creation.Content)

	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return domain.AddedReply{}, err
	}

	return s.replies.AddReply(creation, commentId, owner)
}

// DeleteReply verifies the full ancestry (thread, comment) and reply
// ownership before soft-deleting.
func (s *ReplyService) DeleteReply(threadId, commentId, replyId, owner string) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(replyId, owner); err != nil {
		return err
	}
	return s.replies.DeleteReply(replyId)
}
