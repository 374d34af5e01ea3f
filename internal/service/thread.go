package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	serviceutils "github.com/diskusi-dev/diskusi/internal/service/utils"
)

// ThreadRepository is the storage capability contract for threads.
type ThreadRepository interface {
	AddThread(creation domain.ThreadCreation) (domain.AddedThread, error)
	GetThreadByID(threadId string) (domain.ThreadRow, error)
	VerifyThreadExists(threadId string) error
}

// ThreadService covers thread creation and the assembled thread detail
// read model.
type ThreadService struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) *ThreadService {
	return &ThreadService{threads, comments, replies}
}

// AddThread validates the payload and persists the thread.
func (s *ThreadService) AddThread(payload map[string]interface{}) (domain.AddedThread, error) {
	creation, err := domain.NewThreadCreation(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	creation.Title = serviceutils.SanitizeContent(creation.Title)
	creation.Body = serviceutils.SanitizeContent(creation.Body)

	return s.threads.AddThread(creation)
}

// GetThreadDetail assembles a thread with its comments (ascending by date,
// like counts aggregated) and each comment's replies. Soft-deleted comments
// and replies keep their position but render as placeholders.
func (s *ThreadService) GetThreadDetail(threadId string) (domain.ThreadDetail, error) {
	thread, err := s.threads.GetThreadByID(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.comments.GetCommentsByThreadID(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	commentDetails := make([]domain.CommentDetail, 0, len(comments))
	for _, comment := range comments {
		replies, err := s.replies.GetRepliesByCommentID(comment.Id)
		if err != nil {
			return domain.ThreadDetail{}, err
		}

		replyDetails := make([]domain.ReplyDetail, 0, len(replies))
		for _, reply := range replies {
			content := reply.Content
			if reply.IsDelete {
				content = domain.DeletedReplyPlaceholder
			}
			replyDetails = append(replyDetails, domain.ReplyDetail{
				Id:       reply.Id,
				Content:  content,
				Date:     reply.Date,
				Username: reply.Username,
			})
		}

		content := comment.Content
		if comment.IsDelete {
			content = domain.DeletedCommentPlaceholder
		}
		commentDetails = append(commentDetails, domain.CommentDetail{
			Id:        comment.Id,
			Username:  comment.Username,
			Date:      comment.Date,
			Content:   content,
			LikeCount: comment.LikeCount,
			Replies:   replyDetails,
		})
	}

	return domain.ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: commentDetails,
	}, nil
}
