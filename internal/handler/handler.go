package handler

import (
	"encoding/json"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

// errUnauthenticated answers requests that reach a protected handler without
// an authenticated user in context. Rendered through WriteError so the 401
// carries the same JSON fail envelope as every other client error.
var errUnauthenticated = &internal_errors.ErrorWithStatusCode{Message: "Missing authentication", StatusCode: http.StatusUnauthorized}

// Service contracts consumed by the HTTP layer. Handlers stay thin: extract
// identity and parameters, invoke the use case, shape the envelope.

type ThreadService interface {
	AddThread(payload map[string]interface{}) (domain.AddedThread, error)
	GetThreadDetail(threadId string) (domain.ThreadDetail, error)
}

type CommentService interface {
	AddComment(payload map[string]interface{}, threadId, owner string) (domain.AddedComment, error)
	DeleteComment(threadId, commentId, owner string) error
}

type ReplyService interface {
	AddReply(payload map[string]interface{}, commentId, threadId, owner string) (domain.AddedReply, error)
	DeleteReply(threadId, commentId, replyId, owner string) error
}

type CommentLikeService interface {
	ToggleLike(threadId, commentId, owner string) error
}

type AuthService interface {
	Register(payload map[string]interface{}) (domain.RegisteredUser, error)
	Login(payload map[string]interface{}) (string, error)
}

type Handler struct {
	auth    AuthService
	thread  ThreadService
	comment CommentService
	reply   ReplyService
	like    CommentLikeService
}

func New(auth AuthService, thread ThreadService, comment CommentService, reply ReplyService, like CommentLikeService) *Handler {
	return &Handler{auth, thread, comment, reply, like}
}

type successResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(successResponse{Status: "success", Data: data}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
