package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/middleware"
)

// Func-field service mocks, one per contract.

type mockThreadService struct {
	addThreadFunc       func(payload map[string]interface{}) (domain.AddedThread, error)
	getThreadDetailFunc func(threadId string) (domain.ThreadDetail, error)
}

func (m *mockThreadService) AddThread(payload map[string]interface{}) (domain.AddedThread, error) {
	return m.addThreadFunc(payload)
}

func (m *mockThreadService) GetThreadDetail(threadId string) (domain.ThreadDetail, error) {
	return m.getThreadDetailFunc(threadId)
}

type mockCommentService struct {
	addCommentFunc    func(payload map[string]interface{}, threadId, owner string) (domain.AddedComment, error)
	deleteCommentFunc func(threadId, commentId, owner string) error
}

func (m *mockCommentService) AddComment(payload map[string]interface{}, threadId, owner string) (domain.AddedComment, error) {
	return m.addCommentFunc(payload, threadId, owner)
}

func (m *mockCommentService) DeleteComment(threadId, commentId, owner string) error {
	return m.deleteCommentFunc(threadId, commentId, owner)
}

type mockReplyService struct {
	addReplyFunc    func(payload map[string]interface{}, commentId, threadId, owner string) (domain.AddedReply, error)
	deleteReplyFunc func(threadId, commentId, replyId, owner string) error
}

func (m *mockReplyService) AddReply(payload map[string]interface{}, commentId, threadId, owner string) (domain.AddedReply, error) {
	return m.addReplyFunc(payload, commentId, threadId, owner)
}

func (m *mockReplyService) DeleteReply(threadId, commentId, replyId, owner string) error {
	return m.deleteReplyFunc(threadId, commentId, replyId, owner)
}

type mockLikeService struct {
	toggleLikeFunc func(threadId, commentId, owner string) error
}

func (m *mockLikeService) ToggleLike(threadId, commentId, owner string) error {
	return m.toggleLikeFunc(threadId, commentId, owner)
}

type mockAuthService struct {
	registerFunc func(payload map[string]interface{}) (domain.RegisteredUser, error)
	loginFunc    func(payload map[string]interface{}) (string, error)
}

func (m *mockAuthService) Register(payload map[string]interface{}) (domain.RegisteredUser, error) {
	return m.registerFunc(payload)
}

func (m *mockAuthService) Login(payload map[string]interface{}) (string, error) {
	return m.loginFunc(payload)
}

func newTestHandler(auth AuthService, thread ThreadService, comment CommentService, reply ReplyService, like CommentLikeService) *Handler {
	return New(auth, thread, comment, reply, like)
}

// authedRequest builds a request that already passed auth middleware and
// carries the given route variables.
func authedRequest(method, target, body string, vars map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return middleware.WithUser(r, &domain.User{Id: "user-123", Username: "dicoding"})
}

type envelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil, nil)
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
