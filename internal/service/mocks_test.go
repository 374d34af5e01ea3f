package service

import "github.com/diskusi-dev/diskusi/internal/domain"

// Func-field mocks with call tracking. Each default behavior is success so
// tests only override what they assert on.

type MockThreadRepository struct {
	addThreadFunc          func(creation domain.ThreadCreation) (domain.AddedThread, error)
	getThreadByIDFunc      func(threadId string) (domain.ThreadRow, error)
	verifyThreadExistsFunc func(threadId string) error

	addThreadCalled          bool
	getThreadByIDCalled      bool
	verifyThreadExistsCalled bool
}

func (m *MockThreadRepository) AddThread(creation domain.ThreadCreation) (domain.AddedThread, error) {
	m.addThreadCalled = true
	if m.addThreadFunc != nil {
		return m.addThreadFunc(creation)
	}
	return domain.AddedThread{Id: "thread-123", Title: creation.Title, Owner: creation.Owner}, nil
}

func (m *MockThreadRepository) GetThreadByID(threadId string) (domain.ThreadRow, error) {
	m.getThreadByIDCalled = true
	if m.getThreadByIDFunc != nil {
		return m.getThreadByIDFunc(threadId)
	}
	return domain.ThreadRow{Id: threadId}, nil
}

func (m *MockThreadRepository) VerifyThreadExists(threadId string) error {
	m.verifyThreadExistsCalled = true
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(threadId)
	}
	return nil
}

type MockCommentRepository struct {
	addCommentFunc            func(creation domain.CommentCreation, threadId, owner string) (domain.AddedComment, error)
	deleteCommentFunc         func(commentId string) error
	verifyCommentOwnerFunc    func(commentId, owner string) error
	verifyCommentExistsFunc   func(commentId string) error
	getCommentsByThreadIDFunc func(threadId string) ([]domain.CommentRow, error)

	addCommentCalled          bool
	deleteCommentCalled       bool
	verifyCommentOwnerCalled  bool
	verifyCommentExistsCalled bool
}

func (m *MockCommentRepository) AddComment(creation domain.CommentCreation, threadId, owner string) (domain.AddedComment, error) {
	m.addCommentCalled = true
	if m.addCommentFunc != nil {
		return m.addCommentFunc(creation, threadId, owner)
	}
	return domain.AddedComment{Id: "comment-123", Content: creation.Content, Owner: owner}, nil
}

func (m *MockCommentRepository) DeleteComment(commentId string) error {
	m.deleteCommentCalled = true
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(commentId, owner string) error {
	m.verifyCommentOwnerCalled = true
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentExists(commentId string) error {
	m.verifyCommentExistsCalled = true
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(commentId)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadID(threadId string) ([]domain.CommentRow, error) {
	if m.getCommentsByThreadIDFunc != nil {
		return m.getCommentsByThreadIDFunc(threadId)
	}
	return []domain.CommentRow{}, nil
}

type MockReplyRepository struct {
	addReplyFunc              func(creation domain.ReplyCreation, commentId, owner string) (domain.AddedReply, error)
	deleteReplyFunc           func(replyId string) error
	verifyReplyOwnerFunc      func(replyId, owner string) error
	getRepliesByCommentIDFunc func(commentId string) ([]domain.ReplyRow, error)

	addReplyCalled         bool
	deleteReplyCalled      bool
	verifyReplyOwnerCalled bool
}

func (m *MockReplyRepository) AddReply(creation domain.ReplyCreation, commentId, owner string) (domain.AddedReply, error) {
	m.addReplyCalled = true
	if m.addReplyFunc != nil {
		return m.addReplyFunc(creation, commentId, owner)
	}
	return domain.AddedReply{Id: "reply-123", Content: creation.Content, Owner: owner}, nil
}

func (m *MockReplyRepository) DeleteReply(replyId string) error {
	m.deleteReplyCalled = true
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(replyId)
	}
	return nil
}

func (m *MockReplyRepository) VerifyReplyOwner(replyId, owner string) error {
	m.verifyReplyOwnerCalled = true
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, owner)
	}
	return nil
}

func (m *MockReplyRepository) GetRepliesByCommentID(commentId string) ([]domain.ReplyRow, error) {
	if m.getRepliesByCommentIDFunc != nil {
		return m.getRepliesByCommentIDFunc(commentId)
	}
	return []domain.ReplyRow{}, nil
}

type MockCommentLikeRepository struct {
	addLikeFunc             func(commentId, owner string) (domain.CommentLike, error)
	removeLikeFunc          func(commentId, owner string) error
	verifyLikeExistenceFunc func(commentId, owner string) (bool, error)

	addLikeCalled    bool
	removeLikeCalled bool
}

func (m *MockCommentLikeRepository) AddLike(commentId, owner string) (domain.CommentLike, error) {
	m.addLikeCalled = true
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, owner)
	}
	return domain.CommentLike{Id: "like-123", CommentId: commentId, Owner: owner}, nil
}

func (m *MockCommentLikeRepository) RemoveLike(commentId, owner string) error {
	m.removeLikeCalled = true
	if m.removeLikeFunc != nil {
		return m.removeLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentLikeRepository) VerifyLikeExistence(commentId, owner string) (bool, error) {
	if m.verifyLikeExistenceFunc != nil {
		return m.verifyLikeExistenceFunc(commentId, owner)
	}
	return false, nil
}

type MockUserRepository struct {
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
	verifyAvailableUsernameFunc func(username string) error
	getUserByUsernameFunc       func(username string) (domain.User, error)

	addUserCalled                 bool
	verifyAvailableUsernameCalled bool
}

func (m *MockUserRepository) AddUser(user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.addUserCalled = true
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserRepository) VerifyAvailableUsername(username string) error {
	m.verifyAvailableUsernameCalled = true
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) GetUserByUsername(username string) (domain.User, error) {
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "access-token", nil
}
