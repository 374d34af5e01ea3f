package domain

import (
	"errors"
	"time"
)

var (
	ErrReplyMissingProperty = errors.New("NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrReplyWrongType       = errors.New("NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrReplyNotFound        = errors.New("REPLY_REPOSITORY.REPLY_NOT_FOUND")
	ErrReplyNotOwner        = errors.New("REPLY_REPOSITORY.NOT_THE_OWNER")

	ErrAddedReplyMissingProperty = errors.New("ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrAddedReplyWrongType       = errors.New("ADDED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// DeletedReplyPlaceholder replaces the content of soft-deleted replies in
// thread detail responses.
const DeletedReplyPlaceholder = "**balasan telah dihapus**"

// ReplyCreation is the validated input for posting a reply.
// Unlike comments, whitespace-only content is accepted.
type ReplyCreation struct {
	Content string
}

// NewReplyCreation validates a raw payload into a ReplyCreation.
func NewReplyCreation(payload map[string]interface{}) (ReplyCreation, error) {
	content, err := requireString(payload, "content", ErrReplyMissingProperty, ErrReplyWrongType)
	if err != nil {
		return ReplyCreation{}, err
	}
	return ReplyCreation{Content: content}, nil
}

// AddedReply is the creation result, built from repository output rather than
// request input.
type AddedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// NewAddedReply validates repository output into an AddedReply.
func NewAddedReply(payload map[string]interface{}) (AddedReply, error) {
	id, err := requireString(payload, "id", ErrAddedReplyMissingProperty, ErrAddedReplyWrongType)
	if err != nil {
		return AddedReply{}, err
	}
	content, err := requireString(payload, "content", ErrAddedReplyMissingProperty, ErrAddedReplyWrongType)
	if err != nil {
		return AddedReply{}, err
	}
	owner, err := requireString(payload, "owner", ErrAddedReplyMissingProperty, ErrAddedReplyWrongType)
	if err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: id, Content: content, Owner: owner}, nil
}

// ReplyRow is a reply as read from storage, including the owner's username.
type ReplyRow struct {
	Id       string
	Content  string
	Date     time.Time
	Username string
	IsDelete bool
}
