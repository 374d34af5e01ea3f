package domain

import (
	"errors"
	"time"
)

var (
	ErrThreadMissingProperty = errors.New("NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrThreadWrongType       = errors.New("NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrThreadNotFound        = errors.New("THREAD.NOT_FOUND")
)

// ThreadCreation is the validated input for creating a thread.
type ThreadCreation struct {
	Title string
	Body  string
	Owner string
}

// NewThreadCreation validates a raw payload into a ThreadCreation.
// All three fields must be present, non-empty and string-typed.
func NewThreadCreation(payload map[string]interface{}) (ThreadCreation, error) {
	title, err := requireString(payload, "title", ErrThreadMissingProperty, ErrThreadWrongType)
	if err != nil {
		return ThreadCreation{}, err
	}
	body, err := requireString(payload, "body", ErrThreadMissingProperty, ErrThreadWrongType)
	if err != nil {
		return ThreadCreation{}, err
	}
	owner, err := requireString(payload, "owner", ErrThreadMissingProperty, ErrThreadWrongType)
	if err != nil {
		return ThreadCreation{}, err
	}
	return ThreadCreation{Title: title, Body: body, Owner: owner}, nil
}

// AddedThread is the creation result returned to the client.
type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadRow is a thread as read from storage, including the owner's username.
type ThreadRow struct {
	Id       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}
