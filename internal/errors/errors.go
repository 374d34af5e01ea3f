package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func invariant(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func notFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func forbidden(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

// translations maps internal sentinel error codes to the externally visible
// typed error with a localized message. Codes not present here pass through
// Translate unchanged.
var translations = map[string]*ErrorWithStatusCode{
	// user registration
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":           invariant("tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"),
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":      invariant("tidak dapat membuat user baru karena tipe data tidak sesuai"),
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                   invariant("tidak dapat membuat user baru karena karakter username melebihi batas limit"),
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER": invariant("tidak dapat membuat user baru karena username mengandung karakter terlarang"),

	// login
	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":      invariant("harus mengirimkan username dan password"),
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION": invariant("username dan password harus string"),

	// threads
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      invariant("tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"),
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": invariant("tidak dapat membuat thread baru karena tipe data tidak sesuai"),
	"THREAD.NOT_FOUND":                            notFound("thread tidak ditemukan"),

	// comments
	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      invariant("tidak dapat membuat comment baru karena properti yang dibutuhkan tidak ada"),
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": invariant("tidak dapat membuat comment baru karena tipe data tidak sesuai"),
	"NEW_COMMENT.CONTENT_EMPTY":                    invariant("tidak dapat membuat comment baru karena content kosong"),
	"COMMENT_REPOSITORY.COMMENT_NOT_FOUND":         notFound("komentar tidak ditemukan"),
	"COMMENT_REPOSITORY.NOT_THE_OWNER":             forbidden("anda tidak berhak mengakses resource ini"),

	// replies
	"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":      invariant("tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada"),
	"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION": invariant("tidak dapat membuat balasan baru karena tipe data tidak sesuai"),
	"REPLY_REPOSITORY.REPLY_NOT_FOUND":           notFound("balasan tidak ditemukan"),
	"REPLY_REPOSITORY.NOT_THE_OWNER":             forbidden("anda tidak berhak mengakses resource ini"),

	// likes
	"COMMENT_LIKE.NOT_CONTAIN_NEEDED_PROPERTY":      invariant("tidak dapat menyukai comment karena properti yang dibutuhkan tidak ada"),
	"COMMENT_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION": invariant("tidak dapat menyukai comment karena tipe data tidak sesuai"),
	"COMMENT_LIKE_REPOSITORY.LIKE_NOT_FOUND":        notFound("like tidak ditemukan"),

	// replies built from repository output
	"ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":      invariant("tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada"),
	"ADDED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION": invariant("tidak dapat membuat balasan baru karena tipe data tidak sesuai"),
}

// Translate resolves a sentinel error code to its typed counterpart.
// Errors that are not sentinel codes are returned as-is.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if translated, ok := translations[err.Error()]; ok {
		return translated
	}
	return err
}
