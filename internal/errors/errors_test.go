package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("maps sentinel codes to typed errors", func(t *testing.T) {
		tests := []struct {
			code       string
			statusCode int
			message    string
		}{
			{"THREAD.NOT_FOUND", http.StatusNotFound, "thread tidak ditemukan"},
			{"COMMENT_REPOSITORY.COMMENT_NOT_FOUND", http.StatusNotFound, "komentar tidak ditemukan"},
			{"COMMENT_REPOSITORY.NOT_THE_OWNER", http.StatusForbidden, "anda tidak berhak mengakses resource ini"},
			{"REPLY_REPOSITORY.NOT_THE_OWNER", http.StatusForbidden, "anda tidak berhak mengakses resource ini"},
			{"NEW_COMMENT.CONTENT_EMPTY", http.StatusBadRequest, "tidak dapat membuat comment baru karena content kosong"},
			{"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY", http.StatusBadRequest, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"},
			{"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION", http.StatusBadRequest, "username dan password harus string"},
		}

		for _, tt := range tests {
			translated := Translate(errors.New(tt.code))

			typed, ok := translated.(*ErrorWithStatusCode)
			require.True(t, ok, "code %s should translate to a typed error", tt.code)
			assert.Equal(t, tt.statusCode, typed.StatusCode)
			assert.Equal(t, tt.message, typed.Message)
		}
	})

	t.Run("passes unknown errors through unchanged", func(t *testing.T) {
		err := errors.New("db connection lost")
		assert.Equal(t, err, Translate(err))
	})

	t.Run("passes typed errors through unchanged", func(t *testing.T) {
		err := &ErrorWithStatusCode{Message: "username tidak tersedia", StatusCode: http.StatusBadRequest}
		assert.Equal(t, error(err), Translate(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Translate(nil))
	})
}
