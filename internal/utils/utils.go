package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

// GenerateID returns a prefixed random identifier, e.g. "comment-4ac90708-…".
// Fits the VARCHAR(50) id columns.
func GenerateID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Decode decodes a JSON body into the raw payload maps consumed by the
// entity constructors. Bodies stay maps end to end so the constructors can
// tell a missing property from a wrong-typed one.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

type failResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError translates the error through the sentinel table and writes the
// JSON failure envelope: {status:"fail"} for client errors, {status:"error"}
// with a generic message for everything else.
func WriteError(w http.ResponseWriter, err error) {
	err = internal_errors.Translate(err)

	statusCode := http.StatusInternalServerError
	resp := failResponse{Status: "error", Message: "terjadi kegagalan pada server kami"}
	if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok && e.StatusCode < http.StatusInternalServerError {
		statusCode = e.StatusCode
		resp = failResponse{Status: "fail", Message: e.Message}
	} else {
		logger.Log.Error("unhandled error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		logger.Log.Error("failed to write error response", "error", encodeErr)
	}
}
