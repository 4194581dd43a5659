package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the error part of the envelope. Code is the HTTPError key.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// JSONOption configures a JSON response.
type JSONOption func(status *int)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(s *int) { *s = status }
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// JSON wraps v in the data field and answers 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	status := http.StatusOK
	for _, opt := range opts {
		opt(&status)
	}
	return ResponseFunc(func(w http.ResponseWriter, _ *http.Request) error {
		return writeJSON(w, status, JSONResponse{Data: v})
	})
}

// JSONError renders err in the error field. An HTTPError sets the status and
// code; anything else is a 500 with a generic message.
func JSONError(err error, opts ...JSONOption) Response {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail = &ErrorDetail{Code: httpErr.Key, Message: httpErr.Error()}
	}
	for _, opt := range opts {
		opt(&status)
	}
	return ResponseFunc(func(w http.ResponseWriter, _ *http.Request) error {
		return writeJSON(w, status, JSONResponse{Error: detail})
	})
}
