package handler

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNilResponse is reported when a HandlerFunc returns nil.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries an HTTP status and a machine readable key.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return e.Key
}

func (e HTTPError) Unwrap() error { return e.Err }

// NewHTTPError wraps err with an HTTP status.
func NewHTTPError(code int, key string, err error) HTTPError {
	return HTTPError{Code: code, Key: key, Err: err}
}

func BadRequest(err error) HTTPError {
	return NewHTTPError(http.StatusBadRequest, "bad_request", err)
}

func NotFound(err error) HTTPError {
	return NewHTTPError(http.StatusNotFound, "not_found", err)
}

func Conflict(err error) HTTPError {
	return NewHTTPError(http.StatusConflict, "conflict", err)
}

func Unprocessable(err error) HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, "unprocessable", err)
}
