package validator

import "errors"

// ErrInvalidPattern is returned when a pattern rule is built from an invalid expression.
var ErrInvalidPattern = errors.New("invalid pattern")
