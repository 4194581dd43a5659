package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable is returned by a binder that has nothing to read
	// from the request. Wrap skips such binders.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
