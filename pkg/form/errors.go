package form

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by *IndexError.
	ErrIndexOutOfRange = errors.New("form: collection index out of range")

	// ErrUnknownRule is matched by *UnknownRuleError.
	ErrUnknownRule = errors.New("form: no message for rule")

	// ErrBuildInvalid is matched by *BuildError.
	ErrBuildInvalid = errors.New("form: cannot build record from invalid tree")

	ErrRemovalRejected = errors.New("form: collection guard rejected removal")
	ErrPathNotFound    = errors.New("form: path not found")
	ErrNotField        = errors.New("form: node is not a field")
	ErrNotCollection   = errors.New("form: node is not a collection")
	ErrTypeMismatch    = errors.New("form: value type mismatch")
	ErrDisposed        = errors.New("form: form has been disposed")
	ErrSubmitPending   = errors.New("form: async validation still pending")
	ErrEmptyMessages   = errors.New("form: message table is empty")
	ErrInvalidMessages = errors.New("form: failed to parse message table")
	ErrInvalidGuard    = errors.New("form: invalid guard expression")
)

// IndexError reports an out of range collection index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("form: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// UnknownRuleError reports a violation whose rule has no entry in the message
// table. It signals a misconfigured table, not bad input.
type UnknownRuleError struct {
	Field string
	Rule  string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("form: no message for rule %q on field %q", e.Rule, e.Field)
}

func (e *UnknownRuleError) Is(target error) bool {
	return target == ErrUnknownRule
}

// BuildError is returned by Build when the tree is not valid.
type BuildError struct {
	Pending bool
}

func (e *BuildError) Error() string {
	if e.Pending {
		return "form: cannot build record while async validation is pending"
	}
	return "form: cannot build record from invalid tree"
}

func (e *BuildError) Is(target error) bool {
	return target == ErrBuildInvalid
}
