package form

import (
	"github.com/dmitrymomot/charsheet/pkg/async"
)

// Kind enumerates the node variants of a form tree.
type Kind uint8

const (
	KindField Kind = iota + 1
	KindGroup
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindGroup:
		return "group"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Node is a Field, Group or Collection. The set is closed: only types in this
// package implement it.
type Node interface {
	Kind() Kind
	// Valid reports whether the node and all its descendants have no
	// violations and no async validation in flight.
	Valid() bool
	// Pending reports whether any async validation is in flight.
	Pending() bool
	// Value returns a plain snapshot: the field value, map[string]any for
	// groups, []any for collections.
	Value() any

	trigger(ev event)
	inflight(dst []*async.Future[bool]) []*async.Future[bool]
	dispose()
}

// event is what caused an evaluation pass.
type event uint8

const (
	eventChange event = iota + 1
	eventBlur
	eventSubmit
)
