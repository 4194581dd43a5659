package form

import (
	"slices"

	"github.com/dmitrymomot/charsheet/pkg/async"
)

// Collection is an ordered, resizable sequence of items that share the shape
// produced by its template.
type Collection struct {
	template func() Node
	items    []Node
	guard    Guard
}

// CollectionOption configures a Collection.
type CollectionOption func(*Collection)

// WithItems creates n items from the template up front.
func WithItems(n int) CollectionOption {
	return func(c *Collection) {
		for range n {
			c.items = append(c.items, c.template())
		}
	}
}

// WithGuard sets the predicate consulted before RemoveAt.
func WithGuard(g Guard) CollectionOption {
	return func(c *Collection) {
		c.guard = g
	}
}

// NewCollection creates a collection whose items are built by template.
// Panics if template is nil.
func NewCollection(template func() Node, opts ...CollectionOption) *Collection {
	if template == nil {
		panic("form: nil collection template")
	}
	c := &Collection{template: template}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection) Kind() Kind { return KindCollection }

func (c *Collection) Len() int { return len(c.items) }

// At returns the item at index i.
func (c *Collection) At(i int) (Node, error) {
	if i < 0 || i >= len(c.items) {
		return nil, &IndexError{Index: i, Len: len(c.items)}
	}
	return c.items[i], nil
}

// Items returns the items in order. The slice is a copy; the nodes are not.
func (c *Collection) Items() []Node {
	return slices.Clone(c.items)
}

// Template builds a fresh, detached item with the collection's shape.
func (c *Collection) Template() Node {
	return c.template()
}

// Append adds a new item built from the template and returns its index.
func (c *Collection) Append() int {
	c.items = append(c.items, c.template())
	return len(c.items) - 1
}

// RemoveAt removes the item at index i and cancels its async evaluations.
// It returns *IndexError when i is out of range and ErrRemovalRejected when
// the guard refuses; in both cases the collection is unchanged.
func (c *Collection) RemoveAt(i int) error {
	if i < 0 || i >= len(c.items) {
		return &IndexError{Index: i, Len: len(c.items)}
	}
	if c.guard != nil && !c.guard(c, i) {
		return ErrRemovalRejected
	}

	c.items[i].dispose()
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

func (c *Collection) Valid() bool {
	valid := true
	for _, item := range c.items {
		if !item.Valid() {
			valid = false
		}
	}
	return valid
}

func (c *Collection) Pending() bool {
	pending := false
	for _, item := range c.items {
		if item.Pending() {
			pending = true
		}
	}
	return pending
}

func (c *Collection) Value() any {
	out := make([]any, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Value())
	}
	return out
}

func (c *Collection) trigger(ev event) {
	for _, item := range c.items {
		item.trigger(ev)
	}
}

func (c *Collection) inflight(dst []*async.Future[bool]) []*async.Future[bool] {
	for _, item := range c.items {
		dst = item.inflight(dst)
	}
	return dst
}

func (c *Collection) dispose() {
	for _, item := range c.items {
		item.dispose()
	}
}
