package form

import (
	"fmt"

	"github.com/dmitrymomot/charsheet/pkg/async"
)

// Entry is a named child of a Group.
type Entry struct {
	Name string
	Node Node
}

// Child pairs a name with a node for NewGroup.
func Child(name string, n Node) Entry {
	return Entry{Name: name, Node: n}
}

// Group is an ordered mapping of named children.
type Group struct {
	names    []string
	children map[string]Node
}

// NewGroup creates a group with children in the given order.
// Panics on an empty or duplicate name or a nil node: group shapes are fixed
// at construction and a bad shape is a programming error.
func NewGroup(entries ...Entry) *Group {
	g := &Group{
		names:    make([]string, 0, len(entries)),
		children: make(map[string]Node, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" || e.Node == nil {
			panic(fmt.Sprintf("form: invalid group entry %q", e.Name))
		}
		if _, dup := g.children[e.Name]; dup {
			panic(fmt.Sprintf("form: duplicate group entry %q", e.Name))
		}
		g.names = append(g.names, e.Name)
		g.children[e.Name] = e.Node
	}
	return g
}

func (g *Group) Kind() Kind { return KindGroup }

// Names returns child names in insertion order.
func (g *Group) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Get returns the child called name.
func (g *Group) Get(name string) (Node, bool) {
	n, ok := g.children[name]
	return n, ok
}

// Valid evaluates every child; it does not stop at the first invalid one so
// that pending async results are reconciled across the whole group.
func (g *Group) Valid() bool {
	valid := true
	for _, name := range g.names {
		if !g.children[name].Valid() {
			valid = false
		}
	}
	return valid
}

func (g *Group) Pending() bool {
	pending := false
	for _, name := range g.names {
		if g.children[name].Pending() {
			pending = true
		}
	}
	return pending
}

func (g *Group) Value() any {
	out := make(map[string]any, len(g.names))
	for _, name := range g.names {
		out[name] = g.children[name].Value()
	}
	return out
}

func (g *Group) trigger(ev event) {
	for _, name := range g.names {
		g.children[name].trigger(ev)
	}
}

func (g *Group) inflight(dst []*async.Future[bool]) []*async.Future[bool] {
	for _, name := range g.names {
		dst = g.children[name].inflight(dst)
	}
	return dst
}

func (g *Group) dispose() {
	for _, name := range g.names {
		g.children[name].dispose()
	}
}
