package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node by dot-separated segments: group children by name,
// collection items by index. "emails.0.email" is the email field of the first
// item of the emails collection. The empty path is the root.
type Path []string

// ParsePath splits s into segments.
func ParsePath(s string) Path {
	s = strings.Trim(s, ".")
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// Resolve walks path from root.
func Resolve(root Node, path string) (Node, error) {
	n := root
	for i, seg := range ParsePath(path) {
		switch cur := n.(type) {
		case *Group:
			child, ok := cur.Get(seg)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrPathNotFound, ParsePath(path)[:i+1].String())
			}
			n = child
		case *Collection:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an index", ErrPathNotFound, seg)
			}
			item, err := cur.At(idx)
			if err != nil {
				return nil, err
			}
			n = item
		default:
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, ParsePath(path)[:i+1].String())
		}
	}
	return n, nil
}

// ResolveField resolves path to a field.
func ResolveField(root Node, path string) (FieldNode, error) {
	n, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	f, ok := n.(FieldNode)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s", ErrNotField, path, n.Kind())
	}
	return f, nil
}

// ResolveCollection resolves path to a collection.
func ResolveCollection(root Node, path string) (*Collection, error) {
	n, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	c, ok := n.(*Collection)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s", ErrNotCollection, path, n.Kind())
	}
	return c, nil
}

// Get returns the value of the Field[T] at path.
func Get[T comparable](root Node, path string) (T, error) {
	var zero T
	n, err := Resolve(root, path)
	if err != nil {
		return zero, err
	}
	f, ok := n.(*Field[T])
	if !ok {
		return zero, fmt.Errorf("%w: %q is not a %T field", ErrTypeMismatch, path, zero)
	}
	return f.Get(), nil
}
