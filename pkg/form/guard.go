package form

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Guard decides whether the item at index may be removed from c.
type Guard func(c *Collection, index int) bool

// MinItems keeps at least n items in the collection.
func MinItems(n int) Guard {
	return func(c *Collection, _ int) bool {
		return c.Len()-1 >= n
	}
}

// UnlessRule rejects removal while the item's child field still carries rule.
// The rule has to be dropped with RemoveRule first. An empty child refers to
// the item itself when the collection holds plain fields.
func UnlessRule(child, rule string) Guard {
	return func(c *Collection, index int) bool {
		item, err := c.At(index)
		if err != nil {
			return false
		}
		f, err := ResolveField(item, child)
		if err != nil {
			return true
		}
		return !f.HasRule(rule)
	}
}

// AllOf allows removal only when every guard allows it.
func AllOf(guards ...Guard) Guard {
	return func(c *Collection, index int) bool {
		for _, g := range guards {
			if g != nil && !g(c, index) {
				return false
			}
		}
		return true
	}
}

// ExprGuard compiles a boolean expression evaluated before each removal with:
//
//	size   int                  current number of items
//	index  int                  index being removed
//	rules  map[string][]string  rule names per field path inside the item
//	value  any                  snapshot of the item
//
// Example: `size > 1 && !("required" in rules["phoneNumber"])`.
// Evaluation errors reject the removal.
func ExprGuard(expression string) (Guard, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, errors.Join(ErrInvalidGuard, err)
	}
	return func(c *Collection, index int) bool {
		allowed, err := runGuard(program, c, index)
		return err == nil && allowed
	}, nil
}

// MustExprGuard is like ExprGuard but panics on a compile error.
func MustExprGuard(expression string) Guard {
	g, err := ExprGuard(expression)
	if err != nil {
		panic(err)
	}
	return g
}

func runGuard(program *vm.Program, c *Collection, index int) (bool, error) {
	item, err := c.At(index)
	if err != nil {
		return false, err
	}

	env := map[string]any{
		"size":  c.Len(),
		"index": index,
		"rules": ruleIndex(item, "", map[string][]string{}),
		"value": item.Value(),
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	allowed, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: result is %T, not bool", ErrInvalidGuard, out)
	}
	return allowed, nil
}

// ruleIndex maps every field path below n to its rule names.
func ruleIndex(n Node, prefix string, dst map[string][]string) map[string][]string {
	switch n := n.(type) {
	case FieldNode:
		dst[prefix] = n.RuleNames()
	case *Group:
		for _, name := range n.names {
			ruleIndex(n.children[name], joinPath(prefix, name), dst)
		}
	case *Collection:
		for i, item := range n.items {
			ruleIndex(item, joinPath(prefix, fmt.Sprint(i)), dst)
		}
	}
	return dst
}
