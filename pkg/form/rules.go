package form

import (
	"fmt"

	"github.com/dmitrymomot/charsheet/pkg/validator"
)

// RuleOp is an explicit mutation of a field's rule set, applied with
// FieldNode.MutateRules or Form.MutateRules.
type RuleOp func(FieldNode) error

// AddRule adds r to a Field[T], replacing a rule with the same name.
func AddRule[T comparable](r validator.Rule[T]) RuleOp {
	return func(n FieldNode) error {
		f, ok := n.(*Field[T])
		if !ok {
			var zero T
			return fmt.Errorf("%w: rule %q expects a %T field", ErrTypeMismatch, r.Name, zero)
		}
		f.addRule(r)
		return nil
	}
}

// PrependRule adds r ahead of the field's other rules, so its violation is
// reported first. A rule with the same name is removed.
func PrependRule[T comparable](r validator.Rule[T]) RuleOp {
	return func(n FieldNode) error {
		f, ok := n.(*Field[T])
		if !ok {
			var zero T
			return fmt.Errorf("%w: rule %q expects a %T field", ErrTypeMismatch, r.Name, zero)
		}
		f.removeRule(r.Name)
		f.rules = append([]validator.Rule[T]{r}, f.rules...)
		return nil
	}
}

// RemoveRule drops the sync or async rule called name. Removing a rule the
// field does not carry is a no-op.
func RemoveRule(name string) RuleOp {
	return func(n FieldNode) error {
		n.removeRule(name)
		return nil
	}
}
