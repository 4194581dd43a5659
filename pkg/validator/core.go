package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule names shared with message tables.
const (
	RuleRequired    = "required"
	RuleMin         = "min"
	RuleMax         = "max"
	RuleMinLength   = "minLength"
	RuleMaxLength   = "maxLength"
	RuleEmail       = "email"
	RulePattern     = "pattern"
	RulePhoneFormat = "phoneFormat"
)

// Violation is a single failed rule. Params carry rule arguments (limits,
// patterns) for message rendering.
type Violation struct {
	Rule   string
	Params map[string]any
}

func (v Violation) Error() string {
	if len(v.Params) == 0 {
		return v.Rule
	}
	return fmt.Sprintf("%s %v", v.Rule, v.Params)
}

// Violations is an ordered set of violations, at most one per rule name.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add appends v unless a violation for the same rule is already present.
func (vs *Violations) Add(v Violation) {
	if vs.Has(v.Rule) {
		return
	}
	*vs = append(*vs, v)
}

func (vs Violations) Has(rule string) bool {
	for _, v := range vs {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

func (vs Violations) Get(rule string) (Violation, bool) {
	for _, v := range vs {
		if v.Rule == rule {
			return v, true
		}
	}
	return Violation{}, false
}

// Rules returns the rule names in order.
func (vs Violations) Rules() []string {
	names := make([]string, 0, len(vs))
	for _, v := range vs {
		names = append(names, v.Rule)
	}
	return names
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Rule is a named, stateless predicate over a value of type T.
type Rule[T any] struct {
	Name   string
	Check  func(value T) bool
	Params map[string]any
}

// Violation builds the violation reported when the rule fails.
func (r Rule[T]) Violation() Violation {
	return Violation{Rule: r.Name, Params: r.Params}
}

// Apply evaluates every rule against value and returns the failures in rule
// order. A nil result means the value is valid.
func Apply[T any](value T, rules ...Rule[T]) Violations {
	var out Violations

	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check(value) {
			out.Add(rule.Violation())
		}
	}

	return out
}

// ExtractViolations extracts Violations from an error.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
