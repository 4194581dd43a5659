package validator

import (
	"strings"
	"unicode/utf8"
)

// blank reports whether v is the zero value of T. Strings consisting only of
// whitespace count as blank.
func blank[T comparable](v T) bool {
	if s, ok := any(v).(string); ok {
		return strings.TrimSpace(s) == ""
	}
	var zero T
	return v == zero
}

// Required fails on the zero value. Strings are trimmed before the check.
func Required[T comparable]() Rule[T] {
	return Rule[T]{
		Name: RuleRequired,
		Check: func(v T) bool {
			return !blank(v)
		},
	}
}

// MinLength fails when a non-empty string has fewer than min runes.
func MinLength[S ~string](min int) Rule[S] {
	return Rule[S]{
		Name: RuleMinLength,
		Check: func(v S) bool {
			if v == "" {
				return true
			}
			return utf8.RuneCountInString(string(v)) >= min
		},
		Params: map[string]any{"min": min},
	}
}

// MaxLength fails when a string has more than max runes.
func MaxLength[S ~string](max int) Rule[S] {
	return Rule[S]{
		Name: RuleMaxLength,
		Check: func(v S) bool {
			return utf8.RuneCountInString(string(v)) <= max
		},
		Params: map[string]any{"max": max},
	}
}
