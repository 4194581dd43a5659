package validator

import (
	"errors"
	"regexp"
)

// NoSpecialCharacters matches single-line strings without any of
// & @ ! # $ % ^ * ( ) _.
const NoSpecialCharacters = `^[^&@!#$%^*()_\n\r]*$`

// Pattern fails when a non-empty value does not match re. The expression must
// match the whole value to pass, so anchor it.
func Pattern(re *regexp.Regexp) Rule[string] {
	return Rule[string]{
		Name: RulePattern,
		Check: func(v string) bool {
			if v == "" {
				return true
			}
			return re.MatchString(v)
		},
		Params: map[string]any{"pattern": re.String()},
	}
}

// CompilePattern compiles expr into a Pattern rule.
func CompilePattern(expr string) (Rule[string], error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule[string]{}, errors.Join(ErrInvalidPattern, err)
	}
	return Pattern(re), nil
}

// MustPattern is like CompilePattern but panics on an invalid expression.
func MustPattern(expr string) Rule[string] {
	return Pattern(regexp.MustCompile(expr))
}
