package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// phoneRegex accepts an optional "+CC " prefix, an optionally parenthesised
// area code and a 3-4 split separated by spaces or dashes: "(555) 123-4567",
// "555-123-4567", "+1 555 123 4567".
var phoneRegex = regexp.MustCompile(`^(\+\d{1,3}\s)?\(?\d{3}\)?[\s-]\d{3}[\s-]\d{4}$`)

// IsEmail reports whether value is a bare address (no display name) with a
// dotted domain.
func IsEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	domain := parts[1]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// Email fails on a non-empty value that is not a valid address.
func Email() Rule[string] {
	return Rule[string]{
		Name: RuleEmail,
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return true
			}
			return IsEmail(v)
		},
	}
}

// PhoneNumber fails when value is not a 10 digit number in one of the accepted
// layouts. Unlike the other format rules it also fails on the empty string.
func PhoneNumber() Rule[string] {
	return Rule[string]{
		Name: RulePhoneFormat,
		Check: func(v string) bool {
			return phoneRegex.MatchString(v)
		},
		Params: map[string]any{"value": "invalid phone number"},
	}
}
