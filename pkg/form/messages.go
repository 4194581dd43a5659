package form

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessages []byte

// Messages maps rule names to message templates.
type Messages map[string]string

// DefaultMessages returns the built-in table.
func DefaultMessages() Messages {
	m, err := ParseMessages(defaultMessages)
	if err != nil {
		panic(fmt.Sprintf("form: embedded message table: %v", err))
	}
	return m
}

// ParseMessages parses a flat YAML mapping of rule name to template.
func ParseMessages(data []byte) (Messages, error) {
	var m Messages
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	if len(m) == 0 {
		return nil, ErrEmptyMessages
	}
	for rule, tmpl := range m {
		if rule == "" || tmpl == "" {
			return nil, fmt.Errorf("%w: empty entry for rule %q", ErrInvalidMessages, rule)
		}
	}
	return m, nil
}

// LoadMessages reads a YAML table from path and merges it over the defaults.
func LoadMessages(path string) (Messages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidMessages, err)
	}
	m, err := ParseMessages(data)
	if err != nil {
		return nil, err
	}
	return DefaultMessages().Merge(m), nil
}

// Merge returns a copy of m with entries from other taking precedence.
func (m Messages) Merge(other Messages) Messages {
	out := make(Messages, len(m)+len(other))
	maps.Copy(out, m)
	maps.Copy(out, other)
	return out
}

// Render formats the message for rule on the field labelled label.
func (m Messages) Render(label, rule string) (string, error) {
	tmpl, ok := m[rule]
	if !ok {
		return "", &UnknownRuleError{Field: label, Rule: rule}
	}
	return label + " " + tmpl, nil
}
