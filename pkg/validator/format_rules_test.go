package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/charsheet/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()
	rule := validator.Email()
	assert.Equal(t, validator.RuleEmail, rule.Name)

	valid := []string{
		"",
		"user@example.com",
		"Race.Underwood@agvance.net",
		"first.last+tag@sub.domain.org",
	}
	for _, v := range valid {
		assert.True(t, rule.Check(v), v)
	}

	invalid := []string{
		"plain",
		"user@",
		"@example.com",
		"user@localhost",
		"user@example.",
		"user@.example.com",
		"user@example..com",
		"John <john@example.com>",
	}
	for _, v := range invalid {
		assert.False(t, rule.Check(v), v)
	}
}

func TestIsEmail(t *testing.T) {
	t.Parallel()
	assert.False(t, validator.IsEmail(""))
	assert.False(t, validator.IsEmail("   "))
	assert.True(t, validator.IsEmail("a@b.co"))
}

func TestPhoneNumber(t *testing.T) {
	t.Parallel()
	rule := validator.PhoneNumber()
	assert.Equal(t, validator.RulePhoneFormat, rule.Name)

	tests := []struct {
		value string
		want  bool
	}{
		{"(555) 123-4567", true},
		{"555-123-4567", true},
		{"555 123 4567", true},
		{"+1 555 123 4567", true},
		{"+44 (555) 123-4567", true},
		{"555-1234", false},
		{"5551234567", false},
		{"(555)-123-45678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Check(tt.value))
		})
	}
}
