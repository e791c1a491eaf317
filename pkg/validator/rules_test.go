package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required passes", validator.Required("f", "x"), true},
		{"required fails on blanks", validator.Required("f", "   "), false},
		{"min length counts characters", validator.MinLen("f", "Íñ", 2), true},
		{"min length fails", validator.MinLen("f", "a", 2), false},
		{"max length passes", validator.MaxLen("f", "abc", 3), true},
		{"max length fails", validator.MaxLen("f", "abcd", 3), false},
		{"one of passes", validator.OneOfString("f", "USD", "USD"), true},
		{"one of fails", validator.OneOfString("f", "EUR", "USD"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"ana@example.com", "first.last+tag@sub.example.cl"}
	invalid := []string{"", "ana", "ana@", "@example.com", "ana@example", "ana@.com", "ana@example.", "Ana <ana@example.com>", "ana@exa..mple.com"}

	for _, v := range valid {
		assert.True(t, validator.ValidEmail("email", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidEmail("email", v).Check(), v)
	}
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("parse number", func(t *testing.T) {
		n, err := validator.ParseNumber(" 30 ")
		require.NoError(t, err)
		assert.Equal(t, 30.0, n)

		n, err = validator.ParseNumber("12,5")
		require.NoError(t, err)
		assert.Equal(t, 12.5, n)

		_, err = validator.ParseNumber("abc")
		assert.ErrorIs(t, err, validator.ErrInvalidFormat)

		_, err = validator.ParseNumber("")
		assert.ErrorIs(t, err, validator.ErrInvalidFormat)

		_, err = validator.ParseNumber("NaN")
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("numeric string", func(t *testing.T) {
		assert.True(t, validator.NumericString("amount", "10").Check())
		assert.False(t, validator.NumericString("amount", "ten").Check())
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validator.Min("amount", 5.0, 5.0).Check())
		assert.False(t, validator.Min("amount", 4.99, 5.0).Check())
		assert.True(t, validator.Max("amount", 12000.0, 12000.0).Check())
		assert.False(t, validator.Max("amount", 12000.01, 12000.0).Check())
	})
}
