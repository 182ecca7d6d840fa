package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/letterdrop/pkg/validator"
)

func TestRequiredTrimmed(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredTrimmed("name", "Ursula")
		assert.True(t, rule.Check())
		assert.Equal(t, "name", rule.Error.Field)
		assert.Equal(t, "must not be empty", rule.Error.Message)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.RequiredTrimmed("name", "")
		assert.False(t, rule.Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		rule := validator.RequiredTrimmed("name", "   \t\n")
		assert.False(t, rule.Check())
	})
}

func TestMaxGraphemes(t *testing.T) {
	t.Run("passes at exact limit", func(t *testing.T) {
		rule := validator.MaxGraphemes("name", strings.Repeat("a", 256), 256)
		assert.True(t, rule.Check())
	})

	t.Run("fails one past the limit", func(t *testing.T) {
		rule := validator.MaxGraphemes("name", strings.Repeat("a", 257), 256)
		assert.False(t, rule.Check())
	})

	t.Run("counts grapheme clusters not bytes", func(t *testing.T) {
		// Each emoji with modifier is one user-perceived character but many bytes.
		value := strings.Repeat("\U0001F469‍\U0001F4BB", 10)
		rule := validator.MaxGraphemes("name", value, 10)
		assert.True(t, rule.Check())
		assert.Greater(t, len(value), 10)
	})

	t.Run("counts combining sequences as one", func(t *testing.T) {
		value := strings.Repeat("é", 256) // e + combining acute
		rule := validator.MaxGraphemes("name", value, 256)
		assert.True(t, rule.Check())
	})
}

func TestNoForbiddenChars(t *testing.T) {
	const forbidden = `/()"<>\{}`

	t.Run("passes for clean string", func(t *testing.T) {
		rule := validator.NoForbiddenChars("name", "Ursula K. Le Guin", forbidden)
		assert.True(t, rule.Check())
	})

	t.Run("fails per forbidden character", func(t *testing.T) {
		for _, ch := range forbidden {
			rule := validator.NoForbiddenChars("name", "a"+string(ch)+"b", forbidden)
			assert.False(t, rule.Check(), "character %q should be rejected", ch)
		}
	})
}
