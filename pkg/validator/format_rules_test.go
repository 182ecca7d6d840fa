package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/letterdrop/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.com",
		"user+tag@example.co.uk",
		"ursula_le_guin@domain.com",
	}
	for _, email := range valid {
		t.Run("accepts "+email, func(t *testing.T) {
			rule := validator.ValidEmail("email", email)
			assert.True(t, rule.Check())
		})
	}

	invalid := []string{
		"",
		"   ",
		"ursuladomain.com",
		"@domain.com",
		"user@",
		"user@domain",
		"user@.domain.com",
		"user@domain.com.",
		"user@do..main.com",
		"Display Name <user@example.com>",
	}
	for _, email := range invalid {
		t.Run("rejects "+email, func(t *testing.T) {
			rule := validator.ValidEmail("email", email)
			assert.False(t, rule.Check())
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("collects all failures", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredTrimmed("name", ""),
			validator.ValidEmail("email", "not-an-email"),
		)
		assert.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		verrs, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, verrs, 2)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("email"))
	})

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredTrimmed("name", "Ursula"),
			validator.ValidEmail("email", "ursula@example.com"),
		)
		assert.NoError(t, err)
	})
}
