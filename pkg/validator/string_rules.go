package validator

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// RequiredTrimmed validates that a string is non-empty after trimming whitespace.
func RequiredTrimmed(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be empty",
		},
	}
}

// MaxGraphemes validates that a string does not exceed max user-perceived
// characters. Counting grapheme clusters instead of bytes or runes stops
// multi-byte input from slipping past a length limit.
func MaxGraphemes(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return uniseg.GraphemeClusterCount(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		},
	}
}

// NoForbiddenChars validates that a string contains none of the given characters.
func NoForbiddenChars(field, value, forbidden string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, forbidden)
		},
		Error: ValidationError{
			Field:   field,
			Message: "contains forbidden characters",
		},
	}
}
