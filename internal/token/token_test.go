package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/letterdrop/internal/token"
)

func TestGenerateLength(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		assert.Len(t, token.Generate(), token.Length)
	}
}

func TestGenerateAlphabet(t *testing.T) {
	t.Parallel()

	isAlnum := func(b byte) bool {
		return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
	}

	for i := 0; i < 100; i++ {
		tok := token.Generate()
		for i := 0; i < len(tok); i++ {
			assert.True(t, isAlnum(tok[i]), "token %q contains non-alphanumeric byte at %d", tok, i)
		}
	}
}

func TestGenerateNoTrivialCollisions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok := token.Generate()
		_, dup := seen[tok]
		assert.False(t, dup, "duplicate token %q in a small sample", tok)
		seen[tok] = struct{}{}
	}
}

func TestGenerateCoversAlphabet(t *testing.T) {
	t.Parallel()

	// With 25k samples every symbol of a 62-character alphabet should appear;
	// a missing symbol points at a sampling bug, not bad luck.
	counts := make(map[byte]int)
	for i := 0; i < 1000; i++ {
		tok := token.Generate()
		for i := 0; i < len(tok); i++ {
			counts[tok[i]]++
		}
	}
	assert.Len(t, counts, 62)
}
