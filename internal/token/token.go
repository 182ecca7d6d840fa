// Package token generates confirmation tokens for subscriber registration.
package token

import (
	"crypto/rand"
	"fmt"
)

// Length is the fixed length of every confirmation token.
const Length = 25

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a new case-sensitive alphanumeric token drawn uniformly
// from a cryptographically strong source. Calls are independent; uniqueness
// is enforced by the store's unique index, not here.
//
// Rejection sampling keeps the distribution uniform: a plain modulo over 256
// byte values would bias the first few symbols of the alphabet.
func Generate() string {
	// Largest multiple of len(alphabet) that fits in a byte.
	const limit = byte(256 / len(alphabet) * len(alphabet)) // 248

	out := make([]byte, 0, Length)
	buf := make([]byte, Length*2)

	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand failing means the platform's entropy source is
			// broken; no token from a weaker source is acceptable.
			panic(fmt.Errorf("token: reading random source: %w", err))
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}

	return string(out)
}
