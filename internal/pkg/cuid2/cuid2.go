// Package cuid2 generates short base62 identifiers: a time-sortable prefix
// plus CUID-like random characters from crypto/rand.
package cuid2

import (
	cryptorand "crypto/rand"
	"strings"
	"time"
)

// Base62 alphabet: 0-9, A-Z, a-z (62 characters)
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EncodeTimestamp encodes a Unix timestamp (seconds) as a 6-character
// base62 string. Lexicographically sortable for any realistic timestamp.
func EncodeTimestamp(timestampSeconds int64) string {
	n := timestampSeconds
	result := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		result[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(result)
}

// Random returns a random base62 string of the given length.
//
// Uses 6-bit extraction with rejection sampling for uniform distribution:
// values 62-63 are discarded, giving ~5.95 bits of entropy per character.
func Random(length int) string {
	var result strings.Builder
	result.Grow(length)

	buf := make([]byte, length+8)
	for result.Len() < length {
		if _, err := cryptorand.Read(buf); err != nil {
			panic("failed to read random bytes: " + err.Error())
		}
		for _, b := range buf {
			v := b & 0x3f
			if v < 62 {
				result.WriteByte(base62Alphabet[v])
				if result.Len() == length {
					break
				}
			}
		}
	}

	return result.String()
}

// NewKey generates a prefixed, time-sortable identifier such as
// "quote_0CL2Kwab3Cd5Ef7Gh9Ij1K".
func NewKey(prefix string) string {
	return prefix + "_" + EncodeTimestamp(time.Now().Unix()) + Random(18)
}
