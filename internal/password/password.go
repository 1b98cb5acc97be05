// Package password generates random passwords from a fixed character pool.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Pool holds every character a password may contain: 52 ASCII letters,
	// 10 digits and 32 ASCII punctuation symbols.
	Pool = letters + digits + punctuation
)

// ErrInvalidLength is returned for lengths below one.
var ErrInvalidLength = errors.New("password length must be greater than 0")

// Generator draws password characters from a random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading randomness from r.
// A nil reader selects crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate returns length characters drawn independently and uniformly,
// with replacement, from Pool.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	var b strings.Builder
	b.Grow(length)
	buf := make([]byte, 64)
	for b.Len() < length {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, v := range buf {
			// Reject the tail of the byte range so every pool index is
			// equally likely.
			if int(v) >= limit {
				continue
			}
			b.WriteByte(Pool[int(v)%len(Pool)])
			if b.Len() == length {
				break
			}
		}
	}
	return b.String(), nil
}

// limit is the largest multiple of len(Pool) that fits in a byte.
const limit = 256 - 256%len(Pool)

// Generate returns a password of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return NewGenerator(nil).Generate(length)
}

// InPool reports whether every character of s belongs to Pool.
func InPool(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(Pool, r) {
			return false
		}
	}
	return true
}
