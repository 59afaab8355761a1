// Package fairness implements the commit/reveal protocol that proves the
// computer's move was fixed before the player chose.
//
// A round draws a fresh Key, publishes HMAC-SHA256(key, moveName) as the
// Digest, and discloses the key only after the player's move is known.
package fairness

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// KeySize is the number of random bytes in a Key.
const KeySize = 32

// Key is a hex-encoded secret drawn fresh for every round.
//
// Invariant: a generated Key is exactly 2*KeySize lowercase hex characters.
type Key string

// String returns the key as displayed at reveal time.
func (k Key) String() string { return string(k) }

// KeyGenerator produces round keys from a secure entropy source.
type KeyGenerator struct {
	entropy io.Reader
}

// NewKeyGenerator returns a KeyGenerator reading from r.
// A nil r selects crypto/rand.Reader.
func NewKeyGenerator(r io.Reader) *KeyGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &KeyGenerator{entropy: r}
}

// GenerateKey reads KeySize bytes of entropy and hex-encodes them.
//
// Postcondition: Returns a Key of length 2*KeySize, or an error wrapping
// ErrEntropyUnavailable. There is no fallback source.
func (g *KeyGenerator) GenerateKey() (Key, error) {
	buf := make([]byte, KeySize)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return Key(hex.EncodeToString(buf)), nil
}
