package fairness

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Algorithm names the MAC published alongside every digest.
const Algorithm = "HMAC-SHA256"

// Digest is the lowercase hex HMAC published before the player moves.
type Digest string

// String returns the digest as displayed.
func (d Digest) String() string { return string(d) }

// Commitment binds a round's key to the committed message.
//
// Key stays private until Reveal; Digest is public from the start.
type Commitment struct {
	Key     Key
	Message string
	Digest  Digest
}

// GenerateCommitment computes HMAC-SHA256 of message keyed by the key text.
//
// The key's hex text, not its decoded bytes, is the HMAC key, so a player can
// paste the revealed key into any HMAC tool unchanged.
//
// Precondition: key must be non-empty.
// Postcondition: Returns a 64-character lowercase hex Digest or ErrInvalidKeyLength.
func GenerateCommitment(key Key, message string) (Digest, error) {
	if key == "" {
		return "", ErrInvalidKeyLength
	}
	return Digest(hex.EncodeToString(mac(key, message))), nil
}

// Commit draws a key from g and commits to message.
//
// Postcondition: c.Digest == GenerateCommitment(c.Key, message).
func Commit(g *KeyGenerator, message string) (Commitment, error) {
	key, err := g.GenerateKey()
	if err != nil {
		return Commitment{}, err
	}
	digest, err := GenerateCommitment(key, message)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{Key: key, Message: message, Digest: digest}, nil
}

// Verify reports whether digest is the commitment of message under key.
// The digest comparison is case-insensitive and constant-time.
//
// Precondition: key must be non-empty.
func Verify(key Key, message string, digest Digest) (bool, error) {
	if key == "" {
		return false, ErrInvalidKeyLength
	}
	claimed, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(string(digest))))
	if err != nil {
		return false, nil
	}
	return hmac.Equal(mac(key, message), claimed), nil
}

func mac(key Key, message string) []byte {
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(message))
	return h.Sum(nil)
}
