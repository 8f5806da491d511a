package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Keyer builds cache keys.
type Keyer interface {
	// CipherKey returns the key for the ciphertext of normalized text.
	CipherKey(normalized string) string
}

// CipherKeyVersion is bumped whenever the ciphertext produced for a given
// normalized text changes, so entries written by older builds are never read.
const CipherKeyVersion = "v1"

// DefaultKeyer builds unprefixed keys of the form "cipher:v1:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CipherKey hashes the normalized text so keys have a fixed size regardless
// of input length.
func (DefaultKeyer) CipherKey(normalized string) string {
	return "cipher:" + CipherKeyVersion + ":" + Hash([]byte(normalized))
}
