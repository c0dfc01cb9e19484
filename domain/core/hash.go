package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Short returns the first 16 hex digits, enough to tag a rendered image
func (h Hash) Short() string {
	if len(h) <= 16 {
		return string(h)
	}
	return string(h[:16])
}

// ETag formats the hash as a strong HTTP entity tag
func (h Hash) ETag() string {
	return `"` + h.Short() + `"`
}
