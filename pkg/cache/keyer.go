package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Keyer generates cache keys for checker results.
type Keyer interface {
	// ResultKey generates the key for a memoized answer, from the
	// SHA-256 hash of the canonical problem text.
	ResultKey(problemHash string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResultKey generates a key for a memoized answer.
func (k *DefaultKeyer) ResultKey(problemHash string) string {
	return fmt.Sprintf("result:%s", problemHash)
}

// ScopedKeyer wraps a Keyer with a prefix so that different deployments
// sharing one backend keep separate namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed key for a memoized answer.
func (k *ScopedKeyer) ResultKey(problemHash string) string {
	return k.prefix + k.inner.ResultKey(problemHash)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
