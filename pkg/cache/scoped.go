package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis instance without seeing each other's entries.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "squarecode:staging:")
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

// CipherKey generates a prefixed key for a cached ciphertext.
func (k *ScopedKeyer) CipherKey(normalized string) string {
	return k.prefix + k.inner.CipherKey(normalized)
}
