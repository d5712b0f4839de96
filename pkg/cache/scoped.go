package cache

// ScopedKeyer wraps a Keyer with a prefix so several projects can share one
// backend without their entries colliding.
//
// Example usage:
//
//	// Per-project keys on a shared Redis instance
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "carousel:")
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

// TraceKey generates a prefixed trace key.
func (k *ScopedKeyer) TraceKey(scenarioHash string, opts TraceKeyOpts) string {
	return k.prefix + k.inner.TraceKey(scenarioHash, opts)
}
