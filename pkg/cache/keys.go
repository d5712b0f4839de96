package cache

// Keyer generates cache keys.
type Keyer interface {
	// TraceKey returns the key for the trace of a scenario identified by the
	// hash of its source.
	TraceKey(scenarioHash string, opts TraceKeyOpts) string
}

// TraceKeyOpts holds the run options that change a trace.
type TraceKeyOpts struct {
	// Version of the engine that produced the trace; layout changes between
	// releases must not serve stale traces.
	Version string `json:"version"`
}

// DefaultKeyer produces keys of the form "trace:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// TraceKey hashes the scenario hash together with opts.
func (DefaultKeyer) TraceKey(scenarioHash string, opts TraceKeyOpts) string {
	return hashKey("trace", scenarioHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
