package bloom

// FilterPolicy is the capability contract a table writer and reader
// consume. Exactly one implementation exists today (Policy); the
// interface stays open so a future encoding can ship side-by-side, as
// the reserved trailer range above MaxProbes anticipates.
type FilterPolicy interface {
	// Name returns the stable literal persisted alongside encodings.
	Name() string

	// AppendFilter appends one encoded filter over keys to dst and
	// returns the extended slice. Prior contents of dst are never
	// disturbed, so repeated calls pack multiple filters into one
	// buffer.
	AppendFilter(dst []byte, keys [][]byte) []byte

	// MayContain reports whether filter may contain key. filter is a
	// single encoding as produced by AppendFilter; arbitrary bytes are
	// tolerated and answered conservatively.
	MayContain(filter, key []byte) bool
}

// Policy encodes and queries filters under a fixed bits-per-key budget.
// It is immutable after construction and safe for unrestricted
// concurrent use.
type Policy struct {
	bitsPerKey int
	probes     int
}

// NewPolicy derives the probe count from bitsPerKey and returns the
// policy. It always succeeds; zero or negative budgets clamp to the
// smallest functional configuration.
func NewPolicy(bitsPerKey int) *Policy {
	return &Policy{
		bitsPerKey: bitsPerKey,
		probes:     ProbesPerKey(bitsPerKey),
	}
}

func (p *Policy) Name() string { return FilterName }

func (p *Policy) AppendFilter(dst []byte, keys [][]byte) []byte {
	return appendFilter(dst, keys, p.bitsPerKey, p.probes)
}

// MayContain honors the probe count embedded in filter, not p's own
// configuration, so filters built under a different budget are queried
// correctly.
func (p *Policy) MayContain(filter, key []byte) bool {
	return mayContain(filter, key)
}
