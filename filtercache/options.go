package filtercache

import "go.uber.org/zap"

const (
	// DefaultMaxBytes bounds the decoded filter block bytes held
	// resident before the least valuable readers are evicted.
	DefaultMaxBytes = 256 << 20

	// Admission tracking and write buffering for the reader cache.
	defaultNumCounters = 1 << 20
	defaultBufferItems = 64
)

type Options struct {
	log      *zap.SugaredLogger
	maxBytes int64
}

type Option func(*Options)

// WithLogger replaces the default no-op logger. Degraded lookups are
// reported at Warn, cache fills at Debug.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *Options) { o.log = log }
}

// WithMaxBytes overrides DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(o *Options) { o.maxBytes = n }
}
