// Package filtercache serves "may table T's block at offset O contain
// key K" without re-fetching and re-parsing filter blocks per lookup.
package filtercache

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"

	"github.com/forestrie/go-tablefilter/blockcodec"
	"github.com/forestrie/go-tablefilter/bloom"
	"github.com/forestrie/go-tablefilter/filterblock"
)

// FetchFunc supplies the enveloped filter block for a table. It is
// called on cache misses, may block on I/O, and must honor ctx.
type FetchFunc func(ctx context.Context, table uint64) ([]byte, error)

// Cache memoizes decoded filter block readers by table number.
//
// Failures never propagate to lookups: a table whose filter block
// cannot be fetched, verified, or parsed is answered with a potential
// match, the same conservative bias the codec applies to reserved
// encodings. The caller then reads the data it would otherwise have
// risked skipping. Cache is safe for concurrent use.
type Cache struct {
	policy  bloom.FilterPolicy
	fetch   FetchFunc
	log     *zap.SugaredLogger
	readers *ristretto.Cache[uint64, *filterblock.Reader]
}

func New(policy bloom.FilterPolicy, fetch FetchFunc, opts ...Option) (*Cache, error) {
	options := Options{
		log:      zap.NewNop().Sugar(),
		maxBytes: DefaultMaxBytes,
	}
	for _, o := range opts {
		o(&options)
	}

	readers, err := ristretto.NewCache(&ristretto.Config[uint64, *filterblock.Reader]{
		NumCounters: defaultNumCounters,
		MaxCost:     options.maxBytes,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{
		policy:  policy,
		fetch:   fetch,
		log:     options.log,
		readers: readers,
	}, nil
}

// MayContain reports whether table's data block at blockOffset may
// contain key.
func (c *Cache) MayContain(ctx context.Context, table, blockOffset uint64, key []byte) bool {
	m := GetMetrics()

	r, ok := c.readers.Get(table)
	if ok {
		m.Hits.Inc()
	} else {
		m.Misses.Inc()
		var err error
		if r, err = c.load(ctx, table); err != nil {
			m.Degraded.Inc()
			c.log.Warnf("filtercache: table %d degraded to match: %v", table, err)
			return true
		}
	}

	if r.MayContain(blockOffset, key) {
		m.Queries.WithLabelValues("maybe").Inc()
		return true
	}
	m.Queries.WithLabelValues("absent").Inc()
	return false
}

func (c *Cache) load(ctx context.Context, table uint64) (*filterblock.Reader, error) {
	enveloped, err := c.fetch(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("fetch filter block for table %d: %w", table, err)
	}
	contents, err := blockcodec.DecodeBlock(enveloped)
	if err != nil {
		return nil, fmt.Errorf("decode filter block for table %d: %w", table, err)
	}
	r, err := filterblock.NewReader(c.policy, contents)
	if err != nil {
		return nil, fmt.Errorf("parse filter block for table %d: %w", table, err)
	}
	c.readers.Set(table, r, int64(len(contents)))
	c.log.Debugf("filtercache: cached filter block for table %d (%d bytes)", table, len(contents))
	return r, nil
}

// Drop discards any cached reader for table, for use when the table is
// deleted or replaced by compaction.
func (c *Cache) Drop(table uint64) {
	c.readers.Del(table)
}

// Wait blocks until pending admissions are visible to Get. Lookups are
// correct without it; tests and warmup paths use it to make cache state
// deterministic.
func (c *Cache) Wait() {
	c.readers.Wait()
}

// Close releases the cache. The Cache must not be used after Close.
func (c *Cache) Close() {
	c.readers.Close()
}
