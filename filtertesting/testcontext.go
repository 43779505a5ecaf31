package filtertesting

import (
	"encoding/binary"
	"math/rand"
	"testing"
)

// TestConfig seeds deterministic test data generation. It is normal to
// force Seed to some fixed value so that the generated data is the same
// from run to run; statistical assertions stay stable that way.
type TestConfig struct {
	Seed int64

	// KeyBytes is the width of generated keys. Defaults to 16.
	KeyBytes int
}

type TestContext struct {
	T   *testing.T
	Cfg TestConfig

	rng *rand.Rand
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.KeyBytes == 0 {
		cfg.KeyBytes = 16
	}
	return &TestContext{
		T:   t,
		Cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Keys returns n pseudo-random keys drawn from the seeded stream. The
// top bit of the first byte is always clear; DisjointKeys owns the
// other half of the keyspace, so the two can never collide.
func (c *TestContext) Keys(n int) [][]byte {
	return c.generate(n, false)
}

// DisjointKeys returns n pseudo-random keys guaranteed never to equal
// any key returned by Keys, on this or any other context.
func (c *TestContext) DisjointKeys(n int) [][]byte {
	return c.generate(n, true)
}

func (c *TestContext) generate(n int, foreign bool) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		key := make([]byte, c.Cfg.KeyBytes)
		_, _ = c.rng.Read(key)
		if foreign {
			key[0] |= 0x80
		} else {
			key[0] &^= 0x80
		}
		keys[i] = key
	}
	return keys
}

// SequentialKeys returns fixed-width little-endian encodings of
// start..start+n-1. Distinct ranges give disjoint key sets without any
// randomness at all.
func SequentialKeys(start, n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		key := make([]byte, 4)
		binary.LittleEndian.PutUint32(key, uint32(start+i))
		keys[i] = key
	}
	return keys
}
