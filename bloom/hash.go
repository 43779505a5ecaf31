package bloom

import "github.com/spaolacci/murmur3"

// hashSeed is fixed for the life of the encoded format. Changing it
// invalidates every persisted filter.
const hashSeed uint32 = 0xbc9f1d34

// hashKey maps a key to the 32-bit value the probe sequence is derived
// from. The hash must be deterministic and stable across platforms for
// identical input bytes and seed; murmur3 provides that along with
// avalanche-quality mixing. Per-process seeded hashes (hash/maphash and
// friends) are not substitutable here.
func hashKey(key []byte) uint32 {
	return murmur3.Sum32WithSeed(key, hashSeed)
}
