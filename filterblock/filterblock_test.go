package filterblock

import (
	"encoding/binary"
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-tablefilter/bloom"
	"github.com/forestrie/go-tablefilter/filtertesting"
)

// exactHashPolicy records full 32-bit key hashes so framing tests can
// assert non-membership without Bloom false positives.
type exactHashPolicy struct{}

func (exactHashPolicy) Name() string { return "test.ExactHashFilter" }

func (exactHashPolicy) AppendFilter(dst []byte, keys [][]byte) []byte {
	for _, key := range keys {
		dst = binary.LittleEndian.AppendUint32(dst, murmur3.Sum32(key))
	}
	return dst
}

func (exactHashPolicy) MayContain(filter, key []byte) bool {
	h := murmur3.Sum32(key)
	for i := 0; i+4 <= len(filter); i += 4 {
		if binary.LittleEndian.Uint32(filter[i:]) == h {
			return true
		}
	}
	return false
}

func TestBuilderEmpty(t *testing.T) {
	b := NewBuilder(bloom.NewPolicy(10))
	block := b.Finish()
	require.Equal(t, []byte{0, 0, 0, 0, DefaultBaseLog2}, block)

	r, err := NewReader(bloom.NewPolicy(10), block)
	require.NoError(t, err)

	// No slots at all, so everything is a potential match.
	require.True(t, r.MayContain(0, []byte("foo")))
	require.True(t, r.MayContain(100000, []byte("foo")))
}

func TestBuilderSingleSlot(t *testing.T) {
	b := NewBuilder(exactHashPolicy{})

	b.StartBlock(100)
	b.AddKey([]byte("foo"))
	b.AddKey([]byte("bar"))
	b.AddKey([]byte("box"))
	b.StartBlock(200)
	b.AddKey([]byte("box"))
	b.StartBlock(300)
	b.AddKey([]byte("hello"))

	block := b.Finish()

	// Five 4-byte hash entries, one offset entry, the tail.
	require.Len(t, block, 20+4+4+1)
	require.Equal(t, []byte{0, 0, 0, 0}, block[20:24])
	require.Equal(t, []byte{20, 0, 0, 0}, block[24:28])
	require.Equal(t, byte(DefaultBaseLog2), block[28])

	r, err := NewReader(exactHashPolicy{}, block)
	require.NoError(t, err)

	for _, key := range []string{"foo", "bar", "box", "hello"} {
		require.True(t, r.MayContain(100, []byte(key)), key)
	}
	require.False(t, r.MayContain(100, []byte("missing")))
	require.False(t, r.MayContain(100, []byte("other")))
}

func TestBuilderMultiSlot(t *testing.T) {
	b := NewBuilder(exactHashPolicy{})

	// Slot 0 spans file offsets [0, 2048).
	b.StartBlock(0)
	b.AddKey([]byte("foo"))
	b.StartBlock(2000)
	b.AddKey([]byte("bar"))

	// Slot 1.
	b.StartBlock(3100)
	b.AddKey([]byte("box"))

	// Slots 2 and 3 receive no keys; slot 4 gets the last filter.
	b.StartBlock(9000)
	b.AddKey([]byte("hello"))

	r, err := NewReader(exactHashPolicy{}, b.Finish())
	require.NoError(t, err)

	require.True(t, r.MayContain(0, []byte("foo")))
	require.True(t, r.MayContain(2000, []byte("bar")))
	require.False(t, r.MayContain(0, []byte("box")))
	require.False(t, r.MayContain(0, []byte("hello")))

	require.True(t, r.MayContain(3100, []byte("box")))
	require.False(t, r.MayContain(3100, []byte("foo")))

	// Keyless slots prove absence for every key.
	for _, key := range []string{"foo", "bar", "box", "hello"} {
		require.False(t, r.MayContain(4100, []byte(key)), key)
		require.False(t, r.MayContain(7000, []byte(key)), key)
	}

	require.True(t, r.MayContain(9000, []byte("hello")))
	require.False(t, r.MayContain(9000, []byte("foo")))

	// Beyond the last slot is out of range and so a potential match.
	require.True(t, r.MayContain(12000, []byte("foo")))
}

func TestBuilderBaseLog2Option(t *testing.T) {
	b := NewBuilder(exactHashPolicy{}, WithBaseLog2(8))

	b.StartBlock(0)
	b.AddKey([]byte("alpha"))
	b.StartBlock(256)
	b.AddKey([]byte("beta"))
	b.StartBlock(512)
	b.AddKey([]byte("gamma"))

	block := b.Finish()
	require.Equal(t, byte(8), block[len(block)-1])

	r, err := NewReader(exactHashPolicy{}, block)
	require.NoError(t, err)

	require.True(t, r.MayContain(0, []byte("alpha")))
	require.False(t, r.MayContain(0, []byte("beta")))
	require.True(t, r.MayContain(256, []byte("beta")))
	require.False(t, r.MayContain(256, []byte("alpha")))
	require.True(t, r.MayContain(700, []byte("gamma")))
	require.True(t, r.MayContain(768, []byte("anything")))
}

func TestBuilderWithBloomPolicy(t *testing.T) {
	policy := bloom.NewPolicy(10)
	first := filtertesting.SequentialKeys(0, 50)
	second := filtertesting.SequentialKeys(100, 50)

	b := NewBuilder(policy)
	b.StartBlock(0)
	for _, key := range first {
		b.AddKey(key)
	}
	b.StartBlock(5000)
	for _, key := range second {
		b.AddKey(key)
	}

	r, err := NewReader(policy, b.Finish())
	require.NoError(t, err)

	// No false negatives through the framing.
	for _, key := range first {
		require.True(t, r.MayContain(0, key))
		require.True(t, r.MayContain(2000, key))
	}
	for _, key := range second {
		require.True(t, r.MayContain(5000, key))
		require.True(t, r.MayContain(4100, key))
	}

	// The keyless slot between the two blocks proves absence.
	for _, key := range first {
		require.False(t, r.MayContain(2500, key))
	}

	require.True(t, r.MayContain(1<<20, first[0]))
}

func TestReaderMalformed(t *testing.T) {
	policy := bloom.NewPolicy(10)

	_, err := NewReader(policy, nil)
	require.ErrorIs(t, err, ErrBadBlockSize)

	_, err = NewReader(policy, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrBadBlockSize)

	// Offset array claimed to start beyond the contents.
	_, err = NewReader(policy, []byte{0xff, 0xff, 0, 0, DefaultBaseLog2})
	require.ErrorIs(t, err, ErrBadOffsetsStart)

	// A slot whose offset pair is inverted is a potential match.
	block := []byte{
		0xaa, 0xbb, 0xcc, 0xdd, // filter region (garbage)
		5, 0, 0, 0, // slot 0 start, beyond its limit
		4, 0, 0, 0, // offset array start
		DefaultBaseLog2,
	}
	r, err := NewReader(policy, block)
	require.NoError(t, err)
	require.True(t, r.MayContain(0, []byte("anything")))
}
