package filterblock

import (
	"encoding/binary"

	"github.com/forestrie/go-tablefilter/bloom"
)

// Builder packs one encoded filter per 2^baseLog2 bytes of table file
// offset into a single filter block.
//
// Usage mirrors table construction: StartBlock for each data block as
// it is emitted, AddKey for every key written to it, Finish once when
// the table completes. The builder must not be used after Finish.
type Builder struct {
	policy   bloom.FilterPolicy
	baseLog2 uint8

	keys    []byte   // flattened pending key bytes
	starts  []int    // start of each pending key within keys
	result  []byte   // block under construction
	scratch [][]byte // reassembled pending keys, reused across flushes
	offsets []uint32 // start of each generated filter within result
}

type BuilderOption func(*Builder)

// WithBaseLog2 overrides the file-offset span covered by one filter
// slot. Readers recover the value from the finished block, so writers
// may choose freely.
func WithBaseLog2(baseLog2 uint8) BuilderOption {
	return func(b *Builder) { b.baseLog2 = baseLog2 }
}

func NewBuilder(policy bloom.FilterPolicy, opts ...BuilderOption) *Builder {
	b := &Builder{policy: policy, baseLog2: DefaultBaseLog2}
	for _, o := range opts {
		o(b)
	}
	return b
}

// StartBlock declares that subsequent AddKey calls belong to the data
// block at blockOffset. Offsets must be presented in nondecreasing
// order across calls.
func (b *Builder) StartBlock(blockOffset uint64) {
	index := blockOffset >> b.baseLog2
	for index > uint64(len(b.offsets)) {
		b.generate()
	}
}

// AddKey buffers key for the slot declared by the last StartBlock.
func (b *Builder) AddKey(key []byte) {
	b.starts = append(b.starts, len(b.keys))
	b.keys = append(b.keys, key...)
}

// Finish flushes any pending filter and appends the offset array, its
// start position, and the baseLog2 byte, returning the complete block.
func (b *Builder) Finish() []byte {
	if len(b.starts) != 0 {
		b.generate()
	}
	arrayStart := uint32(len(b.result))
	for _, offset := range b.offsets {
		b.result = binary.LittleEndian.AppendUint32(b.result, offset)
	}
	b.result = binary.LittleEndian.AppendUint32(b.result, arrayStart)
	b.result = append(b.result, b.baseLog2)
	return b.result
}

func (b *Builder) generate() {
	if len(b.starts) == 0 {
		// Keyless slot: record the offset pair only, no filter bytes.
		b.offsets = append(b.offsets, uint32(len(b.result)))
		return
	}

	// Sentinel start simplifies slicing the last pending key.
	b.starts = append(b.starts, len(b.keys))
	b.scratch = b.scratch[:0]
	for i := 0; i+1 < len(b.starts); i++ {
		b.scratch = append(b.scratch, b.keys[b.starts[i]:b.starts[i+1]])
	}

	b.offsets = append(b.offsets, uint32(len(b.result)))
	b.result = b.policy.AppendFilter(b.result, b.scratch)

	b.keys = b.keys[:0]
	b.starts = b.starts[:0]
}
