package filterblock

import (
	"encoding/binary"

	"github.com/forestrie/go-tablefilter/bloom"
)

// Reader answers membership questions against a finished filter block.
// It is immutable after construction and safe for concurrent use.
type Reader struct {
	policy   bloom.FilterPolicy
	data     []byte
	offsets  uint32 // byte position of the offset array within data
	slots    int
	baseLog2 uint8
}

// NewReader validates the block tail and locates the offset array. The
// contents slice is retained and must not be mutated afterwards.
func NewReader(policy bloom.FilterPolicy, contents []byte) (*Reader, error) {
	if len(contents) < tailBytes {
		return nil, ErrBadBlockSize
	}
	baseLog2 := contents[len(contents)-1]
	arrayStart := binary.LittleEndian.Uint32(contents[len(contents)-tailBytes:])
	if arrayStart > uint32(len(contents)-tailBytes) {
		return nil, ErrBadOffsetsStart
	}
	return &Reader{
		policy:   policy,
		data:     contents,
		offsets:  arrayStart,
		slots:    (len(contents) - tailBytes - int(arrayStart)) / offsetBytes,
		baseLog2: baseLog2,
	}, nil
}

// MayContain reports whether the data block at blockOffset may contain
// key. Out-of-range slots and malformed offset pairs report a potential
// match, so the caller inspects the block rather than skipping it; a
// keyless slot proves absence.
func (r *Reader) MayContain(blockOffset uint64, key []byte) bool {
	index := blockOffset >> r.baseLog2
	if index >= uint64(r.slots) {
		return true
	}
	pos := uint64(r.offsets) + index*offsetBytes
	start := binary.LittleEndian.Uint32(r.data[pos:])
	limit := binary.LittleEndian.Uint32(r.data[pos+offsetBytes:])
	switch {
	case start == limit:
		return false
	case start < limit && limit <= r.offsets:
		return r.policy.MayContain(r.data[start:limit], key)
	default:
		return true
	}
}
