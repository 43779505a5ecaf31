// Package blockcodec wraps persisted blocks in a self-checking
// envelope: [payload][1 byte kind][8 byte checksum, fixed64 LE]. The
// checksum is xxhash64 over the transformed payload and the kind byte,
// so verification needs no inflation and a flipped kind byte is caught
// the same way as flipped payload bytes.
package blockcodec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
)

// zstd coders are expensive to construct and safe for concurrent
// EncodeAll/DecodeAll use, so they are pooled process-wide.
var (
	zstdEncoders = sync.Pool{New: func() any {
		enc, _ := zstd.NewWriter(nil)
		return enc
	}}
	zstdDecoders = sync.Pool{New: func() any {
		dec, _ := zstd.NewReader(nil)
		return dec
	}}
)

// AppendBlock transforms payload per kind and appends the enveloped
// block to dst, returning the extended slice. Prior contents of dst are
// never disturbed. The only failure is an unknown kind.
func AppendBlock(dst, payload []byte, kind Compression) ([]byte, error) {
	base := len(dst)
	switch kind {
	case None:
		dst = append(dst, payload...)
	case Snappy:
		dst = append(dst, snappy.Encode(nil, payload)...)
	case Zstd:
		enc := zstdEncoders.Get().(*zstd.Encoder)
		dst = enc.EncodeAll(payload, dst)
		zstdEncoders.Put(enc)
	default:
		return dst, fmt.Errorf("%w: 0x%02x", ErrBadCompression, uint8(kind))
	}
	dst = append(dst, byte(kind))
	return binary.LittleEndian.AppendUint64(dst, xxhash.Sum64(dst[base:])), nil
}

// DecodeBlock verifies the envelope and returns the payload. The
// checksum is checked before any inflation happens. For the None kind
// the returned slice aliases block; callers that outlive block must
// copy.
func DecodeBlock(block []byte) ([]byte, error) {
	if len(block) < TailBytes {
		return nil, ErrBadEnvelopeSize
	}
	body := block[:len(block)-sumBytes]
	sum := binary.LittleEndian.Uint64(block[len(block)-sumBytes:])
	if xxhash.Sum64(body) != sum {
		return nil, ErrBadChecksum
	}

	kind := Compression(body[len(body)-kindBytes])
	payload := body[:len(body)-kindBytes]
	switch kind {
	case None:
		return payload, nil
	case Snappy:
		inflated, err := snappy.Decode(nil, payload)
		if err != nil {
			return nil, fmt.Errorf("blockcodec: snappy payload: %w", err)
		}
		return inflated, nil
	case Zstd:
		dec := zstdDecoders.Get().(*zstd.Decoder)
		inflated, err := dec.DecodeAll(payload, nil)
		zstdDecoders.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("blockcodec: zstd payload: %w", err)
		}
		return inflated, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadCompression, uint8(kind))
	}
}
