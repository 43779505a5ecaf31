package blockcodec

import "errors"

// Compression identifies the payload transform recorded in a block
// envelope's kind byte.
type Compression uint8

const (
	None   Compression = 0x0
	Snappy Compression = 0x1
	Zstd   Compression = 0x2
)

const (
	kindBytes = 1
	sumBytes  = 8

	// TailBytes is the envelope overhead appended after the payload:
	// the kind byte plus the checksum word.
	TailBytes = kindBytes + sumBytes
)

var (
	ErrBadEnvelopeSize = errors.New("blockcodec: block shorter than the envelope tail")
	ErrBadChecksum     = errors.New("blockcodec: checksum mismatch")
	ErrBadCompression  = errors.New("blockcodec: unknown compression kind")
)
