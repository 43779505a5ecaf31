package filterblock

import "errors"

const (
	// DefaultBaseLog2 gives one filter slot per 2KiB of file offset,
	// comfortably above a typical data block so most slots receive
	// exactly one block's keys.
	DefaultBaseLog2 = 11

	// offsetBytes is the width of one offset array entry.
	offsetBytes = 4

	// tailBytes is the offset-array start word plus the baseLog2 byte.
	tailBytes = offsetBytes + 1
)

var (
	ErrBadBlockSize    = errors.New("filterblock: contents shorter than the block tail")
	ErrBadOffsetsStart = errors.New("filterblock: offset array start out of range")
)
