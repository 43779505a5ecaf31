package filterblock

/*

# Filter block framing

One table carries many per-block filters. This package packs them into a
single block a reader can index by data block file offset alone:

	+----------------------+
	| filter 0             |
	| filter 1             |
	| ...                  |
	+----------------------+
	| offset of filter 0   |  fixed32 LE each
	| offset of filter 1   |
	| ...                  |
	+----------------------+
	| offset array start   |  fixed32 LE
	+----------------------+
	| baseLog2             |  1 byte
	+----------------------+

Filter slot i covers data blocks whose file offsets fall in
[i*2^baseLog2, (i+1)*2^baseLog2). The offset array start word doubles as
the limit of the last filter, so every slot's range reads as a pair of
adjacent words.

The framing is codec-agnostic: it stores whatever FilterPolicy
AppendFilter emits and hands slices back to MayContain unexamined.
Keyless slots are recorded as zero length ranges and prove absence
without consulting the codec at all.

*/
