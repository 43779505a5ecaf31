package bloom

/*

# Bloom filter codec for table data blocks

This package implements the filter codec a table reader consults to skip
data blocks that definitely do not contain a candidate key.

It follows the house style:

- small, composable functions
- explicit byte layouts
- pure functions over caller-owned byte slices; no retained state

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", the key is not present.
- If the filter says "maybe present", the key may or may not be present
  (false positives are possible).

Bloom filters are NOT exact membership structures and provide no proofs
of exclusion. They are only an I/O optimization: a false positive costs
one unnecessary block read, a false negative would lose data. Queries
over degenerate inputs default accordingly: an empty filter answers
definite absence, because it was built over no keys, while a filter
carrying a reserved trailer answers potential match, because an
encoding this package cannot interpret must never rule a key out.

## Encoded layout

Each filter is a bit array followed by a single probe count byte:

	+----------------------+  ceil(bits/8) bytes, bits >= 64
	| bit array            |
	+----------------------+  1 byte
	| probe count (k)      |
	+----------------------+

There is no magic, length prefix, or checksum here. Framing of many
filters in one buffer belongs to the filterblock package, and integrity
of a persisted block belongs to the blockcodec package.

## Indexing and bit numbering

Bit i of the array lives in byte i/8 at mask 1<<(i%8), so bit 0 is the
least-significant bit of byte 0 (LSB0). Probe positions are derived by
double hashing: one 32-bit hash of the key, advanced k times by a
rotation-derived delta, each position reduced modulo the bit count.

## Self-describing probe count

The trailing byte records the k the filter was BUILT with. Queries honor
it over the querying policy's own configuration, so filters written
under one bits-per-key budget remain readable after the budget changes.
Trailer values above MaxProbes are reserved for future encodings and
are reported as potential matches.

## Versioning: why the name ends in 2

Name returns a fixed literal ending in a format version. The literal is
persisted alongside encodings so a reader can select matching decode
logic; any incompatible change to the layout, bit order, or hashing
ships under a new literal side-by-side, without silently breaking
previously persisted filters.

*/
