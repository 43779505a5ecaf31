package bloom

const (
	// FilterName is the stable identifier persisted alongside encoded
	// filters so a reader can select matching decode logic. It never
	// changes while old encodings remain on disk; an incompatible
	// format ships under a new literal.
	FilterName = "tablefilter.BuiltinBloomFilter2"

	// MinFilterBits is the floor on the bit array length. Small and
	// empty batches still get 64 bits so their false positive rate
	// stays bounded.
	MinFilterBits = 64

	// MinProbes and MaxProbes bound the per-key probe count. Trailer
	// values above MaxProbes are reserved for future encodings and are
	// treated as potential matches by queries.
	MinProbes = 1
	MaxProbes = 30

	// DefaultBitsPerKey yields roughly a 1% false positive rate with
	// the derived probe count of 6.
	DefaultBitsPerKey = 10

	// trailerBytes is the probe count byte appended after the bit array.
	trailerBytes = 1
)
