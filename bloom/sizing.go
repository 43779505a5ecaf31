package bloom

import "math"

// ProbesPerKey returns the probe count derived from a bits-per-key
// budget: floor(bitsPerKey * ln2), clamped to [MinProbes, MaxProbes].
// Rounding down trades a small increase in false positives for fewer
// probe operations per query.
func ProbesPerKey(bitsPerKey int) int {
	probes := int(float64(bitsPerKey) * 0.69) // 0.69 ~= ln(2)
	if probes < MinProbes {
		probes = MinProbes
	}
	if probes > MaxProbes {
		probes = MaxProbes
	}
	return probes
}

// BitsPerKey inverts the standard Bloom sizing formula, returning the
// per-key bit budget at which a filter over numEntries keys has fp as
// its expected false positive rate. Degenerate arguments return
// DefaultBitsPerKey.
func BitsPerKey(numEntries int, fp float64) int {
	if numEntries <= 0 || fp <= 0 || fp >= 1 {
		return DefaultBitsPerKey
	}
	size := -1 * float64(numEntries) * math.Log(fp) / math.Pow(math.Ln2, 2)
	return int(math.Ceil(size / float64(numEntries)))
}

// FilterBytes returns the exact number of bytes AppendFilter appends
// for numKeys keys under bitsPerKey, trailer included. Callers sizing
// destination buffers can allocate once with this.
func FilterBytes(numKeys, bitsPerKey int) int {
	bits := numKeys * bitsPerKey
	if bits < MinFilterBits {
		bits = MinFilterBits
	}
	return (bits+7)/8 + trailerBytes
}
