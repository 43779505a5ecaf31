package bloom

// appendFilter encodes one filter over keys and appends it to dst.
//
// The bit array is sized at bitsPerKey bits per key, floored at
// MinFilterBits and rounded up to whole bytes, then each key sets
// probes bits derived by double hashing. The probe count is recorded in
// a single trailer byte so queries can honor it without the building
// policy.
func appendFilter(dst []byte, keys [][]byte, bitsPerKey, probes int) []byte {
	bits := len(keys) * bitsPerKey
	if bits < MinFilterBits {
		bits = MinFilterBits
	}
	nBytes := (bits + 7) / 8
	bits = nBytes * 8

	base := len(dst)
	dst = append(dst, make([]byte, nBytes+trailerBytes)...)
	dst[base+nBytes] = byte(probes)

	bitset := dst[base : base+nBytes]
	for _, key := range keys {
		// Double hashing: one hash evaluation per key, advanced by a
		// rotation-derived delta. Rotation rather than shift so no
		// bits of h are lost.
		h := hashKey(key)
		delta := h>>17 | h<<15
		for j := 0; j < probes; j++ {
			bitpos := h % uint32(bits)
			bitset[bitpos/8] |= 1 << (bitpos % 8)
			h += delta
		}
	}
	return dst
}

// mayContain reports whether filter may contain key.
//
// A filter shorter than the smallest possible encoding answers false:
// an empty filter was built over no keys, so it proves absence. A
// trailer above MaxProbes answers true: that range is reserved for
// future encodings, and a reader that cannot interpret a filter must
// never rule a key out. The two defaults are deliberately asymmetric.
func mayContain(filter, key []byte) bool {
	if len(filter) < 2 {
		return false
	}
	bits := uint32(len(filter)-1) * 8
	k := filter[len(filter)-1]
	if k > MaxProbes {
		return true
	}

	h := hashKey(key)
	delta := h>>17 | h<<15
	for j := byte(0); j < k; j++ {
		bitpos := h % bits
		if filter[bitpos/8]&(1<<(bitpos%8)) == 0 {
			return false
		}
		h += delta
	}
	return true
}
