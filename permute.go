package shorturl

// permute scrambles the low blockSize bits of n. Bits at positions >=
// blockSize pass through untouched, so inputs wider than the block still
// round-trip with only the low block rearranged. The mapping table is read in
// reverse index order; with the identity table that reverses the low block
// bit for bit, which is what makes the default configuration scramble at all.
func (e *Encoder) permute(n uint64) uint64 {
	result := n &^ e.mask
	for i := uint(0); i < e.blockSize; i++ {
		if n&(1<<i) != 0 {
			result |= 1 << e.mapping[e.blockSize-1-i]
		}
	}
	return result
}

// unpermute inverts permute: output bit i is taken from input bit
// mapping[blockSize-1-i].
func (e *Encoder) unpermute(n uint64) uint64 {
	result := n &^ e.mask
	for i := uint(0); i < e.blockSize; i++ {
		if n&(1<<e.mapping[e.blockSize-1-i]) != 0 {
			result |= 1 << i
		}
	}
	return result
}
