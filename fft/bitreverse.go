package fft

// reverseByte reverses the bits of the low byte of b.
// See https://graphics.stanford.edu/~seander/bithacks.html#ReverseByteWith64BitsDiv
func reverseByte(b uint64) uint64 {
	return ((b & 0xff) * 0x0202020202 & 0x010884422010) % 1023
}

// ReverseBits reverses the bit order of a 32 bit word, byte by byte.
func ReverseBits(v uint32) uint32 {
	return uint32(reverseByte(uint64(v))<<24 |
		reverseByte(uint64(v)>>8)<<16 |
		reverseByte(uint64(v)>>16)<<8 |
		reverseByte(uint64(v)>>24))
}

// log2PowTwo returns log2(n) for n a power of two, via a parallel reduction
// over the five bit-group masks. The result is the index of the single set bit.
func log2PowTwo(n uint32) uint32 {
	r := uint32(0)
	if n&0xAAAAAAAA != 0 {
		r |= 1
	}
	if n&0xCCCCCCCC != 0 {
		r |= 2
	}
	if n&0xF0F0F0F0 != 0 {
		r |= 4
	}
	if n&0xFF00FF00 != 0 {
		r |= 8
	}
	if n&0xFFFF0000 != 0 {
		r |= 16
	}
	return r
}

// isPowerOfTwo reports whether n is a power of two. It returns true for n == 0,
// a convention callers rely on never being exercised with a zero length.
func isPowerOfTwo(n uint64) bool {
	return n&(n-1) == 0
}

// BitReverse permutes v in place so that the element at index i moves to the
// index obtained by reversing the log2(len(v)) low bits of i. Applying it
// twice restores the original order. len(v) must be a power of two smaller
// than 2^32.
func BitReverse[T any](v []T) error {
	n := uint64(len(v))
	if n>>32 != 0 {
		return ErrLengthTooLarge
	}
	if !isPowerOfTwo(n) {
		return ErrNotPowerOfTwo
	}

	unusedBits := 32 - log2PowTwo(uint32(n))
	for i := uint32(0); i < uint32(n); i++ {
		r := ReverseBits(i) >> unusedBits
		if r > i {
			v[i], v[r] = v[r], v[i]
		}
	}
	return nil
}
