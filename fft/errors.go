package fft

import "errors"

var (
	// ErrNotPowerOfTwo is returned when a transform or permutation length is
	// not a power of two.
	ErrNotPowerOfTwo = errors.New("fft: length is not a power of two")

	// ErrExceedsMaxWidth is returned when a transform length is larger than
	// the width the settings were built for.
	ErrExceedsMaxWidth = errors.New("fft: length exceeds settings max width")

	// ErrScaleTooLarge is returned by NewSettings when maxScale is outside the
	// root of unity table.
	ErrScaleTooLarge = errors.New("fft: max scale exceeds root of unity table")

	// ErrBadRootOfUnity is returned when a root of unity does not have the
	// multiplicative order the requested width demands.
	ErrBadRootOfUnity = errors.New("fft: root of unity has wrong order")

	// ErrLengthTooLarge is returned when a permutation length does not fit in
	// 32 bits.
	ErrLengthTooLarge = errors.New("fft: length does not fit in 32 bits")
)
