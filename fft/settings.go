package fft

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Settings holds the precomputed root of unity tables for transforms of width
// up to MaxWidth. The same settings drive transforms over both field elements
// and G1 points, and over any smaller power-of-two width.
//
// A Settings value is immutable after construction and safe for concurrent
// readers.
type Settings struct {
	// MaxWidth is the largest transform width these settings support. It is a
	// power of two by construction.
	MaxWidth uint64

	// ExpandedRootsOfUnity holds the MaxWidth+1 successive powers of the
	// primitive MaxWidth-th root of unity; the first and last entries are one.
	ExpandedRootsOfUnity []fr.Element

	// ReverseRootsOfUnity is ExpandedRootsOfUnity in reverse order, used to
	// run inverse transforms without recomputing powers.
	ReverseRootsOfUnity []fr.Element

	// RootsOfUnity holds the first MaxWidth expanded roots in bit-reversed
	// order, indexed by natural transform output position.
	RootsOfUnity []fr.Element
}

// NewSettings builds the root tables for transforms of width up to 2^maxScale.
// maxScale must not exceed MaxScale.
func NewSettings(maxScale uint8) (*Settings, error) {
	if maxScale > MaxScale {
		return nil, fmt.Errorf("%w: %d > %d", ErrScaleTooLarge, maxScale, MaxScale)
	}

	s := &Settings{
		MaxWidth: uint64(1) << maxScale,
	}

	root := rootOfUnity(maxScale)
	expanded, err := expandRootOfUnity(&root, s.MaxWidth)
	if err != nil {
		return nil, err
	}
	s.ExpandedRootsOfUnity = expanded

	s.ReverseRootsOfUnity = make([]fr.Element, s.MaxWidth+1)
	for i := uint64(0); i <= s.MaxWidth; i++ {
		s.ReverseRootsOfUnity[i] = expanded[s.MaxWidth-i]
	}

	s.RootsOfUnity = make([]fr.Element, s.MaxWidth)
	copy(s.RootsOfUnity, expanded[:s.MaxWidth])
	if err := BitReverse(s.RootsOfUnity); err != nil {
		return nil, err
	}

	return s, nil
}
