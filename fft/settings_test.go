package fft

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	for scale := uint8(0); scale <= 10; scale++ {
		s, err := NewSettings(scale)
		require.NoError(t, err)

		width := uint64(1) << scale
		require.Equal(t, width, s.MaxWidth)
		require.Len(t, s.ExpandedRootsOfUnity, int(width)+1)
		require.Len(t, s.ReverseRootsOfUnity, int(width)+1)
		require.Len(t, s.RootsOfUnity, int(width))

		// both ends of the expanded sequence are one
		require.True(t, s.ExpandedRootsOfUnity[0].IsOne())
		require.True(t, s.ExpandedRootsOfUnity[width].IsOne())

		// the half-way root is a square root of one, and not one itself
		if width > 1 {
			var sq fr.Element
			sq.Square(&s.ExpandedRootsOfUnity[width/2])
			require.True(t, sq.IsOne())
			require.False(t, s.ExpandedRootsOfUnity[width/2].IsOne())
		}

		// the reverse table mirrors the expanded one
		for i := uint64(0); i <= width; i++ {
			require.True(t, s.ReverseRootsOfUnity[i].Equal(&s.ExpandedRootsOfUnity[width-i]),
				"scale %d: reverse root %d", scale, i)
		}

		// the permuted table is the expanded prefix in bit-reversed order
		perm := make([]fr.Element, width)
		copy(perm, s.ExpandedRootsOfUnity[:width])
		require.NoError(t, BitReverse(perm))
		require.Equal(t, perm, s.RootsOfUnity)
	}
}

func TestNewSettingsScaleTooLarge(t *testing.T) {
	_, err := NewSettings(MaxScale + 1)
	require.ErrorIs(t, err, ErrScaleTooLarge)

	_, err = NewSettings(33)
	require.ErrorIs(t, err, ErrScaleTooLarge)
}
