package fft

import (
	"math/bits"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestReverseBits(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("ReverseBits matches math/bits.Reverse32", prop.ForAll(
		func(v uint32) bool {
			return ReverseBits(v) == bits.Reverse32(v)
		},
		gen.UInt32(),
	))

	properties.Property("ReverseBits(ReverseBits(v)) == v", prop.ForAll(
		func(v uint32) bool {
			return ReverseBits(ReverseBits(v)) == v
		},
		gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLog2PowTwo(t *testing.T) {
	for i := 0; i < 32; i++ {
		if got := log2PowTwo(uint32(1) << i); got != uint32(i) {
			t.Errorf("log2PowTwo(1<<%d): expected %d, received %d", i, i, got)
		}
	}
}

func TestBitReverse(t *testing.T) {
	got := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, BitReverse(got))

	want := []uint64{1, 5, 3, 7, 2, 6, 4, 8}
	require.Equal(t, want, got)
}

func TestBitReverseInvolution(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		v := make([]fr.Element, n)
		for i := range v {
			v[i].SetUint64(uint64(i))
		}
		orig := make([]fr.Element, n)
		copy(orig, v)

		require.NoError(t, BitReverse(v))
		require.NoError(t, BitReverse(v))
		require.Equal(t, orig, v, "double permutation of length %d is not the identity", n)
	}
}

func TestBitReverseNotPowerOfTwo(t *testing.T) {
	v := make([]fr.Element, 3)
	require.ErrorIs(t, BitReverse(v), ErrNotPowerOfTwo)
}
