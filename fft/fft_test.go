package fft

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func randomFrSlice(t *testing.T, n int) []fr.Element {
	t.Helper()
	v := make([]fr.Element, n)
	for i := range v {
		_, err := v[i].SetRandom()
		require.NoError(t, err)
	}
	return v
}

func TestFFTFrRoundTrip(t *testing.T) {
	s, err := NewSettings(10)
	require.NoError(t, err)

	for n := 1; n <= 1024; n *= 2 {
		in := randomFrSlice(t, n)

		coeffs, err := s.FFTFr(in, false)
		require.NoError(t, err)
		got, err := s.FFTFr(coeffs, true)
		require.NoError(t, err)

		for i := range in {
			require.True(t, got[i].Equal(&in[i]), "width %d: index %d", n, i)
		}
	}
}

// The forward transform must agree with a naive O(n^2) evaluation of the
// polynomial at the powers of the root of unity.
func TestFFTFrMatchesNaiveDFT(t *testing.T) {
	const n = 8
	s, err := NewSettings(3)
	require.NoError(t, err)

	in := randomFrSlice(t, n)
	out, err := s.FFTFr(in, false)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		var acc, term fr.Element
		for j := 0; j < n; j++ {
			term.Mul(&in[j], &s.ExpandedRootsOfUnity[(i*j)%n])
			acc.Add(&acc, &term)
		}
		require.True(t, acc.Equal(&out[i]), "evaluation at root %d", i)
	}
}

func TestFFTFrInvalidWidth(t *testing.T) {
	s, err := NewSettings(4)
	require.NoError(t, err)

	_, err = s.FFTFr(make([]fr.Element, 3), false)
	require.ErrorIs(t, err, ErrNotPowerOfTwo)

	_, err = s.FFTFr(make([]fr.Element, 32), false)
	require.ErrorIs(t, err, ErrExceedsMaxWidth)
}

func TestFFTG1RoundTrip(t *testing.T) {
	const n = 16
	s, err := NewSettings(4)
	require.NoError(t, err)

	g1Gen, _, _, _ := bls12381.Generators()
	in := make([]bls12381.G1Jac, n)
	for i := range in {
		in[i].ScalarMultiplication(&g1Gen, big.NewInt(int64(i)+0xbeef))
	}

	lagrange, err := s.FFTG1(in, true)
	require.NoError(t, err)
	got, err := s.FFTG1(lagrange, false)
	require.NoError(t, err)

	for i := range in {
		require.True(t, got[i].Equal(&in[i]), "index %d", i)
	}
}

// FFT and scalar multiplication commute: transforming [x_i]·G must give
// [X_i]·G where X is the field transform of x.
func TestFFTG1MatchesFr(t *testing.T) {
	const n = 8
	s, err := NewSettings(3)
	require.NoError(t, err)

	scalars := randomFrSlice(t, n)

	g1Gen, _, _, _ := bls12381.Generators()
	points := make([]bls12381.G1Jac, n)
	var bi big.Int
	for i := range points {
		scalars[i].BigInt(&bi)
		points[i].ScalarMultiplication(&g1Gen, &bi)
	}

	outPoints, err := s.FFTG1(points, false)
	require.NoError(t, err)
	outScalars, err := s.FFTFr(scalars, false)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		var want bls12381.G1Jac
		outScalars[i].BigInt(&bi)
		want.ScalarMultiplication(&g1Gen, &bi)
		require.True(t, outPoints[i].Equal(&want), "index %d", i)
	}
}

func BenchmarkFFTFr(b *testing.B) {
	const scale = 12
	s, err := NewSettings(scale)
	if err != nil {
		b.Fatal(err)
	}
	in := make([]fr.Element, 1<<scale)
	for i := range in {
		in[i].SetUint64(uint64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.FFTFr(in, false); err != nil {
			b.Fatal(err)
		}
	}
}
