package fft

import (
	"fmt"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/kzg4844/internal/parallel"
)

// below this half-width the recursion stays on the calling goroutine
const parallelThreshold = 256

// kernel is the butterfly arithmetic for one transform element type. The
// recursive engine is written once against this interface and instantiated
// for field elements and for G1 points.
type kernel[T any] interface {
	// scale sets dst = w·a; dst and a may alias.
	scale(dst, a *T, w *fr.Element)
	// add sets dst = a + b; dst may alias a.
	add(dst, a, b *T)
	// sub sets dst = a - b; dst may alias a.
	sub(dst, a, b *T)
}

type frKernel struct{}

func (frKernel) scale(dst, a *fr.Element, w *fr.Element) { dst.Mul(a, w) }
func (frKernel) add(dst, a, b *fr.Element)               { dst.Add(a, b) }
func (frKernel) sub(dst, a, b *fr.Element)               { dst.Sub(a, b) }

type g1Kernel struct{}

func (g1Kernel) scale(dst, a *bls12381.G1Jac, w *fr.Element) {
	if w.IsOne() {
		dst.Set(a)
		return
	}
	var s big.Int
	w.BigInt(&s)
	dst.ScalarMultiplication(a, &s)
}

func (g1Kernel) add(dst, a, b *bls12381.G1Jac) {
	if dst != a {
		dst.Set(a)
	}
	dst.AddAssign(b)
}

func (g1Kernel) sub(dst, a, b *bls12381.G1Jac) {
	if dst != a {
		dst.Set(a)
	}
	dst.SubAssign(b)
}

// fftFast is the recursive decimation-in-frequency transform. It reads in at
// the given stride and writes the n results into out, splitting into the even
// and odd subsequences by doubling the stride and recombining with the
// butterfly
//
//	t           = out[i+half]·roots[i·rootsStride]
//	out[i+half] = out[i] - t
//	out[i]      = out[i] + t
//
// The two half-transforms write disjoint ranges of out and run concurrently
// above parallelThreshold.
func fftFast[T any](k kernel[T], out, in []T, stride, rootsStride uint64, roots []fr.Element) {
	half := uint64(len(out)) / 2
	if half == 0 {
		out[0] = in[0]
		return
	}

	if half >= parallelThreshold {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			fftFast(k, out[:half], in, stride*2, rootsStride*2, roots)
			wg.Done()
		}()
		fftFast(k, out[half:], in[stride:], stride*2, rootsStride*2, roots)
		wg.Wait()
	} else {
		fftFast(k, out[:half], in, stride*2, rootsStride*2, roots)
		fftFast(k, out[half:], in[stride:], stride*2, rootsStride*2, roots)
	}

	var t T
	for i := uint64(0); i < half; i++ {
		k.scale(&t, &out[i+half], &roots[i*rootsStride])
		k.sub(&out[i+half], &out[i], &t)
		k.add(&out[i], &out[i], &t)
	}
}

// fft runs a forward or inverse transform of width len(in) against the
// settings' tables, writing a freshly allocated result.
func fft[T any](s *Settings, k kernel[T], in []T, inverse bool) ([]T, error) {
	n := uint64(len(in))
	if n > s.MaxWidth {
		return nil, fmt.Errorf("%w: %d > %d", ErrExceedsMaxWidth, n, s.MaxWidth)
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]T, n)
	rootsStride := s.MaxWidth / n
	if inverse {
		fftFast(k, out, in, 1, rootsStride, s.ReverseRootsOfUnity)

		var invLen fr.Element
		invLen.SetUint64(n)
		invLen.Inverse(&invLen)
		parallel.Execute(int(n), func(start, end int) {
			for i := start; i < end; i++ {
				k.scale(&out[i], &out[i], &invLen)
			}
		})
	} else {
		fftFast(k, out, in, 1, rootsStride, s.ExpandedRootsOfUnity)
	}
	return out, nil
}

// FFTFr transforms field elements between coefficient and evaluation form.
// len(in) must be a power of two no larger than s.MaxWidth. The input is left
// untouched; the inverse direction scales the result by len(in)^-1.
func (s *Settings) FFTFr(in []fr.Element, inverse bool) ([]fr.Element, error) {
	return fft(s, frKernel{}, in, inverse)
}

// FFTG1 is FFTFr over G1 points, with scalar multiplication taking the place
// of field multiplication. The inverse direction converts a monomial-form
// point sequence (powers of a secret in the exponent) into Lagrange form.
func (s *Settings) FFTG1(in []bls12381.G1Jac, inverse bool) ([]bls12381.G1Jac, error) {
	return fft(s, g1Kernel{}, in, inverse)
}
