// Package kzg4844 provides the FFT machinery and trusted setup ingestion
// underlying KZG polynomial commitments over BLS12-381.
//
// The fft package implements radix-2 transforms over scalar field elements
// and G1 points, together with the root of unity tables driving them. The kzg
// package loads a structured reference string from its textual setup format
// and converts the G1 points into evaluation (Lagrange) form, the
// representation commitment and proof layers consume.
package kzg4844

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
