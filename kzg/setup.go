// Package kzg ingests the structured reference string (trusted setup) of a
// KZG polynomial commitment scheme over BLS12-381.
//
// The loader parses a textual setup file into G1/G2 point arrays and converts
// the G1 points from monomial to evaluation (Lagrange) form with an inverse
// G1 FFT, producing a Settings value ready for commitment and proof
// computation layers.
package kzg

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/kzg4844/fft"
	"github.com/consensys/kzg4844/logger"
)

var (
	// ErrTruncatedSetup is returned when the setup source ends before the
	// declared number of points has been read.
	ErrTruncatedSetup = errors.New("kzg: truncated trusted setup")

	// ErrInvalidSetup is returned when a setup token is not a point of the
	// expected size and encoding.
	ErrInvalidSetup = errors.New("kzg: malformed trusted setup")
)

const (
	g1HexLen = 2 * bls12381.SizeOfG1AffineCompressed
	g2HexLen = 2 * bls12381.SizeOfG2AffineCompressed
)

// Settings is a loaded structured reference string together with the FFT
// tables sized for it. It is immutable after LoadTrustedSetup returns and safe
// for concurrent readers.
type Settings struct {
	// Length is the number of G1 points, the polynomial degree bound plus one.
	Length uint64

	// G1Values holds the G1 points in evaluation (Lagrange) form over the
	// Length-th roots of unity.
	G1Values []bls12381.G1Affine

	// G2Values holds the G2 points as read, in monomial form.
	G2Values []bls12381.G2Affine

	// FS holds the root of unity tables; FS.MaxWidth is the smallest power of
	// two >= Length.
	FS *fft.Settings
}

// LoadTrustedSetup reads a textual trusted setup and assembles Settings.
//
// The format is whitespace-delimited ASCII: the G1 point count, the G2 point
// count, then each G1 point as 96 hex characters (48-byte compressed) and each
// G2 point as 192 hex characters (96-byte compressed), in that order.
// Decompression checks curve and subgroup membership, so a corrupted point is
// rejected here rather than surfacing later in a pairing.
func LoadTrustedSetup(r io.Reader) (*Settings, error) {
	log := logger.Logger()
	start := time.Now()

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n1, err := readCount(scanner, "g1 count")
	if err != nil {
		return nil, err
	}
	n2, err := readCount(scanner, "g2 count")
	if err != nil {
		return nil, err
	}
	if n1 == 0 || n1>>32 != 0 {
		return nil, fmt.Errorf("%w: unsupported g1 count %d", ErrInvalidSetup, n1)
	}
	if n2>>32 != 0 {
		return nil, fmt.Errorf("%w: unsupported g2 count %d", ErrInvalidSetup, n2)
	}

	g1Raw, err := readPoints(scanner, n1, g1HexLen)
	if err != nil {
		return nil, err
	}
	g2Raw, err := readPoints(scanner, n2, g2HexLen)
	if err != nil {
		return nil, err
	}

	g1Monomial := make([]bls12381.G1Affine, n1)
	g2Values := make([]bls12381.G2Affine, n2)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, c := range chunks(len(g1Monomial)) {
		g.Go(func() error {
			for i := c.start; i < c.end; i++ {
				if _, err := g1Monomial[i].SetBytes(g1Raw[i]); err != nil {
					return fmt.Errorf("%w: g1 point %d: %v", ErrInvalidSetup, i, err)
				}
			}
			return nil
		})
	}
	for _, c := range chunks(len(g2Values)) {
		g.Go(func() error {
			for i := c.start; i < c.end; i++ {
				if _, err := g2Values[i].SetBytes(g2Raw[i]); err != nil {
					return fmt.Errorf("%w: g2 point %d: %v", ErrInvalidSetup, i, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	maxScale := uint8(0)
	for uint64(1)<<maxScale < n1 {
		maxScale++
	}

	fs, err := fft.NewSettings(maxScale)
	if err != nil {
		return nil, fmt.Errorf("kzg: building fft settings: %w", err)
	}

	jac := make([]bls12381.G1Jac, n1)
	for i := range jac {
		jac[i].FromAffine(&g1Monomial[i])
	}
	lagrange, err := fs.FFTG1(jac, true)
	if err != nil {
		return nil, fmt.Errorf("kzg: converting g1 points to evaluation form: %w", err)
	}

	s := &Settings{
		Length:   n1,
		G1Values: bls12381.BatchJacobianToAffineG1(lagrange),
		G2Values: g2Values,
		FS:       fs,
	}

	log.Debug().
		Uint64("g1", n1).
		Uint64("g2", n2).
		Uint64("maxWidth", fs.MaxWidth).
		Dur("took", time.Since(start)).
		Msg("loaded trusted setup")

	return s, nil
}

// LoadTrustedSetupFile is LoadTrustedSetup over the file at path.
func LoadTrustedSetupFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTrustedSetup(bufio.NewReader(f))
}

func readCount(scanner *bufio.Scanner, what string) (uint64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("kzg: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrTruncatedSetup, what)
	}
	n, err := strconv.ParseUint(scanner.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidSetup, what, err)
	}
	return n, nil
}

// readPoints decodes n hex tokens of hexLen characters each into raw point
// bytes, leaving decompression to the caller.
func readPoints(scanner *bufio.Scanner, n uint64, hexLen int) ([][]byte, error) {
	out := make([][]byte, n)
	for i := uint64(0); i < n; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("kzg: reading point %d: %w", i, err)
			}
			return nil, fmt.Errorf("%w: %d of %d points", ErrTruncatedSetup, i, n)
		}
		tok := scanner.Text()
		if len(tok) != hexLen {
			return nil, fmt.Errorf("%w: point %d has %d hex characters, want %d", ErrInvalidSetup, i, len(tok), hexLen)
		}
		raw, err := hex.DecodeString(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %v", ErrInvalidSetup, i, err)
		}
		out[i] = raw
	}
	return out, nil
}

type chunk struct {
	start, end int
}

// chunks yields up to NumCPU contiguous index ranges covering [0, n).
func chunks(n int) []chunk {
	nbTasks := runtime.NumCPU()
	if nbTasks > n {
		nbTasks = n
	}
	out := make([]chunk, 0, nbTasks)
	for i := 0; i < nbTasks; i++ {
		out = append(out, chunk{
			start: i * n / nbTasks,
			end:   (i + 1) * n / nbTasks,
		})
	}
	return out
}
