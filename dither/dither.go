/*
Package dither quantizes RGBA pixel buffers against a fixed palette, using
error diffusion or ordered threshold matrices to mask the color reduction.

All algorithms share one contract: the RGB channels of every pixel are
replaced with palette entries, alpha bytes pass through untouched, and the
palette itself is never modified. Diffusion algorithms scan in raster order
and are inherently sequential; ordered algorithms treat every pixel
independently.
*/
package dither

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bodgit/pixelate/palette"
	"github.com/bodgit/pixelate/pixel"
)

// ErrUnknownAlgorithm is returned for an algorithm name not listed in
// Algorithms.
var ErrUnknownAlgorithm = errors.New("dither: unknown algorithm")

// Algorithm names a dithering algorithm.
type Algorithm string

const (
	// None quantizes each pixel to its nearest palette color with no
	// dithering at all.
	None Algorithm = "none"
	// FloydSteinberg diffuses the full quantization error to four raster
	// neighbors.
	FloydSteinberg Algorithm = "floyd-steinberg"
	// Atkinson diffuses six eighths of the quantization error and drops
	// the rest, trading contrast for detail.
	Atkinson Algorithm = "atkinson"
	// Ordered thresholds against the 4x4 Bayer matrix.
	Ordered Algorithm = "ordered"
	// Bayer2x2, Bayer4x4 and Bayer8x8 threshold against the Bayer matrix
	// of the given size.
	Bayer2x2 Algorithm = "bayer-2x2"
	Bayer4x4 Algorithm = "bayer-4x4"
	Bayer8x8 Algorithm = "bayer-8x8"
	// Clustered4x4 thresholds against a clustered-dot matrix for a
	// halftone look.
	Clustered4x4 Algorithm = "clustered-4x4"
)

var (
	bayer2 = Bayer(2)
	bayer4 = Bayer(4)
	bayer8 = Bayer(8)
)

// Algorithms returns every recognized algorithm name in sorted order.
func Algorithms() []Algorithm {
	algs := []Algorithm{
		None,
		FloydSteinberg,
		Atkinson,
		Ordered,
		Bayer2x2,
		Bayer4x4,
		Bayer8x8,
		Clustered4x4,
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })
	return algs
}

// Apply runs the named algorithm over buf and returns it. The buffer is
// modified in place. Strength scales the dither effect and is expected to be
// within [0, 1]; None ignores it, and zero degrades every other algorithm to
// plain quantization. An empty Algorithm is treated as None.
func Apply(alg Algorithm, buf *pixel.Buffer, pal palette.Palette, strength float64) (*pixel.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if len(pal) == 0 {
		return nil, palette.ErrEmpty
	}

	switch alg {
	case None, "":
		flat(buf, pal)
	case FloydSteinberg:
		diffuse(buf, pal, floydSteinberg, strength)
	case Atkinson:
		diffuse(buf, pal, atkinson, strength)
	case Ordered, Bayer4x4:
		ordered(buf, pal, bayer4, strength)
	case Bayer2x2:
		ordered(buf, pal, bayer2, strength)
	case Bayer8x8:
		ordered(buf, pal, bayer8, strength)
	case Clustered4x4:
		ordered(buf, pal, ClusteredDot4x4, strength)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
	}

	return buf, nil
}

// flat replaces every pixel with its nearest palette color. It is both the
// "none" algorithm and the degenerate case of all the others.
func flat(buf *pixel.Buffer, pal palette.Palette) {
	for o := 0; o < len(buf.Pix); o += 4 {
		q := pal[pal.NearestIndex(pixel.Color{R: buf.Pix[o], G: buf.Pix[o+1], B: buf.Pix[o+2]})]
		buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2] = q.R, q.G, q.B
	}
}

func clamp(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
