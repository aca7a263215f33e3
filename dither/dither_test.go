package dither

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/bodgit/pixelate/palette"
	"github.com/bodgit/pixelate/pixel"
)

var mono = palette.Palette{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}

func uniform(w, h int, c pixel.Color, a uint8) *pixel.Buffer {
	b := pixel.New(w, h)
	for o := 0; o < len(b.Pix); o += 4 {
		b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3] = c.R, c.G, c.B, a
	}
	return b
}

// grayColumn builds a one pixel wide buffer with the given gray rows.
func grayColumn(values ...uint8) *pixel.Buffer {
	b := pixel.New(1, len(values))
	for i, v := range values {
		o := i * 4
		b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3] = v, v, v, 255
	}
	return b
}

func flipRows(b *pixel.Buffer) *pixel.Buffer {
	out := pixel.New(b.Width, b.Height)
	stride := b.Width * 4
	for y := 0; y < b.Height; y++ {
		copy(out.Pix[y*stride:(y+1)*stride], b.Pix[(b.Height-1-y)*stride:])
	}
	return out
}

func grays(b *pixel.Buffer) []uint8 {
	var v []uint8
	for o := 0; o < len(b.Pix); o += 4 {
		v = append(v, b.Pix[o])
	}
	return v
}

func TestApplyFlat(t *testing.T) {
	// (200,100,50) is 52500 away from black but 69075 from white.
	out, err := Apply(None, uniform(4, 4, pixel.Color{R: 200, G: 100, B: 50}, 255), mono, 0)
	if err != nil {
		t.Fatal(err)
	}

	for o := 0; o < len(out.Pix); o += 4 {
		if out.Pix[o] != 0 || out.Pix[o+1] != 0 || out.Pix[o+2] != 0 || out.Pix[o+3] != 255 {
			t.Fatalf("pixel %d: got %v, want {0 0 0 255}", o/4, out.Pix[o:o+4])
		}
	}
}

func TestFlatIdempotent(t *testing.T) {
	b := grayColumn(10, 60, 110, 160, 210)

	once, err := Apply(None, b.Clone(), mono, 0)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Apply(None, once.Clone(), mono, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("flat quantization is not idempotent")
	}
}

func TestApplyErrors(t *testing.T) {
	valid := uniform(2, 2, pixel.Color{}, 255)

	tests := []struct {
		name     string
		alg      Algorithm
		buf      *pixel.Buffer
		palette  palette.Palette
		sentinel error
	}{
		{
			"dimension mismatch",
			None,
			&pixel.Buffer{Pix: make([]uint8, 10), Width: 2, Height: 2},
			mono,
			pixel.ErrDimensionMismatch,
		},
		{"empty palette", None, valid, palette.Palette{}, palette.ErrEmpty},
		{"unknown algorithm", Algorithm("swirl"), valid, mono, ErrUnknownAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Apply(tt.alg, tt.buf, tt.palette, 1); !errors.Is(err, tt.sentinel) {
				t.Errorf("got %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestStrengthZero(t *testing.T) {
	src := grayColumn(10, 60, 110, 160, 210)

	want, err := Apply(None, src.Clone(), mono, 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, alg := range []Algorithm{FloydSteinberg, Atkinson, Ordered, Bayer2x2, Bayer8x8, Clustered4x4} {
		got, err := Apply(alg, src.Clone(), mono, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Errorf("%s at strength 0 differs from flat quantization", alg)
		}
	}
}

func TestSinglePixel(t *testing.T) {
	// With no valid neighbor every diffusion target is dropped, so a 1x1
	// buffer must come out exactly as flat quantization.
	want, err := Apply(None, uniform(1, 1, pixel.Color{R: 99, G: 150, B: 200}, 128), mono, 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, alg := range []Algorithm{FloydSteinberg, Atkinson} {
		got, err := Apply(alg, uniform(1, 1, pixel.Color{R: 99, G: 150, B: 200}, 128), mono, 1)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Errorf("%s on a single pixel differs from flat quantization", alg)
		}
	}
}

func TestFloydSteinbergRow(t *testing.T) {
	// Gray 100 quantizes to black with error 100; 7/16 of it pushes the
	// next pixel to 143.75 which flips to white, and the white's negative
	// error pulls the third back under the midpoint.
	b := pixel.New(3, 1)
	for o := 0; o < len(b.Pix); o += 4 {
		b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3] = 100, 100, 100, 255
	}

	out, err := Apply(FloydSteinberg, b, mono, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := grays(out), []uint8{0, 255, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAtkinsonRow(t *testing.T) {
	// Atkinson only moves an eighth per tap, so the same input never
	// accumulates enough error to flip and stays black throughout.
	b := pixel.New(3, 1)
	for o := 0; o < len(b.Pix); o += 4 {
		b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3] = 100, 100, 100, 255
	}

	out, err := Apply(Atkinson, b, mono, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := grays(out), []uint8{0, 0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderedBayer2x2(t *testing.T) {
	// Mid gray against the 2x2 thresholds 31.875, 159.375, 223.125 and
	// 95.625 lands on a checkerboard.
	out, err := Apply(Bayer2x2, uniform(2, 2, pixel.Color{R: 128, G: 128, B: 128}, 255), mono, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := grays(out), []uint8{0, 255, 255, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderedDeterministic(t *testing.T) {
	src := uniform(8, 8, pixel.Color{R: 90, G: 160, B: 40}, 255)

	first, err := Apply(Ordered, src.Clone(), mono, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Apply(Ordered, src.Clone(), mono, 0.7)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("ordered dithering is not deterministic")
	}
}

func TestDiffusionScanOrderDependent(t *testing.T) {
	// Quantizing top-down pushes error into later rows, so running the
	// same image upside down cannot produce the mirrored result.
	src := grayColumn(120, 70)

	for _, alg := range []Algorithm{FloydSteinberg, Atkinson} {
		t.Run(string(alg), func(t *testing.T) {
			forward, err := Apply(alg, src.Clone(), mono, 1)
			if err != nil {
				t.Fatal(err)
			}
			reversed, err := Apply(alg, flipRows(src), mono, 1)
			if err != nil {
				t.Fatal(err)
			}

			if bytes.Equal(forward.Pix, flipRows(reversed).Pix) {
				t.Error("output is independent of scan order")
			}
		})
	}
}

func TestAlphaPassthrough(t *testing.T) {
	alphas := []uint8{0, 63, 127, 255}

	for _, alg := range []Algorithm{None, FloydSteinberg, Atkinson, Ordered, Bayer2x2, Bayer4x4, Bayer8x8, Clustered4x4} {
		b := pixel.New(2, 2)
		for i, a := range alphas {
			o := i * 4
			b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3] = 200, 31, 90, a
		}

		out, err := Apply(alg, b, mono, 1)
		if err != nil {
			t.Fatal(err)
		}
		for i, a := range alphas {
			if got := out.Pix[i*4+3]; got != a {
				t.Errorf("%s: alpha %d: got %d, want %d", alg, i, got, a)
			}
		}
	}
}
