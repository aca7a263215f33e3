package dither

import (
	"github.com/bodgit/pixelate/palette"
	"github.com/bodgit/pixelate/pixel"
)

// A tap receives a share of a pixel's quantization error. Taps only ever
// point at pixels later in the raster scan.
type tap struct {
	dx, dy int
	weight float64
}

var (
	floydSteinberg = []tap{
		{1, 0, 7.0 / 16},
		{-1, 1, 3.0 / 16},
		{0, 1, 5.0 / 16},
		{1, 1, 1.0 / 16},
	}

	// Six taps of an eighth each; the remaining quarter of the error is
	// dropped.
	atkinson = []tap{
		{1, 0, 1.0 / 8},
		{2, 0, 1.0 / 8},
		{-1, 1, 1.0 / 8},
		{0, 1, 1.0 / 8},
		{1, 1, 1.0 / 8},
		{0, 2, 1.0 / 8},
	}
)

// diffuse scans the buffer in raster order, row-major, left to right and top
// to bottom. Each pixel is quantized after adding the error accumulated at
// its position, then the remaining error, scaled by strength, is spread
// forward through the taps. Error aimed outside the buffer is discarded, not
// wrapped or clamped, so the right and bottom edges absorb slightly less.
func diffuse(buf *pixel.Buffer, pal palette.Palette, taps []tap, strength float64) {
	w, h := buf.Width, buf.Height
	acc := make([]float64, w*h*3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := (y*w + x) * 4
			e := (y*w + x) * 3

			or := float64(buf.Pix[o]) + acc[e]
			og := float64(buf.Pix[o+1]) + acc[e+1]
			ob := float64(buf.Pix[o+2]) + acc[e+2]

			q := pal[pal.NearestIndex(pixel.Color{R: clamp(or), G: clamp(og), B: clamp(ob)})]
			buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2] = q.R, q.G, q.B

			er := (or - float64(q.R)) * strength
			eg := (og - float64(q.G)) * strength
			eb := (ob - float64(q.B)) * strength

			for _, t := range taps {
				tx, ty := x+t.dx, y+t.dy
				if tx < 0 || tx >= w || ty >= h {
					continue
				}
				a := (ty*w + tx) * 3
				acc[a] += er * t.weight
				acc[a+1] += eg * t.weight
				acc[a+2] += eb * t.weight
			}
		}
	}
}
