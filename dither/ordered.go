package dither

import (
	"github.com/bodgit/pixelate/palette"
	"github.com/bodgit/pixelate/pixel"
)

// ordered perturbs each pixel by its matrix threshold before quantizing.
// Every pixel depends only on its own input and the shared matrix, so the
// result is independent of processing order.
func ordered(buf *pixel.Buffer, pal palette.Palette, m Matrix, strength float64) {
	w := buf.Width
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < w; x++ {
			o := (y*w + x) * 4

			// 127.5 is the midpoint of the threshold range, centering
			// the perturbation on zero.
			d := (m.Threshold(x, y) - 127.5) * strength

			q := pal[pal.NearestIndex(pixel.Color{
				R: clamp(float64(buf.Pix[o]) + d),
				G: clamp(float64(buf.Pix[o+1]) + d),
				B: clamp(float64(buf.Pix[o+2]) + d),
			})]
			buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2] = q.R, q.G, q.B
		}
	}
}
