/*
Package pixel implements the RGBA pixel buffer passed between the stages of
the pixelation pipeline.

A buffer is a rectangular grid of width by height samples with four bytes per
sample in R, G, B, A order, so a valid buffer always holds exactly
width * height * 4 bytes. Every stage either mutates the buffer it was given
or returns a fresh one; callers must not assume the two alias.
*/
package pixel

import "image/color"

// Color is an opaque RGB color. The alpha channel of a buffer is carried
// through the pipeline untouched so it is not part of the color value.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// DistanceSquared returns the squared Euclidean distance between two colors.
// Only the relative ordering matters to the callers, so the square root is
// never taken.
func DistanceSquared(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
