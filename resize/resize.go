/*
Package resize scales pixel buffers between the source resolution and the
pixel grid.
*/
package resize

import (
	"image"
	"math"

	"github.com/bodgit/pixelate/pixel"
	xdraw "golang.org/x/image/draw"
)

// Filter selects the interpolation used by Scale.
type Filter struct {
	scaler xdraw.Scaler
}

var (
	// NearestNeighbor copies the closest source pixel. Upscaling a
	// quantized grid with it keeps the pixel edges hard.
	NearestNeighbor = Filter{xdraw.NearestNeighbor}
	// Bilinear interpolates linearly between source pixels, the usual
	// choice when shrinking to the grid.
	Bilinear = Filter{xdraw.BiLinear}
	// CatmullRom is a sharper, more expensive alternative for shrinking.
	CatmullRom = Filter{xdraw.CatmullRom}
)

// TargetHeight returns the grid height that preserves the source aspect
// ratio at the given grid width, never less than one row.
func TargetHeight(srcWidth, srcHeight, width int) int {
	h := int(math.Round(float64(width) * float64(srcHeight) / float64(srcWidth)))
	if h < 1 {
		h = 1
	}
	return h
}

// Scale resizes the buffer to width by height with the given filter. The
// input buffer is returned as is when it already has the requested
// dimensions.
func Scale(b *pixel.Buffer, width, height int, f Filter) *pixel.Buffer {
	if width == b.Width && height == b.Height {
		return b
	}

	src := b.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	f.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return &pixel.Buffer{
		Pix:    dst.Pix,
		Width:  width,
		Height: height,
	}
}
