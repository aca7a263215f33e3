package pixel

import (
	"errors"
	"image"
	"image/draw"
)

// ErrDimensionMismatch is returned when the length of a buffer disagrees
// with its declared dimensions.
var ErrDimensionMismatch = errors.New("pixel: buffer length does not match dimensions")

// Buffer is a width by height grid of interleaved RGBA samples.
type Buffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// New returns a zeroed buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Wrap adopts pix as a buffer of the given dimensions without copying.
func Wrap(pix []uint8, width, height int) (*Buffer, error) {
	b := &Buffer{
		Pix:    pix,
		Width:  width,
		Height: height,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the buffer invariant, returning ErrDimensionMismatch if
// the dimensions are not positive or the pixel data has the wrong length.
func (b *Buffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || len(b.Pix) != b.Width*b.Height*4 {
		return ErrDimensionMismatch
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{
		Pix:    pix,
		Width:  b.Width,
		Height: b.Height,
	}
}

// Image returns an image.RGBA sharing the buffer's pixel data.
func (b *Buffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage copies m into a new buffer with the top-left corner at (0, 0).
func FromImage(m image.Image) *Buffer {
	r := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), m, r.Min, draw.Src)
	return &Buffer{
		Pix:    dst.Pix,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}
