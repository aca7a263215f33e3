/*
Package palette implements the ordered color palettes the pipeline quantizes
against, along with the formats they are stored and exchanged in.

A palette is read-only once constructed; it may be shared freely between
concurrent pipeline runs. Entry order matters: nearest-color ties resolve to
the earliest entry, so two palettes with the same colors in a different order
are not interchangeable.
*/
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bodgit/pixelate/pixel"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrEmpty is returned when a palette with no colors is used where at least
// one color is required.
var ErrEmpty = errors.New("palette: no colors")

// Palette is an ordered list of colors.
type Palette []pixel.Color

// NearestIndex returns the index of the palette entry with the smallest
// squared distance to c, or -1 if the palette is empty. Ties resolve to the
// lowest index.
func (p Palette) NearestIndex(c pixel.Color) int {
	best, bestDist := -1, 0
	for i, q := range p {
		if d := pixel.DistanceSquared(c, q); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Nearest returns the palette entry closest to c. It fails with ErrEmpty if
// the palette has no colors.
func (p Palette) Nearest(c pixel.Color) (pixel.Color, error) {
	i := p.NearestIndex(c)
	if i < 0 {
		return pixel.Color{}, ErrEmpty
	}
	return p[i], nil
}

// Parse builds a palette from hex color strings such as "#1a1c2c". The
// leading "#" is optional and surrounding whitespace is ignored.
func Parse(colors ...string) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmpty
	}
	p := make(Palette, 0, len(colors))
	for _, s := range colors {
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		r, g, b := c.RGB255()
		p = append(p, pixel.Color{R: r, G: g, B: b})
	}
	return p, nil
}

// MarshalBinary encodes the palette as three bytes per color in palette
// order. It implements the encoding.BinaryMarshaler interface.
func (p Palette) MarshalBinary() ([]byte, error) {
	if len(p) == 0 {
		return nil, ErrEmpty
	}
	b := make([]byte, 0, len(p)*3)
	for _, c := range p {
		b = append(b, c.R, c.G, c.B)
	}
	return b, nil
}

// UnmarshalBinary decodes a palette previously encoded with MarshalBinary.
// It implements the encoding.BinaryUnmarshaler interface.
func (p *Palette) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return ErrEmpty
	}
	if len(b)%3 != 0 {
		return errors.New("palette: truncated color data")
	}
	q := make(Palette, 0, len(b)/3)
	for i := 0; i < len(b); i += 3 {
		q = append(q, pixel.Color{R: b[i], G: b[i+1], B: b[i+2]})
	}
	*p = q
	return nil
}
