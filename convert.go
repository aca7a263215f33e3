package pixelate

import (
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/pixelate/dither"
	"github.com/bodgit/pixelate/palette"
	"github.com/bodgit/pixelate/pixel"
	"github.com/bodgit/pixelate/resize"
)

var ErrInvalidConfig = errors.New("pixelate: invalid configuration")

const (
	MinTargetWidth = 2
	MaxTargetWidth = 4096
)

type OutputMode int

const (
	OutputGrid OutputMode = iota
	OutputOriginal
)

type Config struct {
	TargetWidth int
	Algorithm   dither.Algorithm
	Strength    float64
	// A nil palette skips quantization entirely, pixelating without
	// recoloring
	Palette    palette.Palette
	OutputMode OutputMode
}

func (c Config) Validate() error {
	if c.TargetWidth < MinTargetWidth || c.TargetWidth > MaxTargetWidth {
		return fmt.Errorf("%w: target width %d not within [%d, %d]", ErrInvalidConfig, c.TargetWidth, MinTargetWidth, MaxTargetWidth)
	}
	if c.Strength < 0 || c.Strength > 1 {
		return fmt.Errorf("%w: strength %v not within [0, 1]", ErrInvalidConfig, c.Strength)
	}
	switch c.OutputMode {
	case OutputGrid, OutputOriginal:
	default:
		return fmt.Errorf("%w: unknown output mode %d", ErrInvalidConfig, c.OutputMode)
	}
	return nil
}

// Convert takes ownership of buf; the returned buffer may alias it
func Convert(buf *pixel.Buffer, cfg Config) (*pixel.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	srcWidth, srcHeight := buf.Width, buf.Height

	out := resize.Scale(buf, cfg.TargetWidth, resize.TargetHeight(srcWidth, srcHeight, cfg.TargetWidth), resize.Bilinear)

	if cfg.Palette != nil {
		var err error
		if out, err = dither.Apply(cfg.Algorithm, out, cfg.Palette, cfg.Strength); err != nil {
			return nil, err
		}
	}

	if cfg.OutputMode == OutputOriginal {
		out = resize.Scale(out, srcWidth, srcHeight, resize.NearestNeighbor)
	}

	return out, nil
}

func ConvertImage(m image.Image, cfg Config) (image.Image, error) {
	out, err := Convert(pixel.FromImage(m), cfg)
	if err != nil {
		return nil, err
	}
	return out.Image(), nil
}
