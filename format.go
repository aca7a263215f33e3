package pixelate

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type format int

const (
	formatPNG format = iota + 1
	formatGIF
	formatJPEG
	formatBMP
)

var formats = map[string]format{
	".png":  formatPNG,
	".gif":  formatGIF,
	".jpg":  formatJPEG,
	".jpeg": formatJPEG,
	".bmp":  formatBMP,
}

func formatForPath(path string) (format, bool) {
	f, ok := formats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

func (f format) encode(w io.Writer, m image.Image) error {
	switch f {
	case formatGIF:
		return gif.Encode(w, m, &gif.Options{NumColors: 256})
	case formatJPEG:
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	case formatBMP:
		return bmp.Encode(w, m)
	default:
		return png.Encode(w, m)
	}
}

func loadImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func saveImage(file string, m image.Image) error {
	f, ok := formatForPath(file)
	if !ok {
		return fmt.Errorf("pixelate: unsupported output format %q", filepath.Ext(file))
	}

	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	return f.encode(w, m)
}
