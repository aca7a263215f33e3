/*
Package pixelate converts images into reduced-palette, dithered pixel art.
*/
package pixelate

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bodgit/pixelate/palette"
)

type Pixelate struct {
	db     *DB
	logger *slog.Logger
}

func New(db *DB, logger *slog.Logger) *Pixelate {
	return &Pixelate{
		db:     db,
		logger: logger,
	}
}

func (p *Pixelate) Close() error {
	return p.db.Close()
}

// Stored palettes take precedence over the builtins
func (p *Pixelate) Palette(name string) (palette.Palette, error) {
	pal, err := p.db.Palette(name)
	if err != nil {
		return nil, err
	}
	if pal != nil {
		return pal, nil
	}
	if pal, ok := palette.Builtin(name); ok {
		return pal, nil
	}
	return nil, fmt.Errorf("pixelate: unknown palette %q", name)
}

func (p *Pixelate) Palettes() ([]string, error) {
	names, err := p.db.Palettes()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	for _, name := range palette.Names() {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}

func (p *Pixelate) ImportPalette(file string) (string, error) {
	return p.db.ImportJSON(file)
}

func (p *Pixelate) File(src, dst string, cfg Config) error {
	m, err := loadImage(src)
	if err != nil {
		return err
	}

	out, err := ConvertImage(m, cfg)
	if err != nil {
		return err
	}

	if err := saveImage(dst, out); err != nil {
		return err
	}

	p.logger.Info("converted", "source", src, "output", dst)

	return nil
}
