package pixelate

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/pixelate/dither"
)

func (c Config) fingerprint() string {
	alg := c.Algorithm
	if alg == "" {
		alg = dither.None
	}

	pal := "none"
	if c.Palette != nil {
		if b, err := c.Palette.MarshalBinary(); err == nil {
			pal = fmt.Sprintf("%X", sha1.Sum(b))
		}
	}

	return fmt.Sprintf("w%d/%s/s%.3f/%s/m%d", c.TargetWidth, alg, c.Strength, pal, c.OutputMode)
}

func (p *Pixelate) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			// Ignore any file greater than 64 MB
			if info.Size() > 64<<(10*2) {
				return nil
			}

			switch strings.ToLower(filepath.Ext(file)) {
			case ".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp":
			default:
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (p *Pixelate) imageWorker(ctx context.Context, src, dst, settings string, cfg Config, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			rel, err := filepath.Rel(src, file)
			if err != nil {
				errc <- err
				return
			}

			// Sources already named .png keep their relative path, anything
			// else has .png appended; same-stem sources never share an output.
			name := rel
			if !strings.EqualFold(filepath.Ext(rel), ".png") {
				name += ".png"
			}
			output := filepath.Join(dst, name)

			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			prev, err := p.db.findConversion(crc, settings)
			if err != nil {
				errc <- err
				return
			}
			if prev == output {
				if _, err := os.Stat(output); err == nil {
					p.logger.Debug("unchanged", "source", file)
					continue
				}
			}

			m, err := loadImage(file)
			if err != nil {
				errc <- err
				return
			}

			converted, err := ConvertImage(m, cfg)
			if err != nil {
				errc <- err
				return
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				errc <- err
				return
			}

			if err := saveImage(output, converted); err != nil {
				errc <- err
				return
			}

			if err := p.db.addConversion(crc, settings, output); err != nil {
				errc <- err
				return
			}

			p.logger.Info("converted", "source", file, "output", output)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (p *Pixelate) Scan(src, dst string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	dst, err = filepath.Abs(dst)
	if err != nil {
		return err
	}

	settings := cfg.fingerprint()

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := p.findImages(ctx, src)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := p.imageWorker(ctx, src, dst, settings, cfg, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
