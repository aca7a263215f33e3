package pixelate

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/pixelate/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, file string, c color.RGBA, width, height int) {
	t.Helper()

	m := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetRGBA(x, y, c)
		}
	}

	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())
}

func writeJPEG(t *testing.T, file string, c color.RGBA, width, height int) {
	t.Helper()

	m := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetRGBA(x, y, c)
		}
	}

	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, m, nil))
	require.NoError(t, f.Close())
}

func TestPaletteResolution(t *testing.T) {
	m := New(newTestDB(t), discardLogger())

	// Builtins resolve without any database entry
	mono, err := m.Palette("mono")
	require.NoError(t, err)
	assert.Len(t, mono, 2)

	// A stored palette shadows the builtin of the same name
	custom := palette.Palette{{R: 10, G: 20, B: 30}}
	require.NoError(t, m.db.PutPalette("mono", custom))

	got, err := m.Palette("mono")
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	_, err = m.Palette("nothing")
	assert.ErrorContains(t, err, "unknown palette")
}

func TestPalettesMerged(t *testing.T) {
	m := New(newTestDB(t), discardLogger())

	require.NoError(t, m.db.PutPalette("zzz", palette.Palette{{R: 1}}))
	require.NoError(t, m.db.PutPalette("mono", palette.Palette{{R: 1}}))

	names, err := m.Palettes()
	require.NoError(t, err)
	assert.Equal(t, []string{"cga", "gameboy", "mono", "pico-8", "sweetie-16", "zzz"}, names)
}

func TestImportPalette(t *testing.T) {
	m := New(newTestDB(t), discardLogger())

	file := filepath.Join(t.TempDir(), "ocean.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"colors": ["#001122", "#334455"]}`), 0o644))

	name, err := m.ImportPalette(file)
	require.NoError(t, err)
	assert.Equal(t, "ocean", name)

	got, err := m.Palette("ocean")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFile(t *testing.T) {
	m := New(newTestDB(t), discardLogger())

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writePNG(t, src, color.RGBA{220, 220, 220, 255}, 32, 32)

	mono, ok := palette.Builtin("mono")
	require.True(t, ok)

	require.NoError(t, m.File(src, dst, Config{TargetWidth: 8, Palette: mono}))

	out, err := loadImage(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), out.Bounds())

	r, g, b, _ := out.At(4, 4).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestFileUnsupportedOutput(t *testing.T) {
	m := New(newTestDB(t), discardLogger())

	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, color.RGBA{A: 255}, 8, 8)

	err := m.File(src, filepath.Join(dir, "out.xcf"), Config{TargetWidth: 4})
	assert.ErrorContains(t, err, "unsupported output format")
}
