package ansiart

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFromImageDimensions(t *testing.T) {
	art := FromImage(solid(10, 10, color.RGBA{255, 0, 0, 255}), 4, 3)
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "▀▀▀▀", Strip(line))
	}
	assert.Contains(t, art, "\x1b[38;2;255;0;0m")
}

func TestFromFileCaches(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "card.png")
	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(8, 8, color.White)))
	require.NoError(t, f.Close())

	cacheDir := filepath.Join(dir, "ansi")
	first, err := FromFile(imgPath, cacheDir, 2, 2)
	require.NoError(t, err)

	// The cached art is served even after the source image is gone.
	require.NoError(t, os.Remove(imgPath))
	second, err := FromFile(imgPath, cacheDir, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = FromFile(imgPath, cacheDir, 3, 3)
	assert.ErrorContains(t, err, "failed to open image")
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "ab", Strip("\x1b[31ma\x1b[0mb"))
}
