package ansiart

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default card art size in terminal cells
const (
	DefaultWidth  = 24
	DefaultHeight = 20
)

// FromFile returns ANSI art for the image at imagePath. The result is cached
// in cacheDir so later calls skip decoding and resizing.
func FromFile(imagePath, cacheDir string, width, height int) (string, error) {
	cachePath := filepath.Join(cacheDir,
		fmt.Sprintf("%x-%dx%d.ansi", md5.Sum([]byte(imagePath)), width, height))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	art, err := generate(imagePath, width, height)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
	}
	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %v", err)
	}
	return art, nil
}

func generate(imagePath string, width, height int) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	return FromImage(img, width, height), nil
}

// FromImage converts an image to truecolor half-block ANSI art
func FromImage(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(colorAt(resized, x, y))
			col2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := toRGBA(average(col1, col2))
			bg := toRGBA(average(col3, col4))

			buffer.WriteString(cell('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// colorAt returns the color at a specific coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func cell(char rune, fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
