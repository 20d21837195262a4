// Package screenshot renders the CHIP-8 framebuffer into images.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/image/colornames"
)

// Palette contains the colors for pixels that are off and on.
var Palette = color.Palette{colornames.Black, colornames.White}

// Render draws the framebuffer as an image with every pixel scaled to a
// scale x scale square.
func Render(fb *chip8.Framebuffer, scale int) (*image.Paletted, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	bounds := image.Rect(0, 0, chip8.DisplayWidth*scale, chip8.DisplayHeight*scale)
	img := image.NewPaletted(bounds, Palette)
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if !fb.Pixel(x, y) {
				continue
			}
			fill(img, x*scale, y*scale, scale)
		}
	}
	return img, nil
}

func fill(img *image.Paletted, x0, y0, size int) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
}

// WritePNG renders the framebuffer and encodes it as PNG.
func WritePNG(w io.Writer, fb *chip8.Framebuffer, scale int) error {
	img, err := Render(fb, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SaveFile renders the framebuffer into a PNG file.
func SaveFile(path string, fb *chip8.Framebuffer, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", path, err)
	}

	if err := WritePNG(file, fb, scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", path, err)
	}
	return nil
}
