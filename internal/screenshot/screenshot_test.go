package screenshot

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func testFramebuffer() *chip8.Framebuffer {
	var fb chip8.Framebuffer
	fb[0] = true
	fb[chip8.DisplayWidth*chip8.DisplayHeight-1] = true
	return &fb
}

func TestRender(t *testing.T) {
	img, err := Render(testFramebuffer(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 64*3, img.Bounds().Dx())
	assert.Equal(t, 32*3, img.Bounds().Dy())

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 1},
		{2, 2, 1},
		{3, 0, 0},
		{0, 3, 0},
		{191, 95, 1},
		{189, 93, 1},
		{188, 95, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, img.ColorIndexAt(tt.x, tt.y))
	}
}

func TestRender_InvalidScale(t *testing.T) {
	_, err := Render(testFramebuffer(), 0)
	assert.ErrorContains(t, err, "invalid scale")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WritePNG(&buf, testFramebuffer(), 2))

	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	r, _, _, _ = img.At(2, 0).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	assert.NoError(t, SaveFile(path, testFramebuffer(), 1))

	err := SaveFile(filepath.Join(t.TempDir(), "missing", "frame.png"), testFramebuffer(), 1)
	assert.Error(t, err)
}
