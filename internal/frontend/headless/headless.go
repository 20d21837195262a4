// Package headless implements a frontend without any window or input, used for
// automated runs and screenshots.
package headless

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrogolib/log"
)

// Frontend keeps the most recent frame in memory.
type Frontend struct {
	logger *log.Logger
	path   string
	scale  int

	frames int
	last   chip8.Framebuffer
}

// New returns a headless frontend. If path is set, the last rendered
// frame is written as PNG to that path on Close.
func New(logger *log.Logger, path string, scale int) *Frontend {
	return &Frontend{
		logger: logger,
		path:   path,
		scale:  scale,
	}
}

// Poll never reports key events or quit requests.
func (f *Frontend) Poll() ([]keymap.KeyEvent, bool) {
	return nil, false
}

// Render stores a copy of the framebuffer.
func (f *Frontend) Render(fb *chip8.Framebuffer) error {
	f.last = *fb
	f.frames++
	return nil
}

// Frames returns the number of rendered frames.
func (f *Frontend) Frames() int {
	return f.frames
}

// LastFrame returns the most recently rendered framebuffer.
func (f *Frontend) LastFrame() chip8.Framebuffer {
	return f.last
}

// Close writes the screenshot if one was requested.
func (f *Frontend) Close() error {
	if f.path == "" {
		return nil
	}
	if err := screenshot.SaveFile(f.path, &f.last, f.scale); err != nil {
		return fmt.Errorf("writing screenshot: %w", err)
	}
	f.logger.Info("Screenshot written",
		log.String("file", f.path),
		log.Int("frames", f.frames))
	return nil
}
