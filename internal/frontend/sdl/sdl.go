// Package sdl implements a windowed frontend based on SDL2.
package sdl

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"
)

func init() {
	// SDL video calls have to be made from the main thread.
	runtime.LockOSThread()
}

// Frontend renders the display into an SDL window and translates keyboard
// events into keypad transitions.
type Frontend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// New initializes SDL and opens a window sized for the display at the given
// scale.
func New(title string, scale int) (*Frontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(chip8.DisplayWidth*scale), int32(chip8.DisplayHeight*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &Frontend{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
	}, nil
}

// Poll drains the SDL event queue. Closing the window or pressing escape
// requests to quit.
func (f *Frontend) Poll() ([]keymap.KeyEvent, bool) {
	var events []keymap.KeyEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return events, true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return events, true
			}

			key, ok := keymap.Lookup(rune(ev.Keysym.Sym))
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				events = append(events, keymap.KeyEvent{Key: key, Pressed: true})
			case sdl.KEYUP:
				events = append(events, keymap.KeyEvent{Key: key, Pressed: false})
			}
		}
	}
	return events, false
}

// Render draws every lit pixel as a filled rectangle.
func (f *Frontend) Render(fb *chip8.Framebuffer) error {
	if err := f.setColor(colornames.Black); err != nil {
		return err
	}
	if err := f.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := f.setColor(colornames.White); err != nil {
		return err
	}

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if !fb.Pixel(x, y) {
				continue
			}
			rect := &sdl.Rect{
				X: int32(x) * f.scale,
				Y: int32(y) * f.scale,
				W: f.scale,
				H: f.scale,
			}
			if err := f.renderer.FillRect(rect); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}

	f.renderer.Present()
	return nil
}

func (f *Frontend) setColor(c color.RGBA) error {
	if err := f.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	return nil
}

// Close releases the renderer and window and shuts down SDL.
func (f *Frontend) Close() error {
	var errs []error
	if err := f.renderer.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("destroying renderer: %w", err))
	}
	if err := f.window.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("destroying window: %w", err))
	}
	sdl.Quit()
	return errors.Join(errs...)
}
