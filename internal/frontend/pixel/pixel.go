// Package pixel implements a windowed frontend based on the pixel game library.
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/image/colornames"
)

// buttons maps the characters of the keypad layout to window buttons.
var buttons = map[rune]pixelgl.Button{
	'1': pixelgl.Key1, '2': pixelgl.Key2, '3': pixelgl.Key3, '4': pixelgl.Key4,
	'q': pixelgl.KeyQ, 'w': pixelgl.KeyW, 'e': pixelgl.KeyE, 'r': pixelgl.KeyR,
	'a': pixelgl.KeyA, 's': pixelgl.KeyS, 'd': pixelgl.KeyD, 'f': pixelgl.KeyF,
	'z': pixelgl.KeyZ, 'x': pixelgl.KeyX, 'c': pixelgl.KeyC, 'v': pixelgl.KeyV,
}

// Main runs fn with the window system initialized. It has to be called from
// the main goroutine and only returns after fn returned.
func Main(fn func()) {
	pixelgl.Run(fn)
}

// Frontend renders the display into a window and reads the keypad state from
// the keyboard.
type Frontend struct {
	win     *pixelgl.Window
	imd     *imdraw.IMDraw
	scale   float64
	tracker *keymap.Tracker
	keys    map[pixelgl.Button]chip8.Key
}

// New opens a window sized for the display at the given scale. It must be
// called from within the function passed to Main.
func New(title string, scale int) (*Frontend, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(chip8.DisplayWidth*scale), float64(chip8.DisplayHeight*scale)),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	keys := make(map[pixelgl.Button]chip8.Key, len(keymap.Layout))
	for r, key := range keymap.Layout {
		keys[buttons[r]] = key
	}

	return &Frontend{
		win:     win,
		imd:     imdraw.New(nil),
		scale:   float64(scale),
		tracker: keymap.NewTracker(),
		keys:    keys,
	}, nil
}

// Poll samples the keypad keys and reports a quit request when the window was
// closed or escape was pressed.
func (f *Frontend) Poll() ([]keymap.KeyEvent, bool) {
	if f.win.Closed() || f.win.JustPressed(pixelgl.KeyEscape) {
		return nil, true
	}

	pressed := set.New[chip8.Key]()
	for button, key := range f.keys {
		if f.win.Pressed(button) {
			pressed.Add(key)
		}
	}
	return f.tracker.Update(pressed), false
}

// Render draws every lit pixel as a rectangle. The window origin is the
// bottom left corner, so rows are flipped.
func (f *Frontend) Render(fb *chip8.Framebuffer) error {
	f.win.Clear(colornames.Black)
	f.imd.Clear()
	f.imd.Color = colornames.White

	for y := range chip8.DisplayHeight {
		row := float64(chip8.DisplayHeight - 1 - y)
		for x := range chip8.DisplayWidth {
			if !fb.Pixel(x, y) {
				continue
			}
			f.imd.Push(
				pixel.V(float64(x)*f.scale, row*f.scale),
				pixel.V(float64(x+1)*f.scale, (row+1)*f.scale),
			)
			f.imd.Rectangle(0)
		}
	}

	f.imd.Draw(f.win)
	f.win.Update()
	return nil
}

// Close destroys the window.
func (f *Frontend) Close() error {
	f.win.Destroy()
	return nil
}
