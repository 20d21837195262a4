// Package keymap maps host keyboard keys to the CHIP-8 keypad and converts polled
// key states into press and release transitions.
package keymap

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

// Layout maps the left hand block of a QWERTY keyboard to the keypad, keeping
// the physical arrangement of the COSMAC VIP hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var Layout = map[rune]chip8.Key{
	'1': chip8.Key1, '2': chip8.Key2, '3': chip8.Key3, '4': chip8.KeyC,
	'q': chip8.Key4, 'w': chip8.Key5, 'e': chip8.Key6, 'r': chip8.KeyD,
	'a': chip8.Key7, 's': chip8.Key8, 'd': chip8.Key9, 'f': chip8.KeyE,
	'z': chip8.KeyA, 'x': chip8.Key0, 'c': chip8.KeyB, 'v': chip8.KeyF,
}

// Lookup returns the keypad key for a host key character, case insensitive.
func Lookup(r rune) (chip8.Key, bool) {
	key, ok := Layout[unicode.ToLower(r)]
	return key, ok
}

// KeyEvent is a keypad key transition.
type KeyEvent struct {
	Key     chip8.Key
	Pressed bool
}

// Tracker converts sampled keypad states into transitions, for frontends that
// can only poll whether a key is currently held down.
type Tracker struct {
	pressed set.Set[chip8.Key]
}

// NewTracker returns a tracker with all keys released.
func NewTracker() *Tracker {
	return &Tracker{
		pressed: set.New[chip8.Key](),
	}
}

// Update takes the set of currently held keys and returns the transitions since
// the previous update, ordered by key index.
func (t *Tracker) Update(pressed set.Set[chip8.Key]) []KeyEvent {
	var events []KeyEvent
	for key := chip8.Key0; key.Valid(); key++ {
		was, is := t.pressed.Contains(key), pressed.Contains(key)
		if was != is {
			events = append(events, KeyEvent{Key: key, Pressed: is})
		}
	}
	t.pressed = pressed
	return events
}
