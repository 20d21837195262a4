package chip8

import "fmt"

// Key is an index on the hexadecimal keypad.
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
type Key uint8

// Keypad keys.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// Valid returns whether the key is on the keypad.
func (k Key) Valid() bool {
	return k < NumKeys
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return fmt.Sprintf("%X", uint8(k))
}

// SetKey updates the pressed state of a key. If the program waits for a key press
// and pressed is true, the key is stored in the waiting register and execution
// resumes with the next Step.
func (e *Engine) SetKey(key Key, pressed bool) error {
	if !key.Valid() {
		return fmt.Errorf("setting key %d: %w", key, ErrInvalidKey)
	}

	e.state.Keypad[key] = pressed
	if pressed && e.state.WaitingForKey {
		e.state.V[e.state.WaitRegister] = byte(key)
		e.state.WaitingForKey = false
		e.state.WaitRegister = 0
	}
	return nil
}

// KeyPressed returns whether the key is currently pressed.
func (e *Engine) KeyPressed(key Key) bool {
	if !key.Valid() {
		return false
	}
	return e.state.Keypad[key]
}
