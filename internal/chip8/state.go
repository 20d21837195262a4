package chip8

// State is the complete machine state of the virtual machine. It is a flat value
// type, copies do not share memory with the engine.
type State struct {
	Memory [MemorySize]byte
	V      [NumRegisters]byte
	I      uint16
	PC     uint16

	Stack [StackDepth]uint16
	SP    uint8 // number of used stack entries

	DelayTimer uint8
	SoundTimer uint8

	Display Framebuffer
	Keypad  [NumKeys]bool

	WaitingForKey bool
	WaitRegister  uint8 // register that receives the key when the wait resolves
}

// reset restores the state to its power on baseline. The keypad mirrors the
// physical keys of the host and is not touched.
func (s *State) reset() {
	keypad := s.Keypad
	*s = State{
		PC:     ProgramStart,
		Keypad: keypad,
	}
	copy(s.Memory[FontStart:], font[:])
}

func (s *State) push(address uint16) error {
	if int(s.SP) >= StackDepth {
		return ErrStackOverflow
	}
	s.Stack[s.SP] = address
	s.SP++
	return nil
}

func (s *State) pop() (uint16, error) {
	if s.SP == 0 {
		return 0, ErrStackUnderflow
	}
	s.SP--
	address := s.Stack[s.SP]
	s.Stack[s.SP] = 0
	return address, nil
}
