package chip8

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Engine is the CHIP-8 interpreter. It exclusively owns its machine state, all
// methods run to completion and must not be called concurrently.
type Engine struct {
	state State
	rng   *rand.Rand
	fault error // fatal error that halted execution, cleared by Reset
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the random number source used by the RND instruction, making
// program runs reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// New returns a new engine with zeroed memory and the font loaded.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	e.Reset()
	return e
}

// Reset restores the machine to its power on state: memory, registers, stack,
// timers, display and a pending key wait are cleared and the font is reloaded.
func (e *Engine) Reset() {
	e.state.reset()
	e.fault = nil
}

// Load resets the machine and copies the program image to ProgramStart. If the
// image does not fit into memory an error wrapping ErrCapacity is returned and
// the machine state is left unmodified.
func (e *Engine) Load(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("loading %d bytes, maximum is %d: %w", len(rom), MaxProgramSize, ErrCapacity)
	}

	e.Reset()
	copy(e.state.Memory[ProgramStart:], rom)
	e.state.PC = ProgramStart
	return nil
}

// Step fetches, decodes and executes a single instruction. While the program
// waits for a key press Step does nothing. A fatal error halts the engine, the
// failing instruction has no side effects and further calls return an error
// wrapping ErrHalted until the engine is reset.
func (e *Engine) Step() error {
	if e.fault != nil {
		return &haltedError{cause: e.fault}
	}
	if e.state.WaitingForKey {
		return nil
	}

	pc := e.state.PC
	if int(pc)+opcodeSize > MemorySize {
		return e.halt(&ExecutionError{Address: pc, Err: ErrMemoryAccess})
	}
	opcode := uint16(e.state.Memory[pc])<<8 | uint16(e.state.Memory[pc+1])

	ins, ok := Decode(opcode)
	if !ok {
		return e.halt(&ExecutionError{Address: pc, Opcode: opcode, Err: ErrUnknownOpcode})
	}

	e.state.PC += opcodeSize
	if err := e.execute(ins); err != nil {
		e.state.PC = pc
		return e.halt(&ExecutionError{Address: pc, Opcode: opcode, Instruction: ins, Err: err})
	}
	return nil
}

func (e *Engine) halt(err error) error {
	e.fault = err
	return err
}

// Fault returns the fatal error that halted the engine, or nil.
func (e *Engine) Fault() error {
	return e.fault
}

// TickTimers decrements the delay and sound timers by one if they are not zero.
func (e *Engine) TickTimers() {
	if e.state.DelayTimer > 0 {
		e.state.DelayTimer--
	}
	if e.state.SoundTimer > 0 {
		e.state.SoundTimer--
	}
}

// SoundActive returns whether the sound timer is running, hosts use it to drive
// a tone.
func (e *Engine) SoundActive() bool {
	return e.state.SoundTimer > 0
}

// Display returns a copy of the framebuffer.
func (e *Engine) Display() Framebuffer {
	return e.state.Display
}

// State returns a copy of the complete machine state.
func (e *Engine) State() State {
	return e.state
}

// Register returns the value of register V0-VF.
func (e *Engine) Register(index int) (byte, error) {
	if index < 0 || index >= NumRegisters {
		return 0, fmt.Errorf("reading register %d: %w", index, ErrInvalidRegister)
	}
	return e.state.V[index], nil
}

// PC returns the program counter.
func (e *Engine) PC() uint16 {
	return e.state.PC
}

// WaitingForKey returns whether execution is paused until a key is pressed.
func (e *Engine) WaitingForKey() bool {
	return e.state.WaitingForKey
}
