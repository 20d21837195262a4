package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when a program image does not fit into memory.
	ErrCapacity = errors.New("program exceeds memory capacity")
	// ErrUnknownOpcode is returned when an opcode does not decode to a known instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow is returned when a call would exceed StackDepth nested calls.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryAccess is returned when an instruction accesses memory outside of the
	// address space or writes into the reserved interpreter area.
	ErrMemoryAccess = errors.New("invalid memory access")
	// ErrInvalidKey is returned for keypad indices outside of 0x0-0xF.
	ErrInvalidKey = errors.New("invalid key index")
	// ErrInvalidRegister is returned for register indices outside of 0x0-0xF.
	ErrInvalidRegister = errors.New("invalid register index")
	// ErrHalted is returned by Step after a fatal error until the engine is reset.
	ErrHalted = errors.New("engine halted")
)

// ExecutionError describes a fatal error raised while executing the instruction at Address.
type ExecutionError struct {
	Address     uint16
	Opcode      uint16
	Instruction Instruction // zero value when the opcode did not decode
	Err         error
}

func (e *ExecutionError) Error() string {
	if e.Instruction.Op == OpInvalid {
		return fmt.Sprintf("executing opcode $%04X at $%03X: %s", e.Opcode, e.Address, e.Err)
	}
	return fmt.Sprintf("executing '%s' ($%04X) at $%03X: %s", e.Instruction, e.Opcode, e.Address, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// haltedError wraps the fault that halted the engine so that both ErrHalted and the
// underlying cause can be matched with errors.Is.
type haltedError struct {
	cause error
}

func (e *haltedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrHalted, e.cause)
}

func (e *haltedError) Unwrap() []error {
	return []error{ErrHalted, e.cause}
}
