// Package chip8 implements a CHIP-8 virtual machine interpreter.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. The virtual machine modeled here has:
//   - 4KB of memory (0x000-MaxAddress)
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag output
//   - a 16-bit index register I and program counter PC
//   - a call stack of StackDepth return addresses
//   - delay and sound timers decremented by the host at its own cadence
//   - a 64x32 monochrome framebuffer and a 16-key hexadecimal keypad
//
// # Memory Layout
//
//   - 0x000-0x04F: built-in hexadecimal font, 5 bytes per digit
//   - 0x050-0x1FF: reserved for the interpreter
//   - ProgramStart-MaxAddress: program image and data
//
// # Host Driven Execution
//
// The Engine has no scheduling of its own. A host calls Reset and Load, then per rendered
// frame calls Step a fixed number of times followed by TickTimers, reads the framebuffer
// with Display and forwards key transitions with SetKey. All calls are synchronous and the
// Engine must only be used from one goroutine at a time.
//
// # Usage Example
//
//	engine := chip8.New()
//	if err := engine.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for range stepsPerFrame {
//		if err := engine.Step(); err != nil {
//			return fmt.Errorf("executing program: %w", err)
//		}
//	}
//	engine.TickTimers()
//	frame := engine.Display()
//
// # Error Handling
//
// Fatal conditions (unknown opcodes, stack overflow or underflow, invalid memory access)
// are returned as *ExecutionError wrapping one of the package sentinel errors. The failing
// instruction has no side effects and the engine stays halted until Reset or Load.
package chip8
