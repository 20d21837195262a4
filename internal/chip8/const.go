package chip8

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where CHIP-8 programs are loaded and
	// begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits between ProgramStart
	// and the end of memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the built-in font sprites.
	FontStart = 0x000

	// FontGlyphSize is the size of a single font sprite in bytes.
	FontGlyphSize = 5
)

// Register file and stack dimensions.
const (
	// NumRegisters is the number of general purpose registers V0-VF.
	NumRegisters = 16

	// FlagRegister is the index of VF, which receives carry, borrow, shift and
	// collision flags.
	FlagRegister = 0xF

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// NumKeys is the number of keys on the hexadecimal keypad.
	NumKeys = 16
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// font contains the sprites for the hexadecimal digits 0-F.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
