package chip8

import (
	"fmt"
	"strings"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Operation identifies a decoded CHIP-8 instruction variant.
type Operation uint8

// Instruction variants of the base CHIP-8 instruction set. The comment shows the
// encoding, x and y are register nibbles, n a nibble, kk a byte and nnn an address.
const (
	OpInvalid Operation = iota
	OpNop                // 0000
	OpCls                // 00E0
	OpRet                // 00EE
	OpJp                 // 1nnn
	OpCall               // 2nnn
	OpSeImm              // 3xkk
	OpSneImm             // 4xkk
	OpSeReg              // 5xy0
	OpLdImm              // 6xkk
	OpAddImm             // 7xkk
	OpLdReg              // 8xy0
	OpOr                 // 8xy1
	OpAnd                // 8xy2
	OpXor                // 8xy3
	OpAddReg             // 8xy4
	OpSub                // 8xy5
	OpShr                // 8xy6
	OpSubn               // 8xy7
	OpShl                // 8xyE
	OpSneReg             // 9xy0
	OpLdI                // Annn
	OpJpV0               // Bnnn
	OpRnd                // Cxkk
	OpDrw                // Dxyn
	OpSkp                // Ex9E
	OpSknp               // ExA1
	OpLdVxDT             // Fx07
	OpLdVxK              // Fx0A
	OpLdDTVx             // Fx15
	OpLdSTVx             // Fx18
	OpAddI               // Fx1E
	OpLdF                // Fx29
	OpLdB                // Fx33
	OpStore              // Fx55
	OpLoad               // Fx65
)

// mnemonics maps the operations to the shared CHIP-8 instruction definitions.
var mnemonics = map[Operation]*chip8cpu.Instruction{
	OpCls:    chip8cpu.Cls,
	OpRet:    chip8cpu.Ret,
	OpJp:     chip8cpu.Jp,
	OpCall:   chip8cpu.Call,
	OpSeImm:  chip8cpu.Se,
	OpSneImm: chip8cpu.Sne,
	OpSeReg:  chip8cpu.Se,
	OpLdImm:  chip8cpu.Ld,
	OpAddImm: chip8cpu.Add,
	OpLdReg:  chip8cpu.Ld,
	OpOr:     chip8cpu.Or,
	OpAnd:    chip8cpu.And,
	OpXor:    chip8cpu.Xor,
	OpAddReg: chip8cpu.Add,
	OpSub:    chip8cpu.Sub,
	OpShr:    chip8cpu.Shr,
	OpSubn:   chip8cpu.Subn,
	OpShl:    chip8cpu.Shl,
	OpSneReg: chip8cpu.Sne,
	OpLdI:    chip8cpu.Ld,
	OpJpV0:   chip8cpu.Jp,
	OpRnd:    chip8cpu.Rnd,
	OpDrw:    chip8cpu.Drw,
	OpSkp:    chip8cpu.Skp,
	OpSknp:   chip8cpu.Sknp,
	OpLdVxDT: chip8cpu.Ld,
	OpLdVxK:  chip8cpu.Ld,
	OpLdDTVx: chip8cpu.Ld,
	OpLdSTVx: chip8cpu.Ld,
	OpAddI:   chip8cpu.Add,
	OpLdF:    chip8cpu.Ld,
	OpLdB:    chip8cpu.Ld,
	OpStore:  chip8cpu.Ld,
	OpLoad:   chip8cpu.Ld,
}

// Instruction is a decoded CHIP-8 opcode. Only the operand fields used by the
// operation are meaningful.
type Instruction struct {
	Op  Operation
	X   uint8  // first register nibble
	Y   uint8  // second register nibble
	N   uint8  // low nibble
	KK  byte   // low byte
	NNN uint16 // low 12 bits
}

// Decode decodes a 16-bit opcode into an instruction. It returns false if the
// opcode is not part of the base CHIP-8 instruction set.
func Decode(opcode uint16) (Instruction, bool) {
	ins := Instruction{
		X:   uint8(opcode>>8) & 0x0F,
		Y:   uint8(opcode>>4) & 0x0F,
		N:   uint8(opcode) & 0x0F,
		KK:  byte(opcode),
		NNN: opcode & 0x0FFF,
	}
	ins.Op = decodeOperation(opcode)
	if ins.Op == OpInvalid {
		return Instruction{}, false
	}
	return ins, true
}

func decodeOperation(opcode uint16) Operation {
	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x0000:
			return OpNop
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
	case 0x1000:
		return OpJp
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSeImm
	case 0x4000:
		return OpSneImm
	case 0x5000:
		if opcode&0x000F == 0 {
			return OpSeReg
		}
	case 0x6000:
		return OpLdImm
	case 0x7000:
		return OpAddImm
	case 0x8000:
		return decodeALU(opcode)
	case 0x9000:
		if opcode&0x000F == 0 {
			return OpSneReg
		}
	case 0xA000:
		return OpLdI
	case 0xB000:
		return OpJpV0
	case 0xC000:
		return OpRnd
	case 0xD000:
		return OpDrw
	case 0xE000:
		switch opcode & 0x00FF {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF000:
		return decodeMisc(opcode)
	}
	return OpInvalid
}

// decodeALU decodes the 8xyN register to register operations.
func decodeALU(opcode uint16) Operation {
	switch opcode & 0x000F {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	}
	return OpInvalid
}

// decodeMisc decodes the FxNN timer, keypad and memory operations.
func decodeMisc(opcode uint16) Operation {
	switch opcode & 0x00FF {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	}
	return OpInvalid
}

// Name returns the lower case mnemonic of the instruction.
func (i Instruction) Name() string {
	if i.Op == OpNop {
		return "nop"
	}
	ins, ok := mnemonics[i.Op]
	if !ok {
		return ""
	}
	return strings.ToLower(ins.Name)
}

// String returns the instruction in assembly notation, for example "drw V1, V2, $5".
func (i Instruction) String() string {
	name := i.Name()
	if params := i.params(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

func (i Instruction) params() string {
	switch i.Op {
	case OpJp, OpCall:
		return fmt.Sprintf("$%03X", i.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpSeImm, OpSneImm, OpLdImm, OpAddImm, OpRnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", i.X)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLdF:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLdB:
		return fmt.Sprintf("B, V%X", i.X)
	case OpStore:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	switch i.Op {
	case OpSeImm, OpSneImm, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	default:
		return false
	}
}
