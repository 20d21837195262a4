package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Operation
		text   string
	}{
		{0x0000, OpNop, "nop"},
		{0x00E0, OpCls, "cls"},
		{0x00EE, OpRet, "ret"},
		{0x1ABC, OpJp, "jp $ABC"},
		{0x2208, OpCall, "call $208"},
		{0x3A42, OpSeImm, "se VA, $42"},
		{0x4A42, OpSneImm, "sne VA, $42"},
		{0x5AB0, OpSeReg, "se VA, VB"},
		{0x6C07, OpLdImm, "ld VC, $07"},
		{0x7C07, OpAddImm, "add VC, $07"},
		{0x8120, OpLdReg, "ld V1, V2"},
		{0x8121, OpOr, "or V1, V2"},
		{0x8122, OpAnd, "and V1, V2"},
		{0x8123, OpXor, "xor V1, V2"},
		{0x8124, OpAddReg, "add V1, V2"},
		{0x8125, OpSub, "sub V1, V2"},
		{0x8126, OpShr, "shr V1"},
		{0x8127, OpSubn, "subn V1, V2"},
		{0x812E, OpShl, "shl V1"},
		{0x9120, OpSneReg, "sne V1, V2"},
		{0xA2F0, OpLdI, "ld I, $2F0"},
		{0xB300, OpJpV0, "jp V0, $300"},
		{0xC10F, OpRnd, "rnd V1, $0F"},
		{0xD125, OpDrw, "drw V1, V2, $5"},
		{0xE39E, OpSkp, "skp V3"},
		{0xE3A1, OpSknp, "sknp V3"},
		{0xF407, OpLdVxDT, "ld V4, DT"},
		{0xF40A, OpLdVxK, "ld V4, K"},
		{0xF415, OpLdDTVx, "ld DT, V4"},
		{0xF418, OpLdSTVx, "ld ST, V4"},
		{0xF41E, OpAddI, "add I, V4"},
		{0xF429, OpLdF, "ld F, V4"},
		{0xF433, OpLdB, "ld B, V4"},
		{0xF455, OpStore, "ld [I], V4"},
		{0xF465, OpLoad, "ld V4, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins, ok := Decode(tt.opcode)
			assert.True(t, ok)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.text, ins.String())
		})
	}
}

func TestDecode_Operands(t *testing.T) {
	ins, ok := Decode(0xD7A3)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x7), ins.X)
	assert.Equal(t, uint8(0xA), ins.Y)
	assert.Equal(t, uint8(0x3), ins.N)
	assert.Equal(t, byte(0xA3), ins.KK)
	assert.Equal(t, uint16(0x7A3), ins.NNN)
}

func TestDecode_Unknown(t *testing.T) {
	unknown := []uint16{0x0001, 0x00E1, 0x00FF, 0x0FFF, 0x5121, 0x8128, 0x812D, 0x912F, 0xE19F, 0xF100, 0xF175}

	for _, opcode := range unknown {
		ins, ok := Decode(opcode)
		assert.False(t, ok)
		assert.Equal(t, OpInvalid, ins.Op)
	}
}

func TestDecode_EveryOpcode(t *testing.T) {
	valid := 0
	for opcode := range 0x10000 {
		ins, ok := Decode(uint16(opcode))
		if !ok {
			continue
		}
		valid++
		assert.NotEmpty(t, ins.Name())
	}
	// 3 fixed opcodes, 10 families with 4096 encodings each, the two register
	// compares and 9 ALU operations with 256, 2 key and 9 misc operations with 16.
	assert.Equal(t, 3+10*4096+2*256+9*256+11*16, valid)
}

func TestInstruction_IsSkip(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected bool
	}{
		{0x3000, true},
		{0x4000, true},
		{0x5000, true},
		{0x9000, true},
		{0xE09E, true},
		{0xE0A1, true},
		{0x1200, false},
		{0x00EE, false},
		{0xF00A, false},
	}

	for _, tt := range tests {
		ins, ok := Decode(tt.opcode)
		assert.True(t, ok)
		assert.Equal(t, tt.expected, ins.IsSkip())
	}
}
