package chip8

// execute runs a decoded instruction. The program counter already points to the
// next instruction. Every check that can fail runs before the state is modified.
//
//nolint:funlen,cyclop // flat dispatch over the instruction set
func (e *Engine) execute(ins Instruction) error {
	s := &e.state
	vx, vy := s.V[ins.X], s.V[ins.Y]

	switch ins.Op {
	case OpNop:

	case OpCls:
		s.Display.Clear()

	case OpRet:
		address, err := s.pop()
		if err != nil {
			return err
		}
		s.PC = address

	case OpJp:
		s.PC = ins.NNN

	case OpCall:
		if err := s.push(s.PC); err != nil {
			return err
		}
		s.PC = ins.NNN

	case OpSeImm:
		s.skipIf(vx == ins.KK)
	case OpSneImm:
		s.skipIf(vx != ins.KK)
	case OpSeReg:
		s.skipIf(vx == vy)
	case OpSneReg:
		s.skipIf(vx != vy)

	case OpLdImm:
		s.V[ins.X] = ins.KK
	case OpAddImm:
		s.V[ins.X] = vx + ins.KK

	case OpLdReg:
		s.V[ins.X] = vy
	case OpOr:
		s.V[ins.X] = vx | vy
	case OpAnd:
		s.V[ins.X] = vx & vy
	case OpXor:
		s.V[ins.X] = vx ^ vy

	case OpAddReg:
		sum := uint16(vx) + uint16(vy)
		s.V[ins.X] = byte(sum)
		s.V[FlagRegister] = byte(sum >> 8)

	case OpSub:
		s.V[ins.X] = vx - vy
		s.V[FlagRegister] = flag(vx >= vy)

	case OpSubn:
		s.V[ins.X] = vy - vx
		s.V[FlagRegister] = flag(vy >= vx)

	case OpShr:
		s.V[ins.X] = vx >> 1
		s.V[FlagRegister] = vx & 0x01

	case OpShl:
		s.V[ins.X] = vx << 1
		s.V[FlagRegister] = vx >> 7

	case OpLdI:
		s.I = ins.NNN

	case OpJpV0:
		s.PC = ins.NNN + uint16(s.V[0])

	case OpRnd:
		s.V[ins.X] = byte(e.rng.Uint32()) & ins.KK

	case OpDrw:
		return e.draw(ins, vx, vy)

	case OpSkp, OpSknp:
		key := Key(vx)
		if !key.Valid() {
			return ErrInvalidKey
		}
		pressed := s.Keypad[key]
		s.skipIf(pressed == (ins.Op == OpSkp))

	case OpLdVxDT:
		s.V[ins.X] = s.DelayTimer
	case OpLdVxK:
		s.WaitingForKey = true
		s.WaitRegister = ins.X
	case OpLdDTVx:
		s.DelayTimer = vx
	case OpLdSTVx:
		s.SoundTimer = vx

	case OpAddI:
		s.I += uint16(vx)

	case OpLdF:
		s.I = FontStart + FontGlyphSize*uint16(vx&0x0F)

	case OpLdB:
		if err := checkWrite(s.I, 3); err != nil {
			return err
		}
		s.Memory[s.I] = vx / 100
		s.Memory[s.I+1] = vx / 10 % 10
		s.Memory[s.I+2] = vx % 10

	case OpStore:
		count := int(ins.X) + 1
		if err := checkWrite(s.I, count); err != nil {
			return err
		}
		copy(s.Memory[s.I:], s.V[:count])

	case OpLoad:
		count := int(ins.X) + 1
		if err := checkRead(s.I, count); err != nil {
			return err
		}
		copy(s.V[:count], s.Memory[s.I:])

	default:
		return ErrUnknownOpcode
	}
	return nil
}

// draw XORs the N byte sprite at I onto the display at (Vx, Vy) and sets VF on
// collision.
func (e *Engine) draw(ins Instruction, vx, vy byte) error {
	s := &e.state
	height := int(ins.N)
	if err := checkRead(s.I, height); err != nil {
		return err
	}

	sprite := s.Memory[s.I : int(s.I)+height]
	collision := s.Display.drawSprite(int(vx)%DisplayWidth, int(vy)%DisplayHeight, sprite)
	s.V[FlagRegister] = flag(collision)
	return nil
}

func (s *State) skipIf(condition bool) {
	if condition {
		s.PC += opcodeSize
	}
}

func checkRead(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return ErrMemoryAccess
	}
	return nil
}

// checkWrite verifies that a program write stays inside the program area.
func checkWrite(address uint16, length int) error {
	if address < ProgramStart || int(address)+length > MemorySize {
		return ErrMemoryAccess
	}
	return nil
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
