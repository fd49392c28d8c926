package cpu

const flag = 0xF

// execute applies one decoded instruction. The program counter has already
// been moved past it.
func (emu *EMU) execute(ins Instruction) error {
	x, y := ins.X(), ins.Y()
	kk := ins.KK()
	nnn := ins.NNN()

	switch ins.Op {
	case OpCls00E0:
		emu.display.clear()

	case OpRet00EE:
		addr, ok := emu.stack.pop()
		if !ok {
			return &StackFault{PC: emu.opPC}
		}
		emu.pc = addr

	case OpJp1nnn:
		emu.pc = nnn

	case OpCall2nnn:
		if !emu.stack.push(emu.pc) {
			return &StackFault{PC: emu.opPC, Overflow: true}
		}
		emu.pc = nnn

	case OpSe3xkk:
		emu.skipIf(emu.v[x] == kk)

	case OpSne4xkk:
		emu.skipIf(emu.v[x] != kk)

	case OpSe5xy0:
		emu.skipIf(emu.v[x] == emu.v[y])

	case OpLd6xkk:
		emu.v[x] = kk

	case OpAdd7xkk:
		emu.v[x] += kk

	case OpLd8xy0:
		emu.v[x] = emu.v[y]

	case OpOr8xy1:
		emu.v[x] |= emu.v[y]

	case OpAnd8xy2:
		emu.v[x] &= emu.v[y]

	case OpXor8xy3:
		emu.v[x] ^= emu.v[y]

	case OpAdd8xy4:
		sum := uint16(emu.v[x]) + uint16(emu.v[y])
		emu.v[x] = uint8(sum)
		emu.v[flag] = boolToFlag(sum > 0xFF)

	case OpSub8xy5:
		vx, vy := emu.v[x], emu.v[y]
		emu.v[x] = vx - vy
		emu.v[flag] = boolToFlag(vx > vy)

	case OpShr8xy6:
		vx := emu.v[x]
		if emu.quirks.ShiftFlagVerbatim {
			// the flag is written before the shift, so SHR VF leaves VF>>1
			emu.v[flag] = vx
			emu.v[x] = vx >> 1
		} else {
			emu.v[x] = vx >> 1
			emu.v[flag] = vx & 0x01
		}

	case OpSubn8xy7:
		vx, vy := emu.v[x], emu.v[y]
		emu.v[x] = vy - vx
		emu.v[flag] = boolToFlag(vy > vx)

	case OpShl8xyE:
		vx := emu.v[x]
		emu.v[x] = vx << 1
		emu.v[flag] = vx >> 7

	case OpSne9xy0:
		emu.skipIf(emu.v[x] != emu.v[y])

	case OpLdAnnn:
		emu.i = nnn

	case OpJpBnnn:
		emu.pc = uint16(emu.v[0]) + nnn

	case OpRndCxkk:
		emu.v[x] = emu.random.Byte() & kk

	case OpDrwDxyn:
		return emu.draw(x, y, ins.N())

	case OpSkpEx9E:
		emu.skipIf(emu.keys[emu.v[x]&0x0F])

	case OpSknpExA1:
		emu.skipIf(!emu.keys[emu.v[x]&0x0F])

	case OpLdFx07:
		emu.v[x] = emu.timers.delay

	case OpLdFx0A:
		// no key yet: run this instruction again on the next step
		if key, ok := emu.keys.firstPressed(); ok {
			emu.v[x] = key
		} else {
			emu.pc -= 2
		}

	case OpLdFx15:
		emu.timers.delay = emu.v[x]

	case OpLdFx18:
		emu.timers.sound = emu.v[x]

	case OpAddFx1E:
		addr, err := emu.resolve(uint32(emu.i) + uint32(emu.v[x]))
		if err != nil {
			return err
		}
		emu.i = addr

	case OpLdFx29:
		emu.i = fontStart + glyphSize*uint16(emu.v[x]&0x0F)

	case OpLdFx33:
		addrs, err := emu.resolveRange(uint32(emu.i), 3)
		if err != nil {
			return err
		}
		value := emu.v[x]
		emu.memory[addrs[0]] = value / 100
		emu.memory[addrs[1]] = value / 10 % 10
		emu.memory[addrs[2]] = value % 10

	case OpLdFx55:
		addrs, err := emu.resolveRange(uint32(emu.i), emu.registerCount(x))
		if err != nil {
			return err
		}
		for r, addr := range addrs {
			emu.memory[addr] = emu.v[r]
		}

	case OpLdFx65:
		addrs, err := emu.resolveRange(uint32(emu.i), emu.registerCount(x))
		if err != nil {
			return err
		}
		for r, addr := range addrs {
			emu.v[r] = emu.memory[addr]
		}

	case OpNop:
		// unused opcode space and embedded data run as no-ops
	}

	return nil
}

func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += 2
	}
}

// registerCount is the number of registers Fx55/Fx65 transfer.
func (emu *EMU) registerCount(x uint8) int {
	if emu.quirks.ExclusiveRegisterRange {
		return int(x)
	}
	return int(x) + 1
}

// draw XORs an n-row sprite read from I onto the screen at (Vx, Vy). The
// origin wraps; pixels past the edge wrap or clamp depending on the quirks.
func (emu *EMU) draw(x, y, n uint8) error {
	addrs, err := emu.resolveRange(uint32(emu.i), int(n))
	if err != nil {
		return err
	}

	x0 := int(emu.v[x] % Width)
	y0 := int(emu.v[y] % Height)

	emu.v[flag] = 0
	collision := false
	for row, addr := range addrs {
		if emu.display.drawRow(emu.memory[addr], x0, y0, row, emu.quirks.ClampSprites) {
			collision = true
		}
	}
	if collision {
		emu.v[flag] = 1
	}
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
