package cpu

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op names one of the decoded operation variants.
type Op uint8

const (
	OpNop Op = iota
	OpCls00E0
	OpRet00EE
	OpJp1nnn
	OpCall2nnn
	OpSe3xkk
	OpSne4xkk
	OpSe5xy0
	OpLd6xkk
	OpAdd7xkk
	OpLd8xy0
	OpOr8xy1
	OpAnd8xy2
	OpXor8xy3
	OpAdd8xy4
	OpSub8xy5
	OpShr8xy6
	OpSubn8xy7
	OpShl8xyE
	OpSne9xy0
	OpLdAnnn
	OpJpBnnn
	OpRndCxkk
	OpDrwDxyn
	OpSkpEx9E
	OpSknpExA1
	OpLdFx07
	OpLdFx0A
	OpLdFx15
	OpLdFx18
	OpAddFx1E
	OpLdFx29
	OpLdFx33
	OpLdFx55
	OpLdFx65
)

// nibble patterns: uppercase hex digits must match exactly, lowercase
// letters are operand wildcards
var patterns = []struct {
	pattern string
	op      Op
}{
	{"00E0", OpCls00E0},
	{"00EE", OpRet00EE},
	{"1nnn", OpJp1nnn},
	{"2nnn", OpCall2nnn},
	{"3xkk", OpSe3xkk},
	{"4xkk", OpSne4xkk},
	{"5xy0", OpSe5xy0},
	{"6xkk", OpLd6xkk},
	{"7xkk", OpAdd7xkk},
	{"8xy0", OpLd8xy0},
	{"8xy1", OpOr8xy1},
	{"8xy2", OpAnd8xy2},
	{"8xy3", OpXor8xy3},
	{"8xy4", OpAdd8xy4},
	{"8xy5", OpSub8xy5},
	{"8xy6", OpShr8xy6},
	{"8xy7", OpSubn8xy7},
	{"8xyE", OpShl8xyE},
	{"9xy0", OpSne9xy0},
	{"Annn", OpLdAnnn},
	{"Bnnn", OpJpBnnn},
	{"Cxkk", OpRndCxkk},
	{"Dxyn", OpDrwDxyn},
	{"Ex9E", OpSkpEx9E},
	{"ExA1", OpSknpExA1},
	{"Fx07", OpLdFx07},
	{"Fx0A", OpLdFx0A},
	{"Fx15", OpLdFx15},
	{"Fx18", OpLdFx18},
	{"Fx1E", OpAddFx1E},
	{"Fx29", OpLdFx29},
	{"Fx33", OpLdFx33},
	{"Fx55", OpLdFx55},
	{"Fx65", OpLdFx65},
}

type matcher struct {
	mask  uint16
	value uint16
	op    Op
}

var matchers = compilePatterns()

func compilePatterns() []matcher {
	m := make([]matcher, 0, len(patterns))
	for _, p := range patterns {
		var mask, value uint16
		for i, c := range p.pattern {
			shift := uint(12 - 4*i)
			var nibble uint16
			switch {
			case c >= '0' && c <= '9':
				nibble = uint16(c - '0')
			case c >= 'A' && c <= 'F':
				nibble = uint16(c-'A') + 10
			default:
				continue
			}
			mask |= 0xF << shift
			value |= nibble << shift
		}
		m = append(m, matcher{mask: mask, value: value, op: p.op})
	}
	return m
}

// Instruction is a decoded operation together with the word it came from.
type Instruction struct {
	Op   Op
	Word uint16
}

// Decode maps an instruction word to its operation. Words matching no
// pattern decode to OpNop; decoding never fails.
func Decode(word uint16) Instruction {
	for _, m := range matchers {
		if word&m.mask == m.value {
			return Instruction{Op: m.op, Word: word}
		}
	}
	return Instruction{Op: OpNop, Word: word}
}

// X is the register index in the second nibble.
func (ins Instruction) X() uint8 { return uint8(ins.Word>>8) & 0x0F }

// Y is the register index in the third nibble.
func (ins Instruction) Y() uint8 { return uint8(ins.Word>>4) & 0x0F }

// N is the low nibble.
func (ins Instruction) N() uint8 { return uint8(ins.Word) & 0x0F }

// KK is the low byte.
func (ins Instruction) KK() uint8 { return uint8(ins.Word) }

// NNN is the 12-bit address field.
func (ins Instruction) NNN() uint16 { return ins.Word & 0x0FFF }

// instructions maps every operation except OpNop to its entry in the
// chip8 instruction set, which provides the mnemonic names.
var instructions = map[Op]*chip8.Instruction{
	OpCls00E0:  chip8.ClsInst,
	OpRet00EE:  chip8.RetInst,
	OpJp1nnn:   chip8.JpInst,
	OpCall2nnn: chip8.CallInst,
	OpSe3xkk:   chip8.SeInst,
	OpSne4xkk:  chip8.SneInst,
	OpSe5xy0:   chip8.SeInst,
	OpLd6xkk:   chip8.LdInst,
	OpAdd7xkk:  chip8.AddInst,
	OpLd8xy0:   chip8.LdInst,
	OpOr8xy1:   chip8.OrInst,
	OpAnd8xy2:  chip8.AndInst,
	OpXor8xy3:  chip8.XorInst,
	OpAdd8xy4:  chip8.AddInst,
	OpSub8xy5:  chip8.SubInst,
	OpShr8xy6:  chip8.ShrInst,
	OpSubn8xy7: chip8.SubnInst,
	OpShl8xyE:  chip8.ShlInst,
	OpSne9xy0:  chip8.SneInst,
	OpLdAnnn:   chip8.LdInst,
	OpJpBnnn:   chip8.JpInst,
	OpRndCxkk:  chip8.RndInst,
	OpDrwDxyn:  chip8.DrwInst,
	OpSkpEx9E:  chip8.SkpInst,
	OpSknpExA1: chip8.SknpInst,
	OpLdFx07:   chip8.LdInst,
	OpLdFx0A:   chip8.LdInst,
	OpLdFx15:   chip8.LdInst,
	OpLdFx18:   chip8.LdInst,
	OpAddFx1E:  chip8.AddInst,
	OpLdFx29:   chip8.LdInst,
	OpLdFx33:   chip8.LdInst,
	OpLdFx55:   chip8.LdInst,
	OpLdFx65:   chip8.LdInst,
}

// String returns the upper case mnemonic of the operation.
func (op Op) String() string {
	if op == OpNop {
		return "NOP"
	}
	if ins, ok := instructions[op]; ok {
		return strings.ToUpper(ins.Name)
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// String formats the instruction in the usual CHIP-8 assembler syntax.
func (ins Instruction) String() string {
	name := ins.Op.String()
	x, y := ins.X(), ins.Y()

	switch ins.Op {
	case OpCls00E0, OpRet00EE:
		return name
	case OpJp1nnn, OpCall2nnn:
		return fmt.Sprintf("%s 0x%03X", name, ins.NNN())
	case OpSe3xkk, OpSne4xkk, OpLd6xkk, OpAdd7xkk:
		return fmt.Sprintf("%s V%X, 0x%02X", name, x, ins.KK())
	case OpSe5xy0, OpLd8xy0, OpOr8xy1, OpAnd8xy2, OpXor8xy3, OpAdd8xy4,
		OpSub8xy5, OpShr8xy6, OpSubn8xy7, OpShl8xyE, OpSne9xy0:
		return fmt.Sprintf("%s V%X, V%X", name, x, y)
	case OpLdAnnn:
		return fmt.Sprintf("%s I, 0x%03X", name, ins.NNN())
	case OpJpBnnn:
		return fmt.Sprintf("%s V0, 0x%03X", name, ins.NNN())
	case OpRndCxkk:
		return fmt.Sprintf("%s V%X, 0x%02X", name, x, ins.KK())
	case OpDrwDxyn:
		return fmt.Sprintf("%s V%X, V%X, %d", name, x, y, ins.N())
	case OpSkpEx9E, OpSknpExA1:
		return fmt.Sprintf("%s V%X", name, x)
	case OpLdFx07:
		return fmt.Sprintf("%s V%X, DT", name, x)
	case OpLdFx0A:
		return fmt.Sprintf("%s V%X, K", name, x)
	case OpLdFx15:
		return fmt.Sprintf("%s DT, V%X", name, x)
	case OpLdFx18:
		return fmt.Sprintf("%s ST, V%X", name, x)
	case OpAddFx1E:
		return fmt.Sprintf("%s I, V%X", name, x)
	case OpLdFx29:
		return fmt.Sprintf("%s F, V%X", name, x)
	case OpLdFx33:
		return fmt.Sprintf("%s B, V%X", name, x)
	case OpLdFx55:
		return fmt.Sprintf("%s [I], V%X", name, x)
	case OpLdFx65:
		return fmt.Sprintf("%s V%X, [I]", name, x)
	default:
		return fmt.Sprintf("%s 0x%04X", name, ins.Word)
	}
}
