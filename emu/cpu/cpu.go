package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// EMU is the whole CHIP-8 machine. It is not safe for concurrent use: the
// host reads the framebuffer and writes keys between calls to Step.
type EMU struct {
	memory  [memorySize]uint8
	v       [16]uint8
	i       uint16 //address register
	pc      uint16
	opPC    uint16 //address of the instruction being executed
	stack   stack
	timers  timers
	keys    keypad
	display display

	quirks        Quirks
	addressPolicy AddressPolicy
	random        RandomSource
	logger        *log.Logger

	fault error
}

// New builds a machine with the glyph table at 0x50 and program at 0x200.
func New(program []byte, opts ...Option) (*EMU, error) {
	if err := checkROMSize(program); err != nil {
		return nil, &LoadError{Err: err}
	}

	emu := &EMU{
		pc: programStart,
	}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.random == nil {
		emu.random = NewRandom(0)
	}

	emu.loadFont()
	copy(emu.memory[programStart:], program)
	return emu, nil
}

// Step fetches, decodes and executes one instruction, then ticks both
// timers. After a fault the machine is halted and the state is left as it was
// before the faulting instruction; every later call returns ErrHalted.
func (emu *EMU) Step() error {
	if emu.fault != nil {
		return &haltedError{fault: emu.fault}
	}

	if err := emu.cycle(); err != nil {
		emu.pc = emu.opPC
		emu.fault = err
		return err
	}

	emu.timers.tick()
	return nil
}

func (emu *EMU) cycle() error {
	emu.opPC = emu.pc

	pc, err := emu.resolve(uint32(emu.pc))
	if err != nil {
		return err
	}
	if pc&1 != 0 && emu.addressPolicy == AddressFault {
		return &MisalignedPC{PC: pc}
	}
	hi := emu.memory[pc]
	lo, err := emu.readByte(uint32(pc) + 1)
	if err != nil {
		return err
	}

	ins := Decode(uint16(hi)<<8 | uint16(lo))
	if emu.logger != nil {
		emu.logger.Debug("exec",
			log.String("pc", fmt.Sprintf("0x%03X", pc)),
			log.String("opcode", fmt.Sprintf("0x%04X", ins.Word)),
			log.String("instruction", ins.String()))
	}

	emu.pc = pc + 2
	return emu.execute(ins)
}

// Halted reports whether a fault has stopped the machine.
func (emu *EMU) Halted() bool {
	return emu.fault != nil
}

// Fault returns the error that halted the machine, or nil.
func (emu *EMU) Fault() error {
	return emu.fault
}

// V returns general register i (0-15).
func (emu *EMU) V(i int) uint8 {
	return emu.v[i&0x0F]
}

// I returns the index register.
func (emu *EMU) I() uint16 {
	return emu.i
}

// PC returns the program counter.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// SP returns the number of return addresses on the stack.
func (emu *EMU) SP() int {
	return int(emu.stack.sp)
}

// DelayTimer returns the delay timer, which counts down once per step.
func (emu *EMU) DelayTimer() uint8 {
	return emu.timers.delay
}

// SoundTimer returns the sound timer. A tone should play while it is non-zero.
func (emu *EMU) SoundTimer() uint8 {
	return emu.timers.sound
}
