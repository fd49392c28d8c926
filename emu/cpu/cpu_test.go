package cpu

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	rom := []byte{0x60, 0x0A, 0x12, 0x00}
	emu, err := New(rom)
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x200), emu.PC())
	assert.Equal(t, uint16(0), emu.I())
	assert.Equal(t, 0, emu.SP())
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
	assert.False(t, emu.Halted())

	for i, b := range rom {
		assert.Equal(t, b, emu.Memory(uint16(0x200+i)))
	}
	for i, b := range FontSet {
		assert.Equal(t, b, emu.Memory(uint16(0x50+i)))
	}
	assert.Equal(t, uint8(0), emu.Memory(0x4F))
	assert.Equal(t, uint8(0), emu.Memory(0xA0))
}

func TestNewROMTooLarge(t *testing.T) {
	_, err := New(make([]byte, 4096-0x200))
	assert.NoError(t, err)

	emu, err := New(make([]byte, 4096-0x200+1))
	assert.True(t, emu == nil)
	assert.Error(t, err)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, ErrROMTooLarge))
}

func TestLoadROM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ch8")
	assert.NoError(t, os.WriteFile(path, []byte{0x00, 0xE0}, 0o644))

	rom, err := LoadROM(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0}, rom)

	emu, err := NewEMU(path)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xE0), emu.Memory(0x201))
}

func TestLoadROMMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ch8")

	emu, err := NewEMU(path)
	assert.True(t, emu == nil)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadROMTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.ch8")
	assert.NoError(t, os.WriteFile(path, make([]byte, 4000), 0o644))

	_, err := LoadROM(path)
	assert.True(t, errors.Is(err, ErrROMTooLarge))
}

func TestSetKey(t *testing.T) {
	emu := newTestEMU(t, nil)

	assert.NoError(t, emu.SetKey(0xA, true))
	keys := emu.Keys()
	assert.True(t, keys[0xA])

	assert.NoError(t, emu.SetKey(0xA, false))
	keys = emu.Keys()
	assert.False(t, keys[0xA])

	assert.True(t, errors.Is(emu.SetKey(16, true), ErrInvalidKey))
	assert.True(t, errors.Is(emu.SetKey(-1, true), ErrInvalidKey))
}

func TestTimersClampAtZero(t *testing.T) {
	emu := newTestEMU(t, make([]uint16, 8))
	emu.timers.delay = 5
	emu.timers.sound = 2

	step(t, emu, 5)
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())

	step(t, emu, 1)
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
}

func TestTimerInstructions(t *testing.T) {
	emu := run(t, []uint16{
		0x6009, // LD V0, 9
		0xF015, // LD DT, V0
		0xF118, // LD ST, V1
		0xF207, // LD V2, DT
	})

	// DT was set to 9 and ticked twice before V2 read it
	assert.Equal(t, uint8(7), emu.V(2))
	assert.Equal(t, uint8(6), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
}

func TestHaltedAfterFault(t *testing.T) {
	emu := newTestEMU(t, []uint16{0x00EE})

	err := emu.Step()
	var fault *StackFault
	assert.True(t, errors.As(err, &fault))
	assert.True(t, emu.Halted())
	assert.Equal(t, err, emu.Fault())

	err = emu.Step()
	assert.True(t, errors.Is(err, ErrHalted))
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(0x200), emu.PC())
}

func TestFaultDoesNotTickTimers(t *testing.T) {
	emu := newTestEMU(t, []uint16{0x00EE})
	emu.timers.delay = 3

	assert.Error(t, emu.Step())
	assert.Equal(t, uint8(3), emu.DelayTimer())
}

func TestTraceLogging(t *testing.T) {
	emu := newTestEMU(t, []uint16{0x6A02, 0x0123}, WithLogger(log.NewTestLogger(t)))
	step(t, emu, 2)
	assert.Equal(t, uint8(2), emu.V(0xA))
	assert.Equal(t, uint16(0x204), emu.PC())
}
