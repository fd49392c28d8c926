package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// fixedRandom returns its bytes in order, repeating the last one.
type fixedRandom struct {
	values []uint8
	next   int
}

func (f *fixedRandom) Byte() uint8 {
	b := f.values[f.next]
	if f.next < len(f.values)-1 {
		f.next++
	}
	return b
}

func program(words ...uint16) []byte {
	b := make([]byte, 0, 2*len(words))
	for _, w := range words {
		b = append(b, uint8(w>>8), uint8(w))
	}
	return b
}

func newTestEMU(t *testing.T, words []uint16, opts ...Option) *EMU {
	t.Helper()
	emu, err := New(program(words...), opts...)
	assert.NoError(t, err)
	return emu
}

func step(t *testing.T, emu *EMU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		assert.NoError(t, emu.Step())
	}
}

// run builds a machine and executes every word of the program once.
func run(t *testing.T, words []uint16, opts ...Option) *EMU {
	t.Helper()
	emu := newTestEMU(t, words, opts...)
	step(t, emu, len(words))
	return emu
}
