package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func newSpriteEMU(t *testing.T, words []uint16, sprite []uint8, opts ...Option) *EMU {
	t.Helper()
	emu := newTestEMU(t, words, opts...)
	copy(emu.memory[0x300:], sprite)
	return emu
}

func TestDrawCollision(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{
		0xA300, // LD I, 0x300
		0x6000, // LD V0, 0
		0x6100, // LD V1, 0
		0xD011, // DRW V0, V1, 1
		0xD011, // DRW V0, V1, 1
	}, []uint8{0xFF})

	step(t, emu, 4)
	assert.Equal(t, uint8(0), emu.V(0xF))
	for x := 0; x < 8; x++ {
		assert.True(t, emu.Pixel(x, 0))
	}
	assert.False(t, emu.Pixel(8, 0))

	step(t, emu, 1)
	assert.Equal(t, uint8(1), emu.V(0xF))
	for x := 0; x < 8; x++ {
		assert.False(t, emu.Pixel(x, 0))
	}
}

func TestDrawPartialOverlap(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{
		0xA300,
		0x6000,
		0x6100,
		0xD011,
		0xA301,
		0xD011,
	}, []uint8{0xF0, 0x0F})

	step(t, emu, 6)
	// the second sprite lights different cells, so nothing collides
	assert.Equal(t, uint8(0), emu.V(0xF))
	for x := 0; x < 8; x++ {
		assert.True(t, emu.Pixel(x, 0))
	}
}

func TestDrawOriginWraps(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{0xA300, 0x6046, 0x6122, 0xD011}, []uint8{0x80})

	// (70, 34) wraps to (6, 2)
	step(t, emu, 4)
	assert.True(t, emu.Pixel(6, 2))
}

func TestDrawWrapsAtEdges(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{0xA300, 0x603E, 0x611F, 0xD012}, []uint8{0xFF, 0xFF})

	step(t, emu, 4)
	assert.Equal(t, uint8(0), emu.V(0xF))
	// columns 62,63 then 0..5 on rows 31 and 0
	for _, y := range []int{31, 0} {
		assert.True(t, emu.Pixel(62, y))
		assert.True(t, emu.Pixel(63, y))
		for x := 0; x < 6; x++ {
			assert.True(t, emu.Pixel(x, y))
		}
		assert.False(t, emu.Pixel(6, y))
	}
}

func TestDrawClampSprites(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{0xA300, 0x6000, 0x611F, 0xD012}, []uint8{0xFF, 0xFF},
		WithQuirks(Quirks{ClampSprites: true}))

	step(t, emu, 4)
	for x := 0; x < 8; x++ {
		assert.True(t, emu.Pixel(x, 31))
		assert.False(t, emu.Pixel(x, 0))
	}
	// the second row lands eight times on the last cell
	assert.False(t, emu.Pixel(63, 31))
	assert.Equal(t, uint8(1), emu.V(0xF))
}

func TestDrawZeroRows(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{0x6F01, 0xA300, 0xD000}, []uint8{0xFF})

	step(t, emu, 3)
	assert.Equal(t, uint8(0), emu.V(0xF))
	assert.False(t, emu.Pixel(0, 0))
}

func TestClearScreen(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{0xA300, 0xD015, 0x00E0}, []uint8{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	step(t, emu, 2)
	assert.True(t, emu.Pixel(0, 4))

	step(t, emu, 1)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.False(t, emu.Pixel(x, y))
		}
	}
}

func TestFramebuffer(t *testing.T) {
	emu := newSpriteEMU(t, []uint16{0xA300, 0x6001, 0x6101, 0xD011}, []uint8{0x80})
	step(t, emu, 4)

	fb := emu.Framebuffer()
	assert.Len(t, fb, 4*Width*Height)

	on := 4 * (1*Width + 1)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, fb[on:on+4])
	assert.Equal(t, []byte{0, 0, 0, 0}, fb[0:4])
	assert.Equal(t, []byte{0, 0, 0, 0}, fb[on+4:on+8])
}

func TestDrawGlyph(t *testing.T) {
	emu := run(t, []uint16{0x6000, 0xF029, 0xD005})

	// glyph 0 is a 4x5 box
	for y := 0; y < 5; y++ {
		assert.True(t, emu.Pixel(0, y))
		assert.True(t, emu.Pixel(3, y))
	}
	assert.False(t, emu.Pixel(1, 1))
	assert.True(t, emu.Pixel(1, 0))
}
