package cpu

const (
	// Width and Height are the screen size in pixels.
	Width  = 64
	Height = 32

	numCells = Width * Height

	// PixelOn and PixelOff are the ARGB color words stored per cell.
	PixelOn  uint32 = 0xFFFFFFFF
	PixelOff uint32 = 0x00000000
)

// display is the framebuffer. Cells hold a color word but only ever toggle
// between PixelOn and PixelOff.
type display [numCells]uint32

func (d *display) clear() {
	*d = display{}
}

// cellIndex returns the index of the cell covering (x+col, y+row) for a sprite
// anchored at an already wrapped origin.
func cellIndex(x, y, col, row int, clamp bool) int {
	if clamp {
		idx := (y+row)*Width + (x + col)
		if idx > numCells-1 {
			idx = numCells - 1
		}
		return idx
	}
	return ((y+row)%Height)*Width + (x+col)%Width
}

// drawRow XORs one sprite byte onto the display and reports a collision if
// an on cell was turned off.
func (d *display) drawRow(sprite uint8, x, y, row int, clamp bool) bool {
	collision := false
	for col := 0; col < 8; col++ {
		if sprite&(0x80>>uint(col)) == 0 {
			continue
		}
		idx := cellIndex(x, y, col, row, clamp)
		if d[idx] == PixelOn {
			collision = true
		}
		d[idx] ^= PixelOn
	}
	return collision
}

// Pixel reports whether the cell at (x, y) is lit. Coordinates wrap.
func (emu *EMU) Pixel(x, y int) bool {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height
	return emu.display[y*Width+x] == PixelOn
}

// Framebuffer exports the screen as 4 bytes per cell, row-major from (0,0),
// in R, G, B, A order.
func (emu *EMU) Framebuffer() []byte {
	fb := make([]byte, 4*numCells)
	for i, argb := range emu.display {
		fb[4*i] = uint8(argb >> 16)
		fb[4*i+1] = uint8(argb >> 8)
		fb[4*i+2] = uint8(argb)
		fb[4*i+3] = uint8(argb >> 24)
	}
	return fb
}
