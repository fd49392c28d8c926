package screen

import (
	"strings"

	"github.com/beanboi7/chyp8/emu/cpu"
)

// PixelReader is the read side of the machine's display.
type PixelReader interface {
	Pixel(x, y int) bool
}

// Text renders the display as lines of '#' (on) and '.' (off).
func Text(p PixelReader) string {
	var sb strings.Builder
	sb.Grow((cpu.Width + 1) * cpu.Height)
	for y := 0; y < cpu.Height; y++ {
		for x := 0; x < cpu.Width; x++ {
			if p.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
