package screen

import "github.com/faiface/pixel/pixelgl"

// DefaultKeyMap maps CHIP-8 keys 0-F onto the left side of a QWERTY
// keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var DefaultKeyMap = [16]pixelgl.Button{
	pixelgl.KeyX, // 0
	pixelgl.Key1, // 1
	pixelgl.Key2, // 2
	pixelgl.Key3, // 3
	pixelgl.KeyQ, // 4
	pixelgl.KeyW, // 5
	pixelgl.KeyE, // 6
	pixelgl.KeyA, // 7
	pixelgl.KeyS, // 8
	pixelgl.KeyD, // 9
	pixelgl.KeyZ, // A
	pixelgl.KeyC, // B
	pixelgl.Key4, // C
	pixelgl.KeyR, // D
	pixelgl.KeyF, // E
	pixelgl.KeyV, // F
}

// KeySetter receives key state changes, usually a *cpu.EMU.
type KeySetter interface {
	SetKey(key int, pressed bool) error
}

// KeyFor returns the CHIP-8 key bound to a button.
func KeyFor(keyMap [16]pixelgl.Button, button pixelgl.Button) (int, bool) {
	for key, b := range keyMap {
		if b == button {
			return key, true
		}
	}
	return 0, false
}
