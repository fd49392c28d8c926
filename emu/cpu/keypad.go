package cpu

const numKeys = 16

// keypad is written by the host and only read by the machine.
type keypad [numKeys]bool

// firstPressed scans keys in ascending order.
func (k *keypad) firstPressed() (uint8, bool) {
	for i, pressed := range k {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}

// Keys returns a copy of the current key states.
func (emu *EMU) Keys() [numKeys]bool {
	return emu.keys
}

// SetKey updates the state of a single key. Only the host calls this.
func (emu *EMU) SetKey(key int, pressed bool) error {
	if key < 0 || key >= numKeys {
		return ErrInvalidKey
	}
	emu.keys[key] = pressed
	return nil
}
