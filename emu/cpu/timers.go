package cpu

// timers counts both down once per step, stopping at zero
type timers struct {
	delay uint8
	sound uint8
}

func (t *timers) tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}
