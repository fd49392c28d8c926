package cpu

const stackDepth = 16

// stack holds return addresses. sp is the number of occupied slots.
type stack struct {
	slots [stackDepth]uint16
	sp    uint16
}

func (s *stack) push(addr uint16) bool {
	if s.sp >= stackDepth {
		return false
	}
	s.slots[s.sp] = addr
	s.sp++
	return true
}

func (s *stack) pop() (uint16, bool) {
	if s.sp == 0 {
		return 0, false
	}
	s.sp--
	return s.slots[s.sp], true
}
