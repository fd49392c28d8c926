package cpu

import (
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// AddressPolicy decides what happens when an index-relative access reaches
// past the end of memory.
type AddressPolicy int

const (
	// AddressWrap takes addresses modulo the memory size.
	AddressWrap AddressPolicy = iota
	// AddressFault halts the machine with an AddressOutOfRange error.
	AddressFault
)

func (p AddressPolicy) String() string {
	switch p {
	case AddressWrap:
		return "wrap"
	case AddressFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Quirks toggles behaviours where interpreters disagree. The zero value is
// the canonical CHIP-8 behaviour.
type Quirks struct {
	// ShiftFlagVerbatim makes 8xy6 store the whole pre-shift value in VF
	// instead of its low bit.
	ShiftFlagVerbatim bool
	// ExclusiveRegisterRange makes Fx55/Fx65 copy V0..V(x-1) instead of V0..Vx.
	ExclusiveRegisterRange bool
	// ClampSprites clamps off-screen sprite pixels to the last cell instead of
	// wrapping them around both axes.
	ClampSprites bool
}

// RandomSource supplies the bytes used by Cxkk.
type RandomSource interface {
	Byte() uint8
}

type mathRandom struct {
	rnd *rand.Rand
}

// NewRandom returns a RandomSource backed by math/rand. A zero seed picks one
// from the clock.
func NewRandom(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (m *mathRandom) Byte() uint8 {
	return uint8(m.rnd.Intn(256))
}

// Option configures an EMU at construction.
type Option func(*EMU)

// WithQuirks sets the compatibility quirks.
func WithQuirks(q Quirks) Option {
	return func(emu *EMU) {
		emu.quirks = q
	}
}

// WithAddressPolicy sets how out of range index-relative accesses are handled.
func WithAddressPolicy(p AddressPolicy) Option {
	return func(emu *EMU) {
		emu.addressPolicy = p
	}
}

// WithRandom replaces the random source used by Cxkk.
func WithRandom(r RandomSource) Option {
	return func(emu *EMU) {
		emu.random = r
	}
}

// WithLogger enables debug tracing of executed instructions.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) {
		emu.logger = logger
	}
}
