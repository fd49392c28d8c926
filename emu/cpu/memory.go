package cpu

const (
	memorySize   = 4096
	programStart = 0x200
	maxRomSize   = memorySize - programStart
)

// resolve applies the address policy to an index-relative address.
func (emu *EMU) resolve(addr uint32) (uint16, error) {
	if addr < memorySize {
		return uint16(addr), nil
	}
	if emu.addressPolicy == AddressFault {
		return 0, &AddressOutOfRange{PC: emu.opPC, Address: addr}
	}
	return uint16(addr % memorySize), nil
}

func (emu *EMU) readByte(addr uint32) (uint8, error) {
	a, err := emu.resolve(addr)
	if err != nil {
		return 0, err
	}
	return emu.memory[a], nil
}

// resolveRange resolves n consecutive addresses starting at base. Nothing is
// touched unless every address is valid.
func (emu *EMU) resolveRange(base uint32, n int) ([]uint16, error) {
	addrs := make([]uint16, n)
	for i := range addrs {
		a, err := emu.resolve(base + uint32(i))
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}
	return addrs, nil
}

// Memory returns the byte at addr. The address wraps at the end of memory.
func (emu *EMU) Memory(addr uint16) uint8 {
	return emu.memory[addr%memorySize]
}
