package cpu

import (
	"fmt"
	"os"
)

// LoadROM reads program bytes from disk. Any failure is a *LoadError.
func LoadROM(filename string) ([]byte, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	if err := checkROMSize(rom); err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	return rom, nil
}

func checkROMSize(rom []byte) error {
	if len(rom) > maxRomSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrROMTooLarge, len(rom), maxRomSize)
	}
	return nil
}

// NewEMU loads the ROM at romPath and builds a machine around it.
func NewEMU(romPath string, opts ...Option) (*EMU, error) {
	rom, err := LoadROM(romPath)
	if err != nil {
		return nil, err
	}
	return New(rom, opts...)
}
