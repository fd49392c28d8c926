package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrHalted is returned by Step once the machine has stopped on a fault.
	ErrHalted = errors.New("machine halted")
	// ErrInvalidKey is returned for key indices outside 0-15.
	ErrInvalidKey = errors.New("invalid key index")
	// ErrROMTooLarge is wrapped by a LoadError when the program does not fit
	// between 0x200 and the end of memory.
	ErrROMTooLarge = errors.New("ROM too big")
)

// LoadError means the program bytes could not be obtained or placed in
// memory. The machine is never built when this happens.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading ROM: %v", e.Err)
	}
	return fmt.Sprintf("loading ROM %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// StackFault is raised by CALL on a full stack or RET on an empty one.
type StackFault struct {
	PC       uint16
	Overflow bool
}

func (e *StackFault) Error() string {
	if e.Overflow {
		return fmt.Sprintf("stack overflow at 0x%03X: more than %d nested calls", e.PC, stackDepth)
	}
	return fmt.Sprintf("stack underflow at 0x%03X: return with empty stack", e.PC)
}

// AddressOutOfRange is raised under AddressFault when an access reaches past
// the end of memory.
type AddressOutOfRange struct {
	PC      uint16
	Address uint32
}

func (e *AddressOutOfRange) Error() string {
	return fmt.Sprintf("address 0x%X out of range at 0x%03X", e.Address, e.PC)
}

// MisalignedPC is raised under AddressFault when an instruction would be
// fetched from an odd address, which only happens after JP or CALL to an odd
// target or a JP V0 that lands on one.
type MisalignedPC struct {
	PC uint16
}

func (e *MisalignedPC) Error() string {
	return fmt.Sprintf("instruction fetch from odd address 0x%03X", e.PC)
}

// haltedError keeps the original fault reachable through errors.Is/As.
type haltedError struct {
	fault error
}

func (e *haltedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrHalted, e.fault)
}

func (e *haltedError) Is(target error) bool {
	return target == ErrHalted
}

func (e *haltedError) Unwrap() error {
	return e.fault
}
