// Package options contains the machine options.
package options

import (
	"errors"
	"fmt"
)

// Memory layout values the options are validated against.
const (
	// ProgramStart is the conventional address that CHIP-8 programs are loaded to
	// and start execution from.
	ProgramStart = 0x200

	// MemorySize is the size of the addressable machine memory in bytes.
	MemorySize = 0x1000

	opcodeSize = 2
)

var (
	errEntryPointMisaligned = errors.New("entry point is not aligned to an instruction boundary")
	errEntryPointRange      = errors.New("entry point leaves no room for an instruction")
)

// Machine defines options to control the virtual machine.
type Machine struct {
	EntryPoint uint16 // initial program counter
	Trace      bool   // log every executed instruction at debug level
}

// NewMachine returns a new options instance with default options.
func NewMachine() Machine {
	return Machine{
		EntryPoint: ProgramStart,
	}
}

// Validate checks that the options describe a machine that can start executing.
func (m Machine) Validate() error {
	if m.EntryPoint%opcodeSize != 0 {
		return fmt.Errorf("%w: 0x%03X", errEntryPointMisaligned, m.EntryPoint)
	}
	if int(m.EntryPoint)+opcodeSize > MemorySize {
		return fmt.Errorf("%w: 0x%03X", errEntryPointRange, m.EntryPoint)
	}
	return nil
}
