package cpu

import "fmt"

// Machine dimensions.
const (
	MemorySize    = 0x1000
	RegisterCount = 16
	StackSize     = 16

	// FlagRegister is the index of VF, which receives the carry of register additions.
	FlagRegister = 0xF

	opcodeSize = 2
)

// State contains the complete machine state. It is a plain value, copying it
// creates an independent snapshot.
type State struct {
	Memory    [MemorySize]byte
	Registers [RegisterCount]uint8
	PC        uint16 // program counter
	Stack     [StackSize]uint16
	SP        uint8 // stack pointer, number of used stack entries
}

// ReadByte returns the byte at the given memory address.
func (s *State) ReadByte(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("%w: reading address 0x%04X", ErrOutOfBounds, address)
	}
	return s.Memory[address], nil
}

// WriteByte sets the byte at the given memory address.
func (s *State) WriteByte(address uint16, value byte) error {
	if int(address) >= MemorySize {
		return fmt.Errorf("%w: writing address 0x%04X", ErrOutOfBounds, address)
	}
	s.Memory[address] = value
	return nil
}

// ReadOpcode returns the big-endian opcode stored at the given address.
func (s *State) ReadOpcode(address uint16) (Opcode, error) {
	if int(address)+opcodeSize > MemorySize {
		return 0, fmt.Errorf("%w: reading opcode at address 0x%04X", ErrOutOfBounds, address)
	}
	b1 := uint16(s.Memory[address])
	b2 := uint16(s.Memory[address+1])
	return Opcode(b1<<8 | b2), nil
}

// Load copies a program image into memory starting at the given offset.
func (s *State) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > MemorySize {
		return fmt.Errorf("%w: loading %d bytes at address 0x%04X", ErrOutOfBounds, len(data), offset)
	}
	copy(s.Memory[offset:], data)
	return nil
}

// Push stores a return address on the call stack.
func (s *State) Push(address uint16) error {
	if int(s.SP) >= StackSize {
		return ErrStackOverflow
	}
	s.Stack[s.SP] = address
	s.SP++
	return nil
}

// Pop removes the most recent return address from the call stack and returns it.
func (s *State) Pop() (uint16, error) {
	if s.SP == 0 {
		return 0, ErrStackUnderflow
	}
	if int(s.SP) > StackSize {
		return 0, fmt.Errorf("%w: stack pointer %d", ErrStackOverflow, s.SP)
	}
	s.SP--
	return s.Stack[s.SP], nil
}
