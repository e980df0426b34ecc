package cpu

import (
	"errors"
	"fmt"
)

// Opcode is a 16 bit instruction word.
type Opcode uint16

// C returns the operation class, bits 12-15.
func (o Opcode) C() uint8 {
	return uint8((o & 0xF000) >> 12)
}

// X returns the first register operand, bits 8-11.
func (o Opcode) X() uint8 {
	return uint8((o & 0x0F00) >> 8)
}

// Y returns the second register operand, bits 4-7.
func (o Opcode) Y() uint8 {
	return uint8((o & 0x00F0) >> 4)
}

// D returns the sub-operation selector, bits 0-3.
func (o Opcode) D() uint8 {
	return uint8(o & 0x000F)
}

// KK returns the 8 bit immediate, bits 0-7.
func (o Opcode) KK() uint8 {
	return uint8(o & 0x00FF)
}

// Addr returns the 12 bit address, bits 0-11.
func (o Opcode) Addr() uint16 {
	return uint16(o & 0x0FFF)
}

// Handler executes a decoded instruction against the machine.
type Handler func(c *CPU, op Opcode) error

// Instruction is an executable machine instruction.
type Instruction struct {
	Name    string
	Handler Handler
}

var errInvalidOpcodeEntry = errors.New("invalid opcode entry")

type opcodeEntry struct {
	mask        uint16
	value       uint16
	instruction *Instruction
}

// InstructionSet maps opcodes to instructions. Entries are grouped by the
// operation class and matched by mask and value in the order they were added.
type InstructionSet struct {
	opcodes [16][]opcodeEntry
}

// NewInstructionSet returns an empty instruction set.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{}
}

// DefaultInstructionSet returns the instruction set of the machine.
func DefaultInstructionSet() *InstructionSet {
	s := NewInstructionSet()
	for _, entry := range defaultOpcodes {
		if err := s.Add(entry.mask, entry.value, entry.instruction); err != nil {
			panic(err)
		}
	}
	return s
}

// Add registers an instruction for all opcodes that equal value after applying mask.
// The mask has to cover the operation class nibble.
func (s *InstructionSet) Add(mask, value uint16, ins *Instruction) error {
	if ins == nil || ins.Handler == nil {
		return fmt.Errorf("%w: missing handler for value 0x%04X", errInvalidOpcodeEntry, value)
	}
	if mask&0xF000 != 0xF000 {
		return fmt.Errorf("%w: mask 0x%04X does not cover the operation class", errInvalidOpcodeEntry, mask)
	}
	if value&^mask != 0 {
		return fmt.Errorf("%w: value 0x%04X has bits outside of mask 0x%04X", errInvalidOpcodeEntry, value, mask)
	}

	class := (value & 0xF000) >> 12
	s.opcodes[class] = append(s.opcodes[class], opcodeEntry{
		mask:        mask,
		value:       value,
		instruction: ins,
	})
	return nil
}

// Decode returns the instruction for the opcode or ErrUnimplementedOpcode if no
// instruction matches.
func (s *InstructionSet) Decode(op Opcode) (*Instruction, error) {
	w := uint16(op)
	for _, entry := range s.opcodes[op.C()] {
		if entry.mask&w == entry.value {
			return entry.instruction, nil
		}
	}
	return nil, ErrUnimplementedOpcode
}
