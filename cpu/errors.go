package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when a return is executed with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrStackOverflow is returned when a call is executed with a full call stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrUnimplementedOpcode is returned when an opcode does not match any instruction.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	// ErrOutOfBounds is returned for memory accesses outside of the address space.
	ErrOutOfBounds = errors.New("out of bounds memory access")
)

// ExecutionError is the fatal error that stopped the machine. It unwraps to one
// of the sentinel errors of this package.
type ExecutionError struct {
	Address uint16 // address of the instruction that failed
	Opcode  Opcode
	Fetched bool // false if the opcode could not be read from memory
	Err     error
}

func (e *ExecutionError) Error() string {
	if !e.Fetched {
		return fmt.Sprintf("fetching opcode at address 0x%03X: %v", e.Address, e.Err)
	}
	return fmt.Sprintf("executing opcode 0x%04X at address 0x%03X: %v", uint16(e.Opcode), e.Address, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
