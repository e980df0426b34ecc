package cpu

import (
	"fmt"

	"github.com/retroenv/chip8vm/disasm"
	"github.com/retroenv/chip8vm/options"
	"github.com/retroenv/retrogolib/log"
)

// CPU implements the fetch-decode-execute engine of the machine.
// It is not safe for concurrent use.
type CPU struct {
	logger       *log.Logger
	options      options.Machine
	display      Display
	instructions *InstructionSet

	state  State
	cycles uint64
	halted bool
	err    error // fatal error that stopped the machine
}

// New returns a new CPU with zeroed registers and memory and the program
// counter set to the configured entry point. A nil display discards all
// display signals.
func New(logger *log.Logger, opts options.Machine, display Display) (*CPU, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}
	if display == nil {
		display = nopDisplay{}
	}

	c := &CPU{
		logger:       logger,
		options:      opts,
		display:      display,
		instructions: DefaultInstructionSet(),
	}
	c.state.PC = opts.EntryPoint
	return c, nil
}

// SetInstructionSet replaces the instruction set used to decode opcodes.
func (c *CPU) SetInstructionSet(instructions *InstructionSet) {
	c.instructions = instructions
}

// State returns the machine state. It can be used to load the program and
// seed registers before running and to inspect the result afterwards.
func (c *CPU) State() *State {
	return &c.state
}

// Display returns the display that receives the display signals.
func (c *CPU) Display() Display {
	return c.display
}

// Halted returns whether the machine executed the halt opcode.
func (c *CPU) Halted() bool {
	return c.halted
}

// Cycles returns the number of executed instructions.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Err returns the fatal error that stopped the machine, if any.
func (c *CPU) Err() error {
	return c.err
}

// Run executes instructions until the machine halts or a fatal error occurs.
func (c *CPU) Run() error {
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction. Once the machine is halted, no further
// memory is read. After a fatal error every call returns the same error.
func (c *CPU) Step() error {
	if c.err != nil {
		return c.err
	}
	if c.halted {
		return nil
	}

	address := c.state.PC
	op, err := c.state.ReadOpcode(address)
	if err != nil {
		return c.fail(&ExecutionError{Address: address, Err: err})
	}
	c.state.PC += opcodeSize

	ins, err := c.instructions.Decode(op)
	if err != nil {
		return c.fail(&ExecutionError{Address: address, Opcode: op, Fetched: true, Err: err})
	}

	if c.options.Trace {
		c.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", uint16(op)),
			log.String("instruction", disasm.Format(uint16(op))))
	}

	if err := ins.Handler(c, op); err != nil {
		return c.fail(&ExecutionError{Address: address, Opcode: op, Fetched: true, Err: err})
	}
	c.cycles++

	if c.halted {
		c.logger.Debug("Machine halted",
			log.Hex("address", address),
			log.Int("cycles", int(c.cycles)))
	}
	return nil
}

// skipIf advances the program counter past the next instruction if the condition is met.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.state.PC += opcodeSize
	}
}

func (c *CPU) fail(err *ExecutionError) error {
	c.err = err
	return err
}
