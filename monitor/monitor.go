// Package monitor implements an outer execution loop for the machine that
// supports breakpoints, a cycle budget and cancellation between instructions.
package monitor

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8vm/cpu"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// StopReason describes why a monitored run returned without error.
type StopReason int

// Stop reasons.
const (
	Halted StopReason = iota
	Breakpoint
	CycleLimit
)

func (r StopReason) String() string {
	switch r {
	case Halted:
		return "halted"
	case Breakpoint:
		return "breakpoint"
	case CycleLimit:
		return "cycle limit"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// machine defines the minimal interface needed from the machine.
type machine interface {
	// Halted returns whether the machine executed the halt opcode.
	Halted() bool
	// State returns the machine state.
	State() *cpu.State
	// Step executes a single instruction.
	Step() error
}

// Monitor drives a machine one instruction at a time.
type Monitor struct {
	logger  *log.Logger
	machine machine

	breakpoints set.Set[uint16]
	cycleLimit  uint64 // 0 disables the limit
}

// New returns a new monitor for the passed machine.
func New(logger *log.Logger, m machine) *Monitor {
	return &Monitor{
		logger:      logger,
		machine:     m,
		breakpoints: set.New[uint16](),
	}
}

// AddBreakpoint stops a run before the instruction at the given address is executed.
func (m *Monitor) AddBreakpoint(address uint16) {
	m.breakpoints.Add(address)
}

// ClearBreakpoints removes all breakpoints.
func (m *Monitor) ClearBreakpoints() {
	m.breakpoints = set.New[uint16]()
}

// SetCycleLimit sets the maximum number of instructions that a single run executes.
func (m *Monitor) SetCycleLimit(cycles uint64) {
	m.cycleLimit = cycles
}

// Run executes instructions until the machine halts, a breakpoint or the cycle
// limit is reached, the context is cancelled or a fatal error occurs.
// A run that starts on a breakpoint executes that instruction, which allows
// resuming after a breakpoint was hit.
func (m *Monitor) Run(ctx context.Context) (StopReason, error) {
	var cycles uint64

	for {
		if m.machine.Halted() {
			return Halted, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("running machine: %w", err)
		}

		pc := m.machine.State().PC
		if cycles > 0 && m.breakpoints.Contains(pc) {
			m.logger.Debug("Breakpoint hit", log.Hex("address", pc))
			return Breakpoint, nil
		}
		if m.cycleLimit > 0 && cycles >= m.cycleLimit {
			m.logger.Debug("Cycle limit reached",
				log.Hex("address", pc),
				log.Int("cycles", int(cycles)))
			return CycleLimit, nil
		}

		if err := m.machine.Step(); err != nil {
			return 0, err
		}
		cycles++
	}
}
