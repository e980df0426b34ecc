package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/chip8vm/cpu"
	"github.com/retroenv/chip8vm/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestMonitor(t *testing.T, program ...byte) (*Monitor, *cpu.CPU) {
	t.Helper()

	logger := log.NewTestLogger(t)
	c, err := cpu.New(logger, options.NewMachine(), nil)
	assert.NoError(t, err)
	assert.NoError(t, c.State().Load(options.ProgramStart, program))
	return New(logger, c), c
}

func TestMonitor_RunUntilHalt(t *testing.T) {
	m, c := newTestMonitor(t,
		0x60, 0x01, // ld V0, $01
		0x70, 0x01, // add V0, $01
		0x00, 0x00,
	)

	reason, err := m.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Halted, reason)
	assert.Equal(t, uint8(2), c.State().Registers[0])

	reason, err = m.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Halted, reason)
}

func TestMonitor_Breakpoint(t *testing.T) {
	m, c := newTestMonitor(t,
		0x60, 0x01, // ld V0, $01
		0x70, 0x01, // add V0, $01
		0x70, 0x01, // add V0, $01
		0x00, 0x00,
	)
	m.AddBreakpoint(0x204)

	reason, err := m.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Breakpoint, reason)
	assert.Equal(t, uint16(0x204), c.State().PC)
	assert.Equal(t, uint8(2), c.State().Registers[0])

	// resuming executes the instruction at the breakpoint
	reason, err = m.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Halted, reason)
	assert.Equal(t, uint8(3), c.State().Registers[0])
}

func TestMonitor_BreakpointInLoop(t *testing.T) {
	m, c := newTestMonitor(t,
		0x70, 0x01, // add V0, $01
		0x12, 0x00, // jp $200
	)
	m.AddBreakpoint(0x200)

	for i := 1; i <= 3; i++ {
		reason, err := m.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, Breakpoint, reason)
		assert.Equal(t, uint8(i), c.State().Registers[0])
	}

	m.ClearBreakpoints()
	m.SetCycleLimit(10)
	reason, err := m.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, reason)
	assert.Equal(t, uint8(8), c.State().Registers[0])
}

func TestMonitor_CycleLimit(t *testing.T) {
	m, c := newTestMonitor(t,
		0x12, 0x00, // jp $200
	)
	m.SetCycleLimit(100)

	reason, err := m.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, reason)
	assert.Equal(t, uint64(100), c.Cycles())
}

func TestMonitor_ContextCancelled(t *testing.T) {
	m, c := newTestMonitor(t,
		0x12, 0x00, // jp $200
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), c.Cycles())
}

func TestMonitor_FatalError(t *testing.T) {
	m, _ := newTestMonitor(t,
		0xFF, 0xFF,
	)

	_, err := m.Run(context.Background())
	assert.True(t, errors.Is(err, cpu.ErrUnimplementedOpcode))
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "halted", Halted.String())
	assert.Equal(t, "breakpoint", Breakpoint.String())
	assert.Equal(t, "cycle limit", CycleLimit.String())
	assert.Equal(t, "StopReason(7)", StopReason(7).String())
}
