// Package cpu implements a virtual machine core for CHIP-8 programs.
//
// # Machine State
//
// The machine has 4KB of memory (0x000-0xFFF), 16 general-purpose 8-bit
// registers (V0-VF), a 16 entry call stack of return addresses and a program
// counter. Register VF doubles as the carry flag of register to register
// addition. All state lives in a single State value that is owned by the CPU
// for the duration of a run.
//
// # Execution
//
// Every cycle fetches the big-endian 16 bit opcode at the program counter,
// advances the program counter by 2, decodes the opcode through an
// InstructionSet and executes the matching handler. The opcode 0x0000 halts
// the machine. Opcodes without a handler, stack underflow and overflow and
// memory accesses outside of the 4KB address space are fatal and stop the
// machine with an *ExecutionError.
//
// # Usage Example
//
//	c, err := cpu.New(logger, options.NewMachine(), display.NewRecorder())
//	if err != nil {
//		return err
//	}
//	if err := c.State().Load(options.ProgramStart, rom); err != nil {
//		return err
//	}
//	if err := c.Run(); err != nil {
//		return fmt.Errorf("running program: %w", err)
//	}
//	fmt.Println(c.State().Registers[0])
//
// # Supported Operations
//
//   - Flow control: CLS, RET, JP addr, CALL addr
//   - Conditional skips: SE Vx, byte; SNE Vx, byte; SE Vx, Vy
//   - Loads: LD Vx, byte; LD Vx, Vy
//   - Arithmetic and logic: ADD Vx, byte; OR, AND, XOR, ADD Vx, Vy
//
// Further opcodes can be registered with InstructionSet.Add.
package cpu
