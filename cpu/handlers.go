package cpu

// Instructions of the machine.
var (
	Halt                  = &Instruction{Name: "halt", Handler: halt}
	ClearDisplay          = &Instruction{Name: "cls", Handler: clearDisplay}
	Return                = &Instruction{Name: "ret", Handler: ret}
	Jump                  = &Instruction{Name: "jp", Handler: jump}
	Call                  = &Instruction{Name: "call", Handler: call}
	SkipEqualImmediate    = &Instruction{Name: "se", Handler: skipEqualImmediate}
	SkipNotEqualImmediate = &Instruction{Name: "sne", Handler: skipNotEqualImmediate}
	SkipEqualRegisters    = &Instruction{Name: "se", Handler: skipEqualRegisters}
	LoadImmediate         = &Instruction{Name: "ld", Handler: loadImmediate}
	AddImmediate          = &Instruction{Name: "add", Handler: addImmediate}
	Copy                  = &Instruction{Name: "ld", Handler: copyRegister}
	Or                    = &Instruction{Name: "or", Handler: or}
	And                   = &Instruction{Name: "and", Handler: and}
	Xor                   = &Instruction{Name: "xor", Handler: xor}
	AddRegisters          = &Instruction{Name: "add", Handler: addRegisters}
)

var defaultOpcodes = []opcodeEntry{
	{0xFFFF, 0x0000, Halt},
	{0xFFFF, 0x00E0, ClearDisplay},
	{0xFFFF, 0x00EE, Return},
	{0xF000, 0x1000, Jump},
	{0xF000, 0x2000, Call},
	{0xF000, 0x3000, SkipEqualImmediate},
	{0xF000, 0x4000, SkipNotEqualImmediate},
	{0xF00F, 0x5000, SkipEqualRegisters},
	{0xF000, 0x6000, LoadImmediate},
	{0xF000, 0x7000, AddImmediate},
	{0xF00F, 0x8000, Copy},
	{0xF00F, 0x8001, Or},
	{0xF00F, 0x8002, And},
	{0xF00F, 0x8003, Xor},
	{0xF00F, 0x8004, AddRegisters},
}

// halt stops the machine, 0000.
func halt(c *CPU, _ Opcode) error {
	c.halted = true
	return nil
}

// clearDisplay signals the display to clear, 00E0.
func clearDisplay(c *CPU, _ Opcode) error {
	c.display.Clear()
	return nil
}

// ret returns from a subroutine, 00EE.
func ret(c *CPU, _ Opcode) error {
	address, err := c.state.Pop()
	if err != nil {
		return err
	}
	c.state.PC = address
	return nil
}

// jump sets the program counter to nnn, 1nnn.
func jump(c *CPU, op Opcode) error {
	c.state.PC = op.Addr()
	return nil
}

// call pushes the address of the following instruction and jumps to nnn, 2nnn.
func call(c *CPU, op Opcode) error {
	if err := c.state.Push(c.state.PC); err != nil {
		return err
	}
	c.state.PC = op.Addr()
	return nil
}

// skipEqualImmediate skips the next instruction if Vx == kk, 3xkk.
func skipEqualImmediate(c *CPU, op Opcode) error {
	c.skipIf(c.state.Registers[op.X()] == op.KK())
	return nil
}

// skipNotEqualImmediate skips the next instruction if Vx != kk, 4xkk.
func skipNotEqualImmediate(c *CPU, op Opcode) error {
	c.skipIf(c.state.Registers[op.X()] != op.KK())
	return nil
}

// skipEqualRegisters skips the next instruction if Vx == Vy, 5xy0.
func skipEqualRegisters(c *CPU, op Opcode) error {
	c.skipIf(c.state.Registers[op.X()] == c.state.Registers[op.Y()])
	return nil
}

// loadImmediate sets Vx = kk, 6xkk.
func loadImmediate(c *CPU, op Opcode) error {
	c.state.Registers[op.X()] = op.KK()
	return nil
}

// addImmediate sets Vx = Vx + kk, 7xkk. The carry is not reported.
func addImmediate(c *CPU, op Opcode) error {
	c.state.Registers[op.X()] += op.KK()
	return nil
}

// copyRegister sets Vx = Vy, 8xy0.
func copyRegister(c *CPU, op Opcode) error {
	c.state.Registers[op.X()] = c.state.Registers[op.Y()]
	return nil
}

// or sets Vx = Vx OR Vy, 8xy1.
func or(c *CPU, op Opcode) error {
	c.state.Registers[op.X()] |= c.state.Registers[op.Y()]
	return nil
}

// and sets Vx = Vx AND Vy, 8xy2.
func and(c *CPU, op Opcode) error {
	c.state.Registers[op.X()] &= c.state.Registers[op.Y()]
	return nil
}

// xor sets Vx = Vx XOR Vy, 8xy3.
func xor(c *CPU, op Opcode) error {
	c.state.Registers[op.X()] ^= c.state.Registers[op.Y()]
	return nil
}

// addRegisters sets Vx = Vx + Vy and VF = carry, 8xy4.
// VF is written last, so it holds the carry even if it is the target register.
func addRegisters(c *CPU, op Opcode) error {
	sum := uint16(c.state.Registers[op.X()]) + uint16(c.state.Registers[op.Y()])
	c.state.Registers[op.X()] = uint8(sum)

	var carry uint8
	if sum > 0xFF {
		carry = 1
	}
	c.state.Registers[FlagRegister] = carry
	return nil
}
