// Package disasm formats CHIP-8 opcodes as assembly mnemonics.
// It is used by the machine for instruction tracing and diagnostics and resolves
// instruction names through the retrogolib CHIP-8 opcode table.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the instruction that the opcode encodes.
// The opcode table is grouped by the first nibble and every entry is matched by
// its mask and value.
func Lookup(opcode uint16) (*chip8.Instruction, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction, true
		}
	}
	return nil, false
}

// Format returns the opcode as an assembly line including its parameters.
// Opcodes that do not encode a known instruction are returned as a data word.
func Format(opcode uint16) string {
	ins, ok := Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParams(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// formatParams returns the formatted parameter string for the given instruction.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8.Cls.Name, chip8.Ret.Name:
		return ""
	case chip8.Jp.Name:
		return formatJump(opcode)
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.Se.Name, chip8.Sne.Name:
		return formatCompare(opcode)
	case chip8.Ld.Name:
		return formatLoad(opcode)
	case chip8.Add.Name:
		return formatAdd(opcode)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	}
	return ""
}

func formatJump(opcode uint16) string {
	switch opcode & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return ""
}

// formatCompare formats SE/SNE with either an immediate byte (3XNN, 4XNN)
// or a second register (5XY0, 9XY0).
func formatCompare(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

func formatLoad(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	}
	return ""
}

func formatAdd(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
