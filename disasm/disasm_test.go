package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected *chip8.Instruction
	}{
		{"jump", 0x1234, chip8.Jp},
		{"call", 0x2100, chip8.Call},
		{"skip equal immediate", 0x3A42, chip8.Se},
		{"skip not equal immediate", 0x4A42, chip8.Sne},
		{"load immediate", 0x6A42, chip8.Ld},
		{"add immediate", 0x7A42, chip8.Add},
		{"bitwise or", 0x8011, chip8.Or},
		{"bitwise and", 0x8012, chip8.And},
		{"bitwise xor", 0x8013, chip8.Xor},
		{"add registers", 0x8014, chip8.Add},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, ok := Lookup(tt.opcode)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, ins)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected string
	}{
		{"jump", 0x1234, chip8.Jp.Name + " $234"},
		{"call", 0x2100, chip8.Call.Name + " $100"},
		{"skip equal immediate", 0x3A42, chip8.Se.Name + " VA, $42"},
		{"skip not equal immediate", 0x4B07, chip8.Sne.Name + " VB, $07"},
		{"skip equal registers", 0x5120, chip8.Se.Name + " V1, V2"},
		{"load immediate", 0x6C05, chip8.Ld.Name + " VC, $05"},
		{"add immediate", 0x7DFF, chip8.Add.Name + " VD, $FF"},
		{"copy register", 0x8230, chip8.Ld.Name + " V2, V3"},
		{"bitwise xor", 0x8453, chip8.Xor.Name + " V4, V5"},
		{"add registers", 0x8014, chip8.Add.Name + " V0, V1"},
		{"unknown", 0xFFFF, ".word $FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.opcode))
		})
	}
}
