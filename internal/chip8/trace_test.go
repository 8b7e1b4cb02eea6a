package chip8

import (
	"fmt"
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		b0, b1   byte
		expected string
	}{
		{"cls", 0x00, 0xE0, chip8cpu.ClsName},
		{"ret", 0x00, 0xEE, chip8cpu.RetName},
		{"jp", 0x12, 0x34, chip8cpu.JpName},
		{"call", 0x23, 0x45, chip8cpu.CallName},
		{"drw", 0xD1, 0x25, chip8cpu.DrwName},
		{"unknown word", 0xFF, 0xFF, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mnemonic(tt.b0, tt.b1))
		})
	}
}

func TestTrace(t *testing.T) {
	emu, _ := newTestEmulator(t, 0x00, 0xE0)

	expected := fmt.Sprintf("0200: 00e0 %s", chip8cpu.ClsName)
	assert.Equal(t, expected, emu.Trace())
}

func TestTraceOutOfBounds(t *testing.T) {
	emu, _ := newTestEmulator(t)
	emu.pc = MemorySize - 1

	assert.Equal(t, "0fff: <out of bounds>", emu.Trace())
}
