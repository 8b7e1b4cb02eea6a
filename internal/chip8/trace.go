package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the assembler mnemonic for the instruction word formed by
// b0 and b1, based on the canonical CHIP-8 opcode table. It returns an empty
// string for words that match no instruction. Note that the table covers the
// full instruction set; the executor treats the timer and keypad
// instructions as unknown because the machine does not implement them.
func Mnemonic(b0, b1 byte) string {
	w := uint16(b0)<<8 | uint16(b1)
	firstNibble := (w & 0xF000) >> 12

	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&w == op.Info.Value {
			if op.Instruction == nil {
				return ""
			}
			return op.Instruction.Name
		}
	}
	return ""
}

// Trace describes the instruction at the current program counter without
// mutating state, for example "0200: 00e0 cls". The host logs it at debug
// level when instruction tracing is enabled.
func (e *Emulator) Trace() string {
	b0, err := e.mem.read("fetch", int(e.pc))
	if err != nil {
		return fmt.Sprintf("%04x: <out of bounds>", e.pc)
	}
	b1, err := e.mem.read("fetch", int(e.pc)+1)
	if err != nil {
		return fmt.Sprintf("%04x: <out of bounds>", e.pc)
	}

	name := Mnemonic(b0, b1)
	if name == "" {
		name = "???"
	}
	return fmt.Sprintf("%04x: %02x%02x %s", e.pc, b0, b1, name)
}
