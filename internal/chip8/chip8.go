// Package chip8 implements the CHIP-8 virtual machine core.
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games. The package models the machine state (memory, registers,
// call stack, framebuffer) and executes one instruction per Step call;
// window creation, pacing and rendering are host concerns.
package chip8

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter reserved area, holds the font glyphs (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the total addressable memory of the machine.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	// Programs are stored starting at offset 0x0 in ROM files but loaded and
	// executed at address 0x200.
	ProgramStart = 0x200

	// MaxROMSize is the largest program image that fits below the end of memory.
	MaxROMSize = MemorySize - ProgramStart

	// FontStart is the memory address of the built-in font glyphs.
	// 16 glyphs (digits 0-F) of 5 bytes each occupy 0x050-0x09F.
	FontStart = 0x050

	// NumRegisters is the number of general purpose 8-bit registers V0-VF.
	NumRegisters = 16
)

// ErrROMTooBig is returned when a program image does not fit into the user
// program space.
var ErrROMTooBig = errors.New("ROM size too big")

// font contains the built-in glyphs for the hexadecimal digits 0-F,
// one 8x5 pixel sprite of 5 bytes per digit.
var font = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Emulator holds the complete state of a CHIP-8 machine. All state is created
// together by New and owned exclusively by the caller; the zero value is not
// usable. Step mutates the state one instruction at a time.
type Emulator struct {
	mem    Memory
	v      [NumRegisters]byte
	i      uint16
	pc     uint16
	stack  CallStack
	screen Screen
}

// New creates an emulator with the given program image loaded at
// ProgramStart. It returns ErrROMTooBig if the image does not fit into the
// user program space. An odd-length image is accepted but produces an
// advisory in the diagnostic sink, as the last byte will pair with a padding
// zero on fetch.
func New(rom []byte, logs *Log) (*Emulator, error) {
	if len(rom) > MaxROMSize {
		return nil, ErrROMTooBig
	}

	emu := &Emulator{
		pc: ProgramStart,
	}
	copy(emu.mem[FontStart:], font[:])
	copy(emu.mem[ProgramStart:], rom)

	if len(rom)%2 != 0 {
		logs.Append(fmt.Sprintf("Warning: ROM size %d is odd. This may cause undefined behaviors.", len(rom)))
	}

	return emu, nil
}

// PC returns the current program counter.
func (e *Emulator) PC() uint16 {
	return e.pc
}

// Screen returns the machine framebuffer. Outside this package the screen is
// read only; it is mutated solely by the clear and draw instructions.
func (e *Emulator) Screen() *Screen {
	return &e.screen
}
