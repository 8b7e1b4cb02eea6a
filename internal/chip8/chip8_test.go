package chip8

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// newTestEmulator creates an emulator with the given program loaded at
// ProgramStart and returns it together with its diagnostic sink.
func newTestEmulator(t *testing.T, program ...byte) (*Emulator, *Log) {
	t.Helper()

	logs := &Log{}
	emu, err := New(program, logs)
	assert.NoError(t, err)
	assert.NotNil(t, emu)
	return emu, logs
}

func TestNew(t *testing.T) {
	rom := []byte{0x12, 0x00, 0x60, 0xFF}
	emu, logs := newTestEmulator(t, rom...)

	assert.True(t, bytes.Equal(rom, emu.mem[ProgramStart:ProgramStart+len(rom)]))
	assert.True(t, bytes.Equal(font[:], emu.mem[FontStart:FontStart+len(font)]))

	assert.Equal(t, uint16(ProgramStart), emu.pc)
	assert.Equal(t, uint16(0), emu.i)
	for i := range emu.v {
		assert.Equal(t, byte(0), emu.v[i])
	}
	assert.Len(t, emu.stack, 0)
	assert.Equal(t, 0, logs.Len())

	// memory outside font and program areas stays zero filled
	assert.Equal(t, byte(0), emu.mem[0])
	assert.Equal(t, byte(0), emu.mem[MemorySize-1])
}

func TestNewROMTooBig(t *testing.T) {
	tests := []struct {
		name    string
		romSize int
		wantErr bool
	}{
		{"empty", 0, false},
		{"maximum size", MaxROMSize, false},
		{"one byte too big", MaxROMSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := &Log{}
			emu, err := New(make([]byte, tt.romSize), logs)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrROMTooBig))
				assert.Nil(t, emu)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, emu)
			}
		})
	}
}

func TestNewOddLengthAdvisory(t *testing.T) {
	logs := &Log{}
	emu, err := New([]byte{0x12, 0x00, 0x60}, logs)
	assert.NoError(t, err)
	assert.NotNil(t, emu)

	entries := logs.Drain()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Warning: ROM size 3 is odd. This may cause undefined behaviors.", entries[0])
}

func TestErrROMTooBigMessage(t *testing.T) {
	assert.Equal(t, "ROM size too big", ErrROMTooBig.Error())
}

func TestLogDrain(t *testing.T) {
	logs := &Log{}
	assert.Equal(t, 0, logs.Len())

	logs.Append("first")
	logs.Append("second")
	assert.Equal(t, 2, logs.Len())

	entries := logs.Drain()
	assert.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0])
	assert.Equal(t, "second", entries[1])
	assert.Equal(t, 0, logs.Len())
	assert.Len(t, logs.Drain(), 0)
}

func TestEmulatorAccessors(t *testing.T) {
	emu, _ := newTestEmulator(t, 0x00, 0xE0)

	assert.Equal(t, uint16(ProgramStart), emu.PC())
	assert.NotNil(t, emu.Screen())
	assert.Equal(t, uint64(0), emu.Screen().Version())
}
