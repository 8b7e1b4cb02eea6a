// Package options contains the program options.
package options

// Default option values.
const (
	// DefaultRate is the number of instruction steps executed per second,
	// roughly the speed classic CHIP-8 interpreters ran at.
	DefaultRate = 700

	// DefaultScale is the number of window pixels per CHIP-8 pixel,
	// resulting in a 1024x512 window.
	DefaultScale = 16
)

// Program options of the emulator.
type Program struct {
	Input string // ROM file to load

	Rate  int // instruction steps per second
	Scale int // window pixels per CHIP-8 pixel
	Steps int // headless mode: number of steps to run, 0 opens a window

	Dump  bool // print the final framebuffer after a headless run
	Trace bool // log every executed instruction
	Debug bool
	Quiet bool
}
