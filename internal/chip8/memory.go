package chip8

import "fmt"

// Memory is the flat addressable byte array of the machine. It holds the
// font glyphs and the loaded program. Access beyond the address space is a
// structural hazard: the checked accessors return a *BoundsError instead of
// wrapping or aliasing memory.
type Memory [MemorySize]byte

// BoundsError reports a memory access outside the 4KB address space.
// It signals a structural violation distinct from the recoverable per-step
// diagnostics, so the host can decide whether to halt stepping.
type BoundsError struct {
	Op   string // operation that caused the access, e.g. "fetch"
	Addr int    // first address outside the address space
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: memory address %#04x out of bounds", e.Op, e.Addr)
}

// read returns the byte at addr.
func (m *Memory) read(op string, addr int) (byte, error) {
	if addr >= MemorySize {
		return 0, &BoundsError{Op: op, Addr: addr}
	}
	return m[addr], nil
}

// slice returns the n bytes starting at addr.
func (m *Memory) slice(op string, addr, n int) ([]byte, error) {
	if addr+n > MemorySize {
		first := MemorySize
		if addr > first {
			first = addr
		}
		return nil, &BoundsError{Op: op, Addr: first}
	}
	return m[addr : addr+n], nil
}

// write stores value at addr.
func (m *Memory) write(op string, addr int, value byte) error {
	if addr >= MemorySize {
		return &BoundsError{Op: op, Addr: addr}
	}
	m[addr] = value
	return nil
}
