package chip8

// CallStack holds the return addresses of active subroutine calls.
// Addresses are pushed and popped at the tail. Classic CHIP-8 hardware caps
// the depth at 16 levels; no cap is enforced here, a well-formed program
// never comes close and a runaway one fails at the fetch bounds check first.
type CallStack []uint16

// push appends a return address.
func (s *CallStack) push(addr uint16) {
	*s = append(*s, addr)
}

// pop removes and returns the most recently pushed address.
// It reports false if the stack is empty.
func (s *CallStack) pop() (uint16, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	addr := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return addr, true
}
