package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCallStack(t *testing.T) {
	var stack CallStack

	_, ok := stack.pop()
	assert.False(t, ok)

	stack.push(0x202)
	stack.push(0x300)
	assert.Len(t, stack, 2)

	addr, ok := stack.pop()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x300), addr)

	addr, ok = stack.pop()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x202), addr)

	_, ok = stack.pop()
	assert.False(t, ok)
}
