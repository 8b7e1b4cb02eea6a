package chip8

import "fmt"

// Step executes exactly one fetch-decode-execute cycle. Recoverable
// conditions such as an unknown instruction or a return on an empty call
// stack append a diagnostic to logs and execution continues at the next
// instruction. A memory access outside the address space returns a
// *BoundsError; the machine state is then no longer advancing and the host
// decides whether to stop stepping.
func (e *Emulator) Step(logs *Log) error {
	b0, err := e.mem.read("fetch", int(e.pc))
	if err != nil {
		return err
	}
	b1, err := e.mem.read("fetch", int(e.pc)+1)
	if err != nil {
		return err
	}

	opcat := b0 >> 4
	x := b0 & 0xF
	y := b1 >> 4
	n := b1 & 0xF
	nn := b1
	nnn := uint16(x)<<8 | uint16(nn)

	// The program counter moves past the instruction before dispatch so that
	// skips and calls compose with the already advanced value.
	e.pc += 2

	switch {
	// 00E0 - CLS
	case opcat == 0x0 && nnn == 0x0E0:
		e.screen.clear()

	// 00EE - RET
	case opcat == 0x0 && nnn == 0x0EE:
		addr, ok := e.stack.pop()
		if !ok {
			logs.Append("Warning: attempted to return while stack is empty.")
			break
		}
		e.pc = addr

	// 1NNN - JP addr
	case opcat == 0x1:
		e.pc = nnn

	// 2NNN - CALL addr
	case opcat == 0x2:
		e.stack.push(e.pc)
		e.pc = nnn

	// 3XNN - SE Vx, byte
	case opcat == 0x3:
		if e.v[x] == nn {
			e.pc += 2
		}

	// 4XNN - SNE Vx, byte
	case opcat == 0x4:
		if e.v[x] != nn {
			e.pc += 2
		}

	// 5XY0 - SE Vx, Vy
	case opcat == 0x5 && n == 0x0:
		if e.v[x] == e.v[y] {
			e.pc += 2
		}

	// 6XNN - LD Vx, byte
	case opcat == 0x6:
		e.v[x] = nn

	// 7XNN - ADD Vx, byte (no carry flag)
	case opcat == 0x7:
		e.v[x] += nn

	// 8XY0 - LD Vx, Vy
	case opcat == 0x8 && n == 0x0:
		e.v[x] = e.v[y]

	// 8XY1 - OR Vx, Vy
	case opcat == 0x8 && n == 0x1:
		e.v[x] |= e.v[y]

	// 8XY2 - AND Vx, Vy
	case opcat == 0x8 && n == 0x2:
		e.v[x] &= e.v[y]

	// 8XY3 - XOR Vx, Vy
	case opcat == 0x8 && n == 0x3:
		e.v[x] ^= e.v[y]

	// 8XY4 - ADD Vx, Vy with carry
	case opcat == 0x8 && n == 0x4:
		sum := uint16(e.v[x]) + uint16(e.v[y])
		e.v[x] = byte(sum)
		e.v[0xF] = 0
		if sum > 0xFF {
			e.v[0xF] = 1
		}

	// 8XY5 - SUB Vx, Vy, VF = not borrow
	case opcat == 0x8 && n == 0x5:
		noBorrow := e.v[x] >= e.v[y]
		e.v[x] -= e.v[y]
		e.v[0xF] = 0
		if noBorrow {
			e.v[0xF] = 1
		}

	// 8XY6 - SHR Vx: Vy is copied into Vx first, the shifted out bit goes
	// into VF. Some CHIP-8 variants shift Vx in place instead.
	case opcat == 0x8 && n == 0x6:
		e.v[x] = e.v[y]
		flag := e.v[x] & 0x1
		e.v[x] >>= 1
		e.v[0xF] = flag

	// 8XY7 - SUBN Vx, Vy, VF = not borrow
	case opcat == 0x8 && n == 0x7:
		noBorrow := e.v[y] >= e.v[x]
		e.v[x] = e.v[y] - e.v[x]
		e.v[0xF] = 0
		if noBorrow {
			e.v[0xF] = 1
		}

	// 8XYE - SHL Vx: Vy is copied into Vx first. The carry test is a strict
	// > 0x80 comparison, VF stays 0 for exactly 0x80.
	case opcat == 0x8 && n == 0xE:
		e.v[x] = e.v[y]
		var flag byte
		if e.v[x] > 0x80 {
			flag = 1
		}
		e.v[x] <<= 1
		e.v[0xF] = flag

	// 9XY0 - SNE Vx, Vy
	case opcat == 0x9 && n == 0x0:
		if e.v[x] != e.v[y] {
			e.pc += 2
		}

	// ANNN - LD I, addr
	case opcat == 0xA:
		e.i = nnn

	// DXYN - DRW Vx, Vy, nibble
	case opcat == 0xD:
		sprite, err := e.mem.slice("sprite fetch", int(e.i), int(n))
		if err != nil {
			return err
		}
		collision := e.screen.drawSprite(sprite, e.v[x]%ScreenWidth, e.v[y]%ScreenHeight)
		e.v[0xF] = 0
		if collision {
			e.v[0xF] = 1
		}

	// FX33 - LD B, Vx: binary-coded decimal decomposition
	case opcat == 0xF && nn == 0x33:
		value := e.v[x]
		for offset, digit := range [3]byte{value / 100, value / 10 % 10, value % 10} {
			if err := e.mem.write("bcd store", int(e.i)+offset, digit); err != nil {
				return err
			}
		}

	// FX55 - LD [I], Vx: store V0..Vx at I
	case opcat == 0xF && nn == 0x55:
		buf, err := e.mem.slice("register store", int(e.i), int(x)+1)
		if err != nil {
			return err
		}
		copy(buf, e.v[:int(x)+1])

	// FX65 - LD Vx, [I]: load V0..Vx from I
	case opcat == 0xF && nn == 0x65:
		buf, err := e.mem.slice("register load", int(e.i), int(x)+1)
		if err != nil {
			return err
		}
		copy(e.v[:int(x)+1], buf)

	default:
		logs.Append(fmt.Sprintf("Unknown instruction %x%x; skipping", b0, b1))
	}

	return nil
}
