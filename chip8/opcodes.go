package chip8

import "fmt"

// exec decodes and executes op, then updates the program counter.
//
// Opcode semantics follow Cowgod's Chip-8 Technical Reference v1.0,
// http://devernay.free.fr/hacks/chip8/C8TECH10.HTM. Quirk choices: 8xy6 and
// 8xyE shift Vx in place, Fx55 and Fx65 leave I untouched, Bnnn jumps to
// nnn+V0, Dxyn wraps on both axes.
func (p *Program) exec(op uint16) {
	var (
		x   = op >> 8 & 0xF
		y   = op >> 4 & 0xF
		n   = byte(op & 0xF)
		nn  = byte(op)
		nnn = op & 0xFFF
	)

	next := p.pc + 2
	skip := p.pc + 4

	switch op >> 12 {
	case 0x0:
		switch op & 0xFF {
		case 0xE0: // CLS
			p.screen = [ScreenHeight][ScreenWidth]bool{}
		case 0xEE: // RET
			p.sp--
			next = p.stack[p.sp]
		default:
			p.invalid(op)
		}
	case 0x1: // JP nnn
		next = nnn
	case 0x2: // CALL nnn
		p.stack[p.sp] = p.pc + 2
		p.sp++
		next = nnn
	case 0x3: // SE Vx, nn
		if p.v[x] == nn {
			next = skip
		}
	case 0x4: // SNE Vx, nn
		if p.v[x] != nn {
			next = skip
		}
	case 0x5: // SE Vx, Vy
		if n != 0 {
			p.invalid(op)
		}
		if p.v[x] == p.v[y] {
			next = skip
		}
	case 0x6: // LD Vx, nn
		p.v[x] = nn
	case 0x7: // ADD Vx, nn
		p.v[x] += nn
	case 0x8:
		switch n {
		case 0x0: // LD Vx, Vy
			p.v[x] = p.v[y]
		case 0x1: // OR Vx, Vy
			p.v[x] |= p.v[y]
		case 0x2: // AND Vx, Vy
			p.v[x] &= p.v[y]
		case 0x3: // XOR Vx, Vy
			p.v[x] ^= p.v[y]
		case 0x4: // ADD Vx, Vy with carry
			sum := uint16(p.v[x]) + uint16(p.v[y])
			p.v[x] = byte(sum)
			if sum > 0xFF {
				p.v[0xF] = 1
			} else {
				p.v[0xF] = 0
			}
		case 0x5: // SUB Vx, Vy, VF = NOT borrow
			if p.v[x] > p.v[y] {
				p.v[0xF] = 1
			} else {
				p.v[0xF] = 0
			}
			p.v[x] -= p.v[y]
		case 0x6: // SHR Vx
			p.v[0xF] = p.v[x] & 1
			p.v[x] >>= 1
		case 0x7: // SUBN Vx, Vy
			if p.v[y] > p.v[x] {
				p.v[0xF] = 1
			} else {
				p.v[0xF] = 0
			}
			p.v[x] = p.v[y] - p.v[x]
		case 0xE: // SHL Vx
			p.v[0xF] = p.v[x] >> 7 & 1
			p.v[x] <<= 1
		default:
			p.invalid(op)
		}
	case 0x9: // SNE Vx, Vy
		if n != 0 {
			p.invalid(op)
		}
		if p.v[x] != p.v[y] {
			next = skip
		}
	case 0xA: // LD I, nnn
		p.i = nnn
	case 0xB: // JP V0, nnn
		next = nnn + uint16(p.v[0])
	case 0xC: // RND Vx, nn
		p.v[x] = p.randByte() & nn
	case 0xD: // DRW Vx, Vy, n
		p.draw(x, y, n)
	case 0xE:
		switch op & 0xFF {
		case 0x9E: // SKP Vx
			if p.keypad[p.v[x]] {
				next = skip
			}
		case 0xA1: // SKNP Vx
			if !p.keypad[p.v[x]] {
				next = skip
			}
		default:
			p.invalid(op)
		}
	case 0xF:
		switch op & 0xFF {
		case 0x07: // LD Vx, DT
			p.v[x] = p.delay
		case 0x0A: // LD Vx, K
			// Blocks until a key is down: stay on this instruction until
			// then.
			key, down := p.firstKeyDown()
			if !down {
				next = p.pc
				break
			}
			p.v[x] = key
		case 0x15: // LD DT, Vx
			p.delay = p.v[x]
		case 0x18: // LD ST, Vx
			p.sound = p.v[x]
		case 0x1E: // ADD I, Vx
			p.i += uint16(p.v[x])
		case 0x29: // LD F, Vx
			p.i = uint16(p.v[x]) * 5
		case 0x33: // LD B, Vx
			p.mem[p.i] = p.v[x] / 100
			p.mem[p.i+1] = p.v[x] % 100 / 10
			p.mem[p.i+2] = p.v[x] % 10
		case 0x55: // LD [I], Vx
			copy(p.mem[p.i:], p.v[:x+1])
		case 0x65: // LD Vx, [I]
			copy(p.v[:x+1], p.mem[p.i:])
		default:
			p.invalid(op)
		}
	}
	p.pc = next
}

// draw XORs an n-byte sprite read from memory at I onto the screen at
// (Vx, Vy), wrapping on both axes. VF reports whether a set pixel was
// erased.
func (p *Program) draw(x, y uint16, n byte) {
	p.v[0xF] = 0
	for row := range int(n) {
		line := (int(p.v[y]) + row) % ScreenHeight
		bits := p.mem[int(p.i)+row]
		for col := range 8 {
			px := (int(p.v[x]) + col) % ScreenWidth
			bit := bits>>(7-col)&1 == 1
			if bit && p.screen[line][px] {
				p.v[0xF] = 1
			}
			p.screen[line][px] = p.screen[line][px] != bit
		}
	}
}

func (p *Program) firstKeyDown() (byte, bool) {
	for key, down := range p.keypad {
		if down {
			return byte(key), true
		}
	}
	return 0, false
}

func (p *Program) invalid(op uint16) {
	panic(fmt.Sprintf("chip8: invalid instruction %04x at %04x", op, p.pc))
}
