// Package chip8 implements a CHIP-8 virtual machine: 4 KiB of memory,
// sixteen 8-bit registers, two 60 Hz countdown timers, a 16-key keypad and
// a 64x32 monochrome screen.
package chip8

import "math/rand/v2"

const (
	ScreenWidth  = 64
	ScreenHeight = 32

	memorySize = 4096
	loadAddr   = 0x200
)

// fontSprites are the built-in hexadecimal digit sprites, 5 bytes per
// digit, stored at the bottom of memory.
var fontSprites = [16][5]byte{
	{0xF0, 0x90, 0x90, 0x90, 0xF0}, // 0
	{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
	{0xF0, 0x10, 0xF0, 0x80, 0xF0}, // 2
	{0xF0, 0x10, 0xF0, 0x10, 0xF0}, // 3
	{0x90, 0x90, 0xF0, 0x10, 0x10}, // 4
	{0xF0, 0x80, 0xF0, 0x10, 0xF0}, // 5
	{0xF0, 0x80, 0xF0, 0x90, 0xF0}, // 6
	{0xF0, 0x10, 0x20, 0x40, 0x40}, // 7
	{0xF0, 0x90, 0xF0, 0x90, 0xF0}, // 8
	{0xF0, 0x90, 0xF0, 0x10, 0xF0}, // 9
	{0xF0, 0x90, 0xF0, 0x90, 0x90}, // A
	{0xE0, 0x90, 0xE0, 0x90, 0xE0}, // B
	{0xF0, 0x80, 0x80, 0x80, 0xF0}, // C
	{0xE0, 0x90, 0x90, 0x90, 0xE0}, // D
	{0xF0, 0x80, 0xF0, 0x80, 0xF0}, // E
	{0xF0, 0x80, 0xF0, 0x80, 0x80}, // F
}

// Program is a CHIP-8 machine. The zero value is not usable, call New.
type Program struct {
	mem    [memorySize]byte
	v      [16]byte
	i      uint16
	pc     uint16
	sp     byte
	stack  [16]uint16
	delay  byte
	sound  byte
	keypad [16]bool
	screen [ScreenHeight][ScreenWidth]bool

	randByte func() byte
}

func New() *Program {
	p := &Program{
		pc:       loadAddr,
		randByte: func() byte { return byte(rand.Uint32()) },
	}

	off := 0
	for _, sprite := range fontSprites {
		copy(p.mem[off:], sprite[:])
		off += len(sprite)
	}
	return p
}

// Load copies rom into memory at the program load address. Content that
// does not fit in memory is truncated.
func (p *Program) Load(rom []byte) {
	copy(p.mem[loadAddr:], rom)
}

// Step fetches and executes a single instruction.
func (p *Program) Step() {
	op := uint16(p.mem[p.pc])<<8 | uint16(p.mem[p.pc+1])
	p.exec(op)
}

// DecrementTimers advances the two 60 Hz countdown registers by one tick.
// Timers stop at zero.
func (p *Program) DecrementTimers() {
	if p.delay > 0 {
		p.delay--
	}
	if p.sound > 0 {
		p.sound--
	}
}

// Screen returns the current display state. The returned array is a live
// view into machine memory, only valid until the next Step or Load.
func (p *Program) Screen() *[ScreenHeight][ScreenWidth]bool {
	return &p.screen
}

func (p *Program) KeyDown(key byte) { p.keypad[key&0xF] = true }
func (p *Program) KeyUp(key byte)   { p.keypad[key&0xF] = false }

func (p *Program) DelayTimer() byte { return p.delay }
func (p *Program) SoundTimer() byte { return p.sound }
func (p *Program) PC() uint16       { return p.pc }
