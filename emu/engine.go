// Package emu drives an engine instance: it runs the fixed-rate emulation
// cadence and the display-refresh cadence against a single engine handle
// and owns their startup and teardown.
package emu

import "context"

// Logical dimensions of the engine framebuffer.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Instance is the capability set consumed from an engine instance. The
// driver owns exactly one instance per activation cycle and never shares
// it.
type Instance interface {
	// Load copies ROM bytes into instance memory. Behavior on invalid
	// content is the engine's concern, not checked here.
	Load(rom []byte)

	// Step advances one instruction.
	Step()

	// DecrementTimers advances the two internal 60 Hz countdown registers
	// by one.
	DecrementTimers()

	// Screen returns the framebuffer state. The returned array may be a
	// live view into engine memory, valid only until the next mutating
	// call.
	Screen() *[ScreenHeight][ScreenWidth]bool
}

// Module is an initialized engine module from which instances are created.
type Module interface {
	NewInstance() Instance
}

// ModuleSource initializes an engine module. Init fails on a malformed
// module.
type ModuleSource interface {
	Init(ctx context.Context) (Module, error)
}
