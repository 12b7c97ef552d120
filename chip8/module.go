package chip8

import (
	"context"

	"chirp8/emu"
)

// Source provides the built-in CHIP-8 engine to the emulator driver.
type Source struct{}

// Init implements emu.ModuleSource.
func (Source) Init(ctx context.Context) (emu.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Module{}, nil
}

// Module is an initialized CHIP-8 engine module.
type Module struct{}

// NewInstance implements emu.Module.
func (Module) NewInstance() emu.Instance {
	return New()
}
