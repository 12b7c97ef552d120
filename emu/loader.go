package emu

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"chirp8/emu/log"
	"chirp8/rom"
)

// Loader joins the two asynchronous halves of producing a runnable engine:
// fetching the ROM bytes and initializing the engine module. Either
// failure aborts the whole load, nothing is retried and no instance is
// constructed.
type Loader struct {
	src      ModuleSource
	location string

	fetch func(ctx context.Context, location string) ([]byte, error)
}

func NewLoader(src ModuleSource, location string) *Loader {
	return &Loader{src: src, location: location, fetch: rom.Fetch}
}

// Load fetches the ROM and initializes the engine module concurrently,
// then constructs an instance and loads the bytes into it. Malformed or
// oversized ROM content is the engine's own concern.
func (l *Loader) Load(ctx context.Context) (Instance, error) {
	var (
		data []byte
		mod  Module
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if data, err = l.fetch(ctx, l.location); err != nil {
			return fmt.Errorf("fetch rom: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if mod, err = l.src.Init(ctx); err != nil {
			return fmt.Errorf("init engine module: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.ModRom.Infof("loaded %d bytes from %s", len(data), l.location)

	inst := mod.NewInstance()
	inst.Load(data)
	return inst, nil
}
