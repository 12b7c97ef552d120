// Package hw hosts the SDL side of the emulator: the window and renderer,
// the cooperative callback loop, keyboard input and the buzzer.
package hw

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"chirp8/emu"
)

// Video owns the SDL window and renderer and exposes them as the raster
// surface the emu renderer paints to.
type Video struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	vsync    bool
}

// NewVideo creates the emulator window, sized to the logical screen grid
// times cfg.Scale. Must be called from the SDL main thread.
func NewVideo(title string, cfg emu.VideoConfig) (*Video, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %s", err)
	}

	winw := int32(emu.ScreenWidth) * cfg.Scale
	winh := int32(emu.ScreenHeight) * cfg.Scale
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winw, winh,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %s", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if !cfg.DisableVSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %s", err)
	}

	return &Video{
		window:   window,
		renderer: renderer,
		vsync:    !cfg.DisableVSync,
	}, nil
}

// Size implements emu.Surface. It returns the renderer output size so cell
// geometry follows window resizes.
func (v *Video) Size() (w, h int32) {
	w, h, err := v.renderer.GetOutputSize()
	if err != nil {
		return v.window.GetSize()
	}
	return w, h
}

func (v *Video) Clear(c emu.Color) {
	v.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	v.renderer.Clear()
}

func (v *Video) FillRect(x, y, w, h int32, c emu.Color) {
	v.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	v.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (v *Video) Present() {
	v.renderer.Present()
}

func (v *Video) Close() {
	v.renderer.Destroy()
	v.window.Destroy()
	sdl.Quit()
}
