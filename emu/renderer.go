package emu

import (
	"fmt"
	"strconv"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q, want \"#rrggbb\"", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Surface is the raster target the renderer paints to. Its pixel
// dimensions are independent of the logical screen grid.
type Surface interface {
	Size() (w, h int32)
	Clear(c Color)
	FillRect(x, y, w, h int32, c Color)
}

// Renderer repaints the whole surface from an engine framebuffer snapshot,
// one filled rectangle per cell. There are no partial updates: every
// invocation clears the surface and paints all cells.
type Renderer struct {
	inst Instance
	surf Surface
	on   Color
	off  Color

	// Renderer-owned copy of the framebuffer. The engine may hand out a
	// view into its own mutable memory, valid only until the next step or
	// timer decrement, so it is copied before painting starts.
	fb [ScreenHeight][ScreenWidth]bool
}

func NewRenderer(inst Instance, surf Surface, on, off Color) *Renderer {
	return &Renderer{inst: inst, surf: surf, on: on, off: off}
}

// RenderFrame paints one full frame. Cell geometry is recomputed on every
// call so the grid follows surface resizes.
func (r *Renderer) RenderFrame() {
	r.fb = *r.inst.Screen()

	w, h := r.surf.Size()
	cellw := w / ScreenWidth
	cellh := h / ScreenHeight

	r.surf.Clear(r.off)
	for y := range int32(ScreenHeight) {
		for x := range int32(ScreenWidth) {
			c := r.off
			if r.fb[y][x] {
				c = r.on
			}
			r.surf.FillRect(x*cellw, y*cellh, cellw, cellh, c)
		}
	}
}
