package emu

import (
	"testing"
)

var (
	colorOn  = Color{R: 0x33, G: 0xff, B: 0x66}
	colorOff = Color{}
)

func TestRendererFullRepaint(t *testing.T) {
	eng := &enginestub{}
	surf := &surfstub{w: 640, h: 320}
	r := NewRenderer(eng, surf, colorOn, colorOff)

	r.RenderFrame()

	if len(surf.clears) != 1 {
		t.Fatalf("got %d clears, want 1", len(surf.clears))
	}
	if surf.clears[0] != colorOff {
		t.Errorf("cleared with %v, want %v", surf.clears[0], colorOff)
	}
	if len(surf.rects) != ScreenWidth*ScreenHeight {
		t.Fatalf("got %d rects, want %d", len(surf.rects), ScreenWidth*ScreenHeight)
	}
	for i, rc := range surf.rects {
		if rc.w != 10 || rc.h != 10 {
			t.Fatalf("rect %d: got size (%d,%d), want (10,10)", i, rc.w, rc.h)
		}
	}
}

func TestRendererCellColors(t *testing.T) {
	eng := &enginestub{}
	eng.fb[0][0] = true
	surf := &surfstub{w: 640, h: 320}
	r := NewRenderer(eng, surf, colorOn, colorOff)

	r.RenderFrame()

	non := 0
	for _, rc := range surf.rects {
		if rc.c == colorOn {
			non++
			if rc.x != 0 || rc.y != 0 {
				t.Errorf("on-cell painted at (%d,%d), want (0,0)", rc.x, rc.y)
			}
		}
	}
	if non != 1 {
		t.Errorf("got %d rects in on color, want 1", non)
	}
}

func TestRendererCellGeometry(t *testing.T) {
	eng := &enginestub{}
	eng.fb[3][7] = true
	surf := &surfstub{w: 128, h: 64}
	r := NewRenderer(eng, surf, colorOn, colorOff)

	r.RenderFrame()

	for _, rc := range surf.rects {
		if rc.c != colorOn {
			continue
		}
		if rc.x != 14 || rc.y != 6 || rc.w != 2 || rc.h != 2 {
			t.Errorf("on-cell rect (%d,%d,%d,%d), want (14,6,2,2)", rc.x, rc.y, rc.w, rc.h)
		}
	}
}

// The engine hands out a view into its own mutable memory. The renderer
// must copy it eagerly: mutations occurring after the snapshot was taken
// cannot affect the frame being painted.
func TestRendererSnapshotsFramebuffer(t *testing.T) {
	eng := &enginestub{}
	eng.fb[0][0] = true
	eng.fb[0][1] = true
	surf := &surfstub{w: 640, h: 320}
	surf.onFill = func() {
		eng.fb[0][0] = false
		eng.fb[0][1] = false
	}
	r := NewRenderer(eng, surf, colorOn, colorOff)

	r.RenderFrame()

	non := 0
	for _, rc := range surf.rects {
		if rc.c == colorOn {
			non++
		}
	}
	if non != 2 {
		t.Errorf("got %d rects in on color, want 2", non)
	}
}
