package emu

import (
	"fmt"

	"chirp8/emu/log"
)

func init() {
	log.Disable()
}

// enginestub records the calls made by the driver, in order.
type enginestub struct {
	calls []string
	fb    [ScreenHeight][ScreenWidth]bool
}

func (e *enginestub) Load(rom []byte) {
	e.calls = append(e.calls, fmt.Sprintf("load %d", len(rom)))
}

func (e *enginestub) Step() {
	e.calls = append(e.calls, "step")
}

func (e *enginestub) DecrementTimers() {
	e.calls = append(e.calls, "dec")
}

func (e *enginestub) Screen() *[ScreenHeight][ScreenWidth]bool {
	e.calls = append(e.calls, "screen")
	return &e.fb
}

// schedstub is a manually fired scheduler lane.
type schedstub struct {
	lastTok Token
	fn      func()
	tok     Token
	oneshot bool
}

func (s *schedstub) Schedule(fn func()) Token {
	s.lastTok++
	s.fn, s.tok = fn, s.lastTok
	return s.lastTok
}

func (s *schedstub) Cancel(tok Token) {
	if tok != 0 && tok == s.tok {
		s.fn, s.tok = nil, 0
	}
}

// fire invokes the scheduled callback, consuming it first on one-shot
// lanes. It reports whether a callback was scheduled at all.
func (s *schedstub) fire() bool {
	fn := s.fn
	if fn == nil {
		return false
	}
	if s.oneshot {
		s.fn, s.tok = nil, 0
	}
	fn()
	return true
}

// take consumes the scheduled callback without invoking it, emulating a
// host that dequeued the callback but did not run it yet.
func (s *schedstub) take() func() {
	fn := s.fn
	s.fn, s.tok = nil, 0
	return fn
}

func (s *schedstub) live() int {
	if s.tok != 0 {
		return 1
	}
	return 0
}

type rect struct {
	x, y, w, h int32
	c          Color
}

// surfstub records every paint operation.
type surfstub struct {
	w, h   int32
	clears []Color
	rects  []rect
	onFill func() // called on first FillRect
}

func (s *surfstub) Size() (int32, int32) { return s.w, s.h }

func (s *surfstub) Clear(c Color) { s.clears = append(s.clears, c) }

func (s *surfstub) FillRect(x, y, w, h int32, c Color) {
	if s.onFill != nil {
		s.onFill()
		s.onFill = nil
	}
	s.rects = append(s.rects, rect{x, y, w, h, c})
}
