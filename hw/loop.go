package hw

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"chirp8/emu"
	"chirp8/emu/log"
)

// Loop is the single-threaded cooperative host scheduler. Every callback,
// whether on the fixed-rate interval lane or the display-refresh lane,
// runs to completion on the loop goroutine before the next one fires, so
// lane interleaving is the only source of non-determinism.
type Loop struct {
	video  *Video
	keymap Keymap
	onKey  func(key byte, down bool)
	frame  func()

	period time.Duration

	lastTok     emu.Token
	intervalFn  func()
	intervalTok emu.Token
	refreshFn   func()
	refreshTok  emu.Token

	quit bool
}

func NewLoop(video *Video, keymap Keymap) *Loop {
	return &Loop{
		video:  video,
		keymap: keymap,
		period: time.Second / emu.TickRate,
	}
}

// SetKeyHandler registers the receiver of keypad key transitions.
func (l *Loop) SetKeyHandler(fn func(key byte, down bool)) { l.onKey = fn }

// SetFrameHook registers a function called once per loop iteration, after
// the refresh lane. Used to pump audio.
func (l *Loop) SetFrameHook(fn func()) { l.frame = fn }

// Intervals returns the fixed-rate interval lane. Its scheduled callback
// fires once per 60 Hz period until cancelled. Periods the loop was unable
// to invoke on time are dropped, never replayed.
func (l *Loop) Intervals() emu.Scheduler { return intervalLane{l} }

// Refreshes returns the display-refresh lane. Its scheduled callback fires
// once on the next loop iteration and is consumed; the owner reschedules.
func (l *Loop) Refreshes() emu.Scheduler { return refreshLane{l} }

func (l *Loop) Stop() { l.quit = true }

// Run drives the loop until a quit request. With vsync enabled the present
// call paces iterations to the display refresh rate; the interval lane
// runs off the wall clock either way.
func (l *Loop) Run() {
	next := time.Now().Add(l.period)
	for !l.quit {
		l.pollEvents()

		if now := time.Now(); !now.Before(next) {
			if l.intervalFn != nil {
				l.intervalFn()
			}
			next = next.Add(l.period)
			if !now.Before(next) {
				// Late by more than a full period. Skipped periods are
				// lost, restart the cadence from now.
				next = now.Add(l.period)
			}
		}

		if fn := l.refreshFn; fn != nil {
			// Consume before invoking so the callback can reschedule.
			l.refreshFn, l.refreshTok = nil, 0
			fn()
		}

		if l.frame != nil {
			l.frame()
		}

		l.video.Present()
		if !l.video.vsync {
			sdl.Delay(1)
		}
	}
	log.ModEmu.Infof("host loop exited")
}

func (l *Loop) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			l.quit = true
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 || l.onKey == nil {
				continue
			}
			if key, ok := l.keymap[e.Keysym.Scancode]; ok {
				l.onKey(key, e.Type == sdl.KEYDOWN)
			}
		}
	}
}

type intervalLane struct{ l *Loop }

func (s intervalLane) Schedule(fn func()) emu.Token {
	s.l.lastTok++
	s.l.intervalFn, s.l.intervalTok = fn, s.l.lastTok
	return s.l.lastTok
}

func (s intervalLane) Cancel(tok emu.Token) {
	if tok != 0 && tok == s.l.intervalTok {
		s.l.intervalFn, s.l.intervalTok = nil, 0
	}
}

type refreshLane struct{ l *Loop }

func (s refreshLane) Schedule(fn func()) emu.Token {
	s.l.lastTok++
	s.l.refreshFn, s.l.refreshTok = fn, s.l.lastTok
	return s.l.lastTok
}

func (s refreshLane) Cancel(tok emu.Token) {
	if tok != 0 && tok == s.l.refreshTok {
		s.l.refreshFn, s.l.refreshTok = nil, 0
	}
}
