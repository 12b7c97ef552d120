package emu

import (
	"chirp8/emu/log"
)

// Lifecycle owns the engine handle and both periodic-activity tokens for
// one activation cycle. It is the sole arbiter of when the coordinator and
// the renderer run: neither outlives it, and at most one token per lane is
// live at any time.
type Lifecycle struct {
	intervals Scheduler
	refresh   Scheduler
	surf      Surface
	on, off   Color

	inst        Instance
	coord       *Coordinator
	rend        *Renderer
	intervalTok Token
	refreshTok  Token
}

func NewLifecycle(intervals, refresh Scheduler, surf Surface, on, off Color) *Lifecycle {
	return &Lifecycle{
		intervals: intervals,
		refresh:   refresh,
		surf:      surf,
		on:        on,
		off:       off,
	}
}

// Activate starts one fixed-rate coordinator interval and schedules one
// initial render refresh for inst. A nil instance is a valid idle state:
// no timers start and no rendering occurs. Activating again without an
// intervening Deactivate is a caller error, not guarded here.
func (lc *Lifecycle) Activate(inst Instance) {
	if inst == nil {
		log.ModEmu.Infof("no engine instance, staying idle")
		return
	}

	lc.inst = inst
	lc.coord = NewCoordinator(inst)
	lc.rend = NewRenderer(inst, lc.surf, lc.on, lc.off)
	lc.intervalTok = lc.intervals.Schedule(lc.coord.RunPeriod)
	lc.refreshTok = lc.refresh.Schedule(lc.renderFrame)
}

// renderFrame paints one frame then rearms the refresh callback, unless
// Deactivate ran since it was scheduled.
func (lc *Lifecycle) renderFrame() {
	if lc.rend == nil {
		// Deactivated while this callback was in flight.
		return
	}
	lc.rend.RenderFrame()
	if lc.refreshTok != 0 {
		lc.refreshTok = lc.refresh.Schedule(lc.renderFrame)
	}
}

// Deactivate cancels the pending refresh callback and clears the running
// interval, dropping the engine handle. It is idempotent and safe to call
// when nothing was started, including while a refresh callback is in
// flight; afterwards no further interval or refresh firing occurs.
func (lc *Lifecycle) Deactivate() {
	if lc.intervalTok != 0 {
		lc.intervals.Cancel(lc.intervalTok)
		lc.intervalTok = 0
	}
	if lc.refreshTok != 0 {
		lc.refresh.Cancel(lc.refreshTok)
		lc.refreshTok = 0
	}
	lc.inst = nil
	lc.coord = nil
	lc.rend = nil
}
