package emu

// The engine is advanced in periods of StepsPerPeriod instructions followed
// by one timer decrement, TickRate periods per second. The 10:1 ratio
// approximates the conventional ~600 Hz CHIP-8 instruction rate against
// the 60 Hz timer rate and is not configurable.
const (
	TickRate       = 60
	StepsPerPeriod = 10
)

// Coordinator advances engine state at the fixed emulation cadence. Each
// period runs to completion before control returns to the host loop, so
// periods never overlap and are never split across renders.
type Coordinator struct {
	inst Instance
}

func NewCoordinator(inst Instance) *Coordinator {
	return &Coordinator{inst: inst}
}

// RunPeriod executes one 60 Hz period: StepsPerPeriod instruction steps,
// then a single timer decrement, in that order. Periods the host failed to
// invoke on schedule are simply lost, RunPeriod never compensates.
func (c *Coordinator) RunPeriod() {
	for range StepsPerPeriod {
		c.inst.Step()
	}
	c.inst.DecrementTimers()
}
