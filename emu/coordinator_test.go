package emu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoordinatorPeriodOrder(t *testing.T) {
	eng := &enginestub{}
	c := NewCoordinator(eng)

	c.RunPeriod()

	want := []string{
		"step", "step", "step", "step", "step",
		"step", "step", "step", "step", "step",
		"dec",
	}
	if diff := cmp.Diff(want, eng.calls); diff != "" {
		t.Errorf("period calls mismatch (-want +got):\n%s", diff)
	}
}

func TestCoordinatorPeriodsDontInterleave(t *testing.T) {
	eng := &enginestub{}
	c := NewCoordinator(eng)

	c.RunPeriod()
	c.RunPeriod()

	// Second period must be a full repetition of the first, 10 steps then
	// one decrement, with nothing carried over or compensated.
	if len(eng.calls) != 2*(StepsPerPeriod+1) {
		t.Fatalf("got %d calls, want %d", len(eng.calls), 2*(StepsPerPeriod+1))
	}
	for _, periodCalls := range [][]string{eng.calls[:11], eng.calls[11:]} {
		for i, call := range periodCalls[:StepsPerPeriod] {
			if call != "step" {
				t.Errorf("call %d: got %q, want \"step\"", i, call)
			}
		}
		if periodCalls[StepsPerPeriod] != "dec" {
			t.Errorf("call %d: got %q, want \"dec\"", StepsPerPeriod, periodCalls[StepsPerPeriod])
		}
	}
}
