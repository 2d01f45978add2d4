package hud

import "testing"

func TestFrameLoopRunsPendingOnce(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	loop.RequestFrame(func() { calls++ })

	if got := loop.Tick(); got != 1 {
		t.Fatalf("Tick() ran %d callbacks, want 1", got)
	}
	if got := loop.Tick(); got != 0 {
		t.Errorf("second Tick() ran %d callbacks, want 0", got)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestFrameLoopDefersRequestsMadeDuringTick(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	var again func()
	again = func() {
		calls++
		loop.RequestFrame(again)
	}
	loop.RequestFrame(again)

	for i := 1; i <= 3; i++ {
		loop.Tick()
		if calls != i {
			t.Fatalf("after %d ticks calls = %d", i, calls)
		}
	}
	if loop.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", loop.Pending())
	}
}

func TestFrameLoopCancel(t *testing.T) {
	loop := NewFrameLoop()
	ran := false
	id := loop.RequestFrame(func() { ran = true })
	loop.CancelFrame(id)

	if got := loop.Tick(); got != 0 {
		t.Errorf("Tick() ran %d callbacks after cancel", got)
	}
	if ran {
		t.Error("cancelled callback ran")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", loop.Pending())
	}
}
