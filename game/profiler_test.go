package game

import (
	"path/filepath"
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time      { return c.t }
func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newTestMonitor(clock *fakeClock) *FPSMonitor {
	m := NewFPSMonitor(55, 10*time.Second, 3*time.Second)
	m.now = clock.now
	m.start = clock.now()
	return m
}

// feed runs frames at the given rate until one measurement window closes.
func feed(m *FPSMonitor, clock *fakeClock, fps int) bool {
	dropped := false
	dt := 1.0 / float64(fps)
	for i := 0; i < fps; i++ {
		clock.add(time.Duration(dt * float64(time.Second)))
		if m.Observe(dt) {
			dropped = true
		}
		if m.counter == 0 {
			break
		}
	}
	return dropped
}

func TestFPSMonitorComputesRate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := newTestMonitor(clock)

	feed(m, clock, 60)
	if got := m.FPS(); got < 59 || got > 61 {
		t.Errorf("FPS() = %v, want about 60", got)
	}
}

func TestFPSMonitorDrops(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := newTestMonitor(clock)

	if feed(m, clock, 30) {
		t.Error("drop reported during warmup")
	}

	clock.add(5 * time.Second)
	if !feed(m, clock, 30) {
		t.Fatal("expected a drop after warmup")
	}
	if feed(m, clock, 30) {
		t.Error("drop reported inside the cooldown")
	}

	clock.add(11 * time.Second)
	if feed(m, clock, 60) {
		t.Error("drop reported at full speed")
	}
	if !feed(m, clock, 20) {
		t.Error("expected a drop after the cooldown")
	}
}

func TestFPSMonitorZeroThresholdNeverFires(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewFPSMonitor(0, 0, 0)
	m.now = clock.now
	for i := 0; i < 5; i++ {
		if feed(m, clock, 10) {
			t.Fatal("threshold 0 should never report")
		}
	}
}

func TestProfilerSingleCapture(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProfiler(dir, nil)
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	p.captureDuration = 20 * time.Millisecond

	if p.IsProfiling() {
		t.Fatal("profiling before any capture")
	}
	if err := p.CaptureProfile("test"); err != nil {
		t.Fatalf("CaptureProfile: %v", err)
	}
	if !p.IsProfiling() {
		t.Error("capture should be in progress")
	}
	if err := p.CaptureProfile("again"); err == nil {
		t.Error("a second capture while one runs should fail")
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() {
		if time.Now().After(deadline) {
			t.Fatal("capture never finished")
		}
		time.Sleep(10 * time.Millisecond)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.cpu.prof"))
	if len(matches) != 1 {
		t.Errorf("found %d cpu profiles, want 1", len(matches))
	}
}
