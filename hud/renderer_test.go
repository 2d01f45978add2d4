package hud

import (
	"math/rand"
	"testing"
)

type rendererFixture struct {
	loop     *FrameLoop
	viewport *fakeViewport
	surface  *recorder
	renderer *Renderer
}

func newRendererFixture(width, height, dpr float64) *rendererFixture {
	f := &rendererFixture{
		loop:     NewFrameLoop(),
		viewport: newFakeViewport(width, height, dpr),
		surface:  &recorder{},
	}
	f.renderer = NewRenderer(RendererConfig{
		Settings:  DefaultSettings(),
		Theme:     DefaultTheme(),
		Viewport:  f.viewport,
		Surface:   func() (Surface, error) { return f.surface, nil },
		Scheduler: f.loop,
		Rand:      rand.New(rand.NewSource(1)),
	})
	return f
}

func TestRendererStartSizesSurface(t *testing.T) {
	f := newRendererFixture(1280, 720, 2)
	f.renderer.Start()

	if !f.renderer.Running() {
		t.Fatal("renderer not running after Start")
	}
	if f.surface.width != 1280 || f.surface.height != 720 || f.surface.scale != 2 {
		t.Errorf("surface sized %vx%v @%v, want 1280x720 @2", f.surface.width, f.surface.height, f.surface.scale)
	}
	if got := f.renderer.Scene().ParticleCount(); got != 30 {
		t.Errorf("ParticleCount() = %d, want 30", got)
	}
	if f.loop.Pending() != 1 {
		t.Errorf("Pending() = %d, want first frame scheduled", f.loop.Pending())
	}
}

func TestRendererDrawsOneFramePerTick(t *testing.T) {
	f := newRendererFixture(1280, 720, 1)
	f.renderer.Start()

	for i := uint64(1); i <= 5; i++ {
		f.loop.Tick()
		if got := f.renderer.Scene().Clock(); got != i {
			t.Fatalf("after %d ticks clock = %d", i, got)
		}
	}
	if got := f.surface.count("clear"); got != 5 {
		t.Errorf("surface cleared %d times, want 5", got)
	}
}

func TestRendererStopHaltsDrawing(t *testing.T) {
	f := newRendererFixture(1280, 720, 1)
	f.renderer.Start()
	for i := 0; i < 3; i++ {
		f.loop.Tick()
	}
	scene := f.renderer.Scene()

	f.renderer.Stop()
	ops := len(f.surface.ops)
	for i := 0; i < 10; i++ {
		if ran := f.loop.Tick(); ran != 0 {
			t.Fatalf("tick %d after Stop ran %d callbacks", i, ran)
		}
	}

	if len(f.surface.ops) != ops {
		t.Errorf("surface received %d draw calls after Stop", len(f.surface.ops)-ops)
	}
	if scene.Clock() != 3 {
		t.Errorf("clock after Stop = %d, want 3", scene.Clock())
	}
	if len(f.viewport.listeners) != 0 {
		t.Errorf("%d resize listeners left after Stop", len(f.viewport.listeners))
	}
	if f.renderer.Running() {
		t.Error("Running() = true after Stop")
	}

	// A second Stop is a no-op.
	f.renderer.Stop()
}

func TestRendererResize(t *testing.T) {
	f := newRendererFixture(1280, 720, 2)
	f.renderer.Start()
	for i := 0; i < 4; i++ {
		f.loop.Tick()
	}

	f.viewport.resize(500, 900)

	if f.surface.width != 500 || f.surface.height != 900 {
		t.Errorf("surface logical size = %vx%v, want 500x900", f.surface.width, f.surface.height)
	}
	if f.surface.scale != 2 {
		t.Errorf("surface scale = %v, want 2 reapplied", f.surface.scale)
	}
	if f.surface.resizes != 2 {
		t.Errorf("surface resized %d times, want 2 (mount + resize)", f.surface.resizes)
	}
	scene := f.renderer.Scene()
	if scene.ParticleCount() != 30 {
		t.Errorf("ParticleCount() after resize = %d, want 30", scene.ParticleCount())
	}
	if scene.Clock() != 4 {
		t.Errorf("clock after resize = %d, want 4", scene.Clock())
	}

	f.loop.Tick()
	if scene.Clock() != 5 {
		t.Errorf("clock after next frame = %d, want 5", scene.Clock())
	}
	if scene.Variant() != VariantCompact {
		t.Errorf("variant at width 500 = %v, want compact", scene.Variant())
	}
}

func TestRendererWithoutSurfaceDrawsNothing(t *testing.T) {
	loop := NewFrameLoop()
	vp := newFakeViewport(800, 600, 1)
	r := NewRenderer(RendererConfig{
		Settings:  DefaultSettings(),
		Theme:     DefaultTheme(),
		Viewport:  vp,
		Surface:   func() (Surface, error) { return nil, ErrNoSurface },
		Scheduler: loop,
	})

	r.Start()

	if r.Running() {
		t.Error("Running() = true without a surface")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, want no frames", loop.Pending())
	}
	if len(vp.listeners) != 0 {
		t.Errorf("registered %d resize listeners without a surface", len(vp.listeners))
	}
	r.Stop()
}

func TestRendererRestartResetsClock(t *testing.T) {
	f := newRendererFixture(1280, 720, 1)
	f.renderer.Start()
	f.loop.Tick()
	f.loop.Tick()
	f.renderer.Stop()

	f.renderer.Start()
	if got := f.renderer.Scene().Clock(); got != 0 {
		t.Errorf("clock after remount = %d, want 0", got)
	}
	f.loop.Tick()
	if got := f.renderer.Scene().Clock(); got != 1 {
		t.Errorf("clock after first frame of remount = %d, want 1", got)
	}
}
