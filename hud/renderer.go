package hud

import (
	"math/rand"
	"time"

	"portfoliohud/logger"
)

// RendererConfig wires a Renderer to its host.
type RendererConfig struct {
	Settings  Settings
	Theme     Theme
	Viewport  Viewport
	Surface   SurfaceProvider
	Scheduler Scheduler

	// Rand seeds the particles and data-stream glyphs. Nil uses the clock.
	Rand *rand.Rand

	Logger *logger.Logger
}

// Renderer runs the background scene: it owns the surface, the scene and the
// pending frame between Start and Stop.
type Renderer struct {
	cfg RendererConfig

	surface Surface
	scene   *Scene
	frame   FrameID
	detach  func()
	running bool
}

// NewRenderer creates a stopped renderer.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Renderer{cfg: cfg}
}

// Start acquires the surface, seeds a fresh scene and schedules the first
// frame. If the surface cannot be acquired the renderer stays stopped and
// draws nothing.
func (r *Renderer) Start() {
	if r.running {
		return
	}

	surface, err := r.cfg.Surface()
	if err != nil || surface == nil {
		r.cfg.Logger.Warn("hud: no drawing surface, background disabled: %v", err)
		return
	}

	width, height := r.cfg.Viewport.Size()
	surface.Resize(width, height, r.scale())

	r.surface = surface
	r.scene = NewScene(r.cfg.Settings, r.cfg.Theme, width, height, r.cfg.Rand)
	r.detach = r.cfg.Viewport.OnResize(r.handleResize)
	r.running = true
	r.frame = r.cfg.Scheduler.RequestFrame(r.tick)

	r.cfg.Logger.Debug("hud: started %.0fx%.0f @%.2fx, %d particles, %s layout",
		width, height, r.scale(), r.scene.ParticleCount(), r.scene.Variant())
}

// Stop cancels the pending frame and detaches the resize listener. No frame
// callback runs after Stop returns.
func (r *Renderer) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.cfg.Scheduler.CancelFrame(r.frame)
	if r.detach != nil {
		r.detach()
		r.detach = nil
	}
	r.scene = nil
	r.surface = nil
	r.cfg.Logger.Debug("hud: stopped")
}

// Running reports whether frames are being scheduled.
func (r *Renderer) Running() bool { return r.running }

// Scene returns the live scene, or nil when stopped.
func (r *Renderer) Scene() *Scene { return r.scene }

// Surface returns the acquired surface, or nil when stopped.
func (r *Renderer) Surface() Surface { return r.surface }

func (r *Renderer) tick() {
	if !r.running {
		return
	}
	r.scene.Frame(r.surface)
	r.frame = r.cfg.Scheduler.RequestFrame(r.tick)
}

func (r *Renderer) handleResize() {
	if !r.running {
		return
	}
	width, height := r.cfg.Viewport.Size()
	r.surface.Resize(width, height, r.scale())
	r.scene.Resize(width, height)
	r.cfg.Logger.Debug("hud: resized to %.0fx%.0f (%s)", width, height, r.scene.Variant())
}

func (r *Renderer) scale() float64 {
	s := r.cfg.Viewport.DeviceScaleFactor()
	if s <= 0 {
		return 1
	}
	return s
}
