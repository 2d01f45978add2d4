package game

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"portfoliohud/config"
	"portfoliohud/content"
	"portfoliohud/hud"
	"portfoliohud/logger"
)

// paletteSize is the number of series colours for pie and bubble charts.
const paletteSize = 8

// Game hosts the background renderer and the overlay in an ebiten window.
// The background draws into an offscreen image from Update; Draw blits it and
// paints the overlay on top.
type Game struct {
	cfg   config.Config
	log   *logger.Logger
	theme hud.Theme

	loop     *hud.FrameLoop
	viewport *hud.WindowViewport
	surface  *ImageSurface
	renderer *hud.Renderer
	started  bool

	overlay *Overlay
	screen  *Renderer
	keys    []ebiten.Key

	// Last size reported by Layout, applied on the next Update
	layoutW, layoutH, layoutScale float64

	fps      *FPSMonitor
	profiler *Profiler

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame builds the window contents. The background starts on the first
// Update, once the real window size is known.
func NewGame(cfg config.Config, cat *content.Catalog, log *logger.Logger) (*Game, error) {
	theme, err := hud.NewTheme(cfg.HUD.Theme)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	palette, err := cfg.HUD.Theme.Palette(paletteSize, 0.55, 1)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	g := &Game{
		cfg:            cfg,
		log:            log,
		theme:          theme,
		loop:           hud.NewFrameLoop(),
		viewport:       hud.NewWindowViewport(float64(cfg.Window.Width), float64(cfg.Window.Height), deviceScale()),
		surface:        NewImageSurface(),
		screen:         NewRenderer(nil, 1),
		keys:           make([]ebiten.Key, 0, 8),
		fps:            NewFPSMonitor(cfg.Profile.FPSThreshold, cfg.Profile.Cooldown, cfg.Profile.Warmup),
		lastUpdateTime: time.Now(),
	}
	g.overlay = NewOverlay(OverlayConfig{
		Catalog:    cat,
		Theme:      theme,
		Palette:    palette,
		Language:   cfg.Language(),
		Breakpoint: cfg.HUD.Breakpoint,
	})
	g.renderer = hud.NewRenderer(hud.RendererConfig{
		Settings:  cfg.HUD,
		Theme:     theme,
		Viewport:  g.viewport,
		Surface:   func() (hud.Surface, error) { return g.surface, nil },
		Scheduler: g.loop,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:    log,
	})

	if cfg.Profile.Enabled {
		p, err := NewProfiler(cfg.Profile.Dir, log)
		if err != nil {
			log.Warn("game: profiling disabled: %v", err)
		} else {
			g.profiler = p
		}
	}
	return g, nil
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// Overlay exposes the page state.
func (g *Game) Overlay() *Overlay { return g.overlay }

// Close stops the background and releases its surface.
func (g *Game) Close() {
	g.renderer.Stop()
}

// Update applies pending resizes and input, then runs the background frame.
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if g.layoutW > 0 && g.layoutH > 0 {
		g.viewport.Set(g.layoutW, g.layoutH, g.layoutScale)
	}
	if !g.started {
		g.renderer.Start()
		g.started = true
	}

	if err := g.handleInput(); err != nil {
		return err
	}
	g.overlay.Update()
	g.loop.Tick()

	if g.fps.Observe(deltaTime) {
		g.onFPSDrop()
	}
	return nil
}

func (g *Game) onFPSDrop() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	g.log.Warn("game: FPS drop detected (%.0f FPS), numGC=%d heap=%d KB", g.fps.FPS(), m.NumGC, m.HeapAlloc/1024)

	if g.profiler == nil {
		return
	}
	particles := 0
	if s := g.renderer.Scene(); s != nil {
		particles = s.ParticleCount()
	}
	reason := fmt.Sprintf("fps%.0f-particles%d", g.fps.FPS(), particles)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.log.Warn("game: failed to capture profile: %v", err)
	}
}

// Draw blits the background and paints the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.surface.Image(); img != nil && g.renderer.Running() {
		screen.DrawImage(img, &ebiten.DrawImageOptions{})
	} else {
		screen.Fill(g.theme.Background)
	}

	g.screen.Retarget(screen, g.viewport.DeviceScaleFactor())
	w, h := g.viewport.Size()
	g.overlay.Draw(g.screen, w, h)

	if GetDebugState().ShowStats {
		g.drawStats(screen)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	stats := fmt.Sprintf("FPS %.1f  TPS %.1f", g.fps.FPS(), ebiten.ActualTPS())
	if s := g.renderer.Scene(); s != nil {
		w, h := s.Size()
		stats += fmt.Sprintf("\nclock %d  particles %d\n%s %.0fx%.0f @%.2fx",
			s.Clock(), s.ParticleCount(), s.Variant(), w, h, g.viewport.DeviceScaleFactor())
	} else {
		stats += "\nbackground off"
	}
	if g.profiler != nil && g.profiler.IsProfiling() {
		stats += "\nprofiling"
	}
	ebitenutil.DebugPrintAt(screen, stats, 4, int((navHeight+4)*g.viewport.DeviceScaleFactor()))
}

// Layout is required by ebiten.Game; LayoutF takes precedence.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF renders at physical resolution: the screen is the window size
// times the device scale factor.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := deviceScale()
	g.layoutW, g.layoutH, g.layoutScale = outsideWidth, outsideHeight, scale
	return outsideWidth * scale, outsideHeight * scale
}
