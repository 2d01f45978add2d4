package game

import (
	"errors"
	"fmt"
	"math/rand"

	"portfoliohud/content"
	"portfoliohud/hud"
	"portfoliohud/logger"
	"portfoliohud/raster"
	"portfoliohud/view"
)

// SnapshotOptions describes one headless render.
type SnapshotOptions struct {
	Width, Height float64
	Scale         float64

	// Frames is how many background frames to run; the last one is kept
	Frames int
	Seed   int64

	Settings hud.Settings
	Theme    hud.ThemeSettings

	// Catalog, when set, draws the overlay for View on top
	Catalog  *content.Catalog
	View     view.View
	Project  string
	Language content.Language

	Logger *logger.Logger
}

// Snapshot runs the background for the requested frames on an in-memory
// surface and optionally paints the overlay over the last frame.
func Snapshot(o SnapshotOptions) (*raster.Surface, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("snapshot size %vx%v must be positive", o.Width, o.Height)
	}
	if o.Frames < 1 {
		return nil, fmt.Errorf("snapshot needs at least one frame, got %d", o.Frames)
	}
	theme, err := hud.NewTheme(o.Theme)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	surface := raster.New(o.Width, o.Height, o.Scale)
	loop := hud.NewFrameLoop()
	r := hud.NewRenderer(hud.RendererConfig{
		Settings:  o.Settings,
		Theme:     theme,
		Viewport:  hud.NewWindowViewport(o.Width, o.Height, o.Scale),
		Surface:   func() (hud.Surface, error) { return surface, nil },
		Scheduler: loop,
		Rand:      rand.New(rand.NewSource(o.Seed)),
		Logger:    o.Logger,
	})
	r.Start()
	if !r.Running() {
		return nil, hud.ErrNoSurface
	}
	for i := 0; i < o.Frames; i++ {
		loop.Tick()
	}
	r.Stop()

	if o.Catalog == nil {
		return surface, nil
	}

	palette, err := o.Theme.Palette(paletteSize, 0.55, 1)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	ov := NewOverlay(OverlayConfig{
		Catalog:    o.Catalog,
		Theme:      theme,
		Palette:    palette,
		Language:   o.Language,
		Breakpoint: o.Settings.Breakpoint,
	})
	ov.Navigate(o.View)
	if o.Project != "" {
		if _, err := o.Catalog.Project(o.Project); err != nil {
			return nil, err
		}
		ov.Navigate(view.Projects)
		if !ov.Router().Select(o.Project) {
			return nil, errors.New("could not open project " + o.Project)
		}
	}
	ov.Draw(surface, o.Width, o.Height)
	return surface, nil
}
