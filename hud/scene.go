package hud

import "math/rand"

// Scene is the complete state of the background: size, clock and particles.
// It is owned by one Renderer and only touched from its frame callback.
type Scene struct {
	settings Settings
	theme    Theme
	rng      *rand.Rand

	width, height float64
	clock         uint64
	field         *ParticleField
	variant       Variant
}

// NewScene seeds a scene for a width x height logical surface.
func NewScene(s Settings, th Theme, width, height float64, rng *rand.Rand) *Scene {
	return &Scene{
		settings: s,
		theme:    th,
		rng:      rng,
		width:    width,
		height:   height,
		field:    NewParticleField(s.ParticleCount, width, height, s.ParticleSpeed, s.PhaseStep, rng),
		variant:  SelectVariant(width, s.Breakpoint),
	}
}

// Clock returns the number of frames drawn so far.
func (s *Scene) Clock() uint64 { return s.clock }

// Size returns the logical surface size.
func (s *Scene) Size() (width, height float64) { return s.width, s.height }

// Variant returns the layout chosen for the current width.
func (s *Scene) Variant() Variant { return s.variant }

// Particles returns a copy of the particle field.
func (s *Scene) Particles() []Particle { return s.field.Snapshot() }

// ParticleCount returns the size of the field.
func (s *Scene) ParticleCount() int { return s.field.Len() }

// Resize changes the logical size. Clock and particles carry over; particles
// that fall outside the new bounds are wrapped on the next frame.
func (s *Scene) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.variant = SelectVariant(width, s.settings.Breakpoint)
}

// Frame draws one complete frame onto c and advances the clock.
func (s *Scene) Frame(c Canvas) {
	c.Clear()
	c.FillRect(0, 0, s.width, s.height, s.theme.Background)

	drawGrid(c, s.theme, s.clock, s.width, s.height, s.settings.GridScroll, s.settings.GridPitch)
	s.field.Draw(c, s.theme, s.width, s.height, s.settings.LinkDistance, s.settings.LinkAlpha)

	var placements []Placement
	s.variant, placements = Arrange(s.width, s.height, s.settings.Breakpoint)
	t := float64(s.clock)
	for _, p := range placements {
		s.drawWidget(c, t, p)
	}

	s.clock++
}

func (s *Scene) drawWidget(c Canvas, t float64, p Placement) {
	switch p.Kind {
	case WidgetLineChart:
		drawLineChart(c, s.theme, t, p.X, p.Y, p.W, p.H)
	case WidgetBars:
		drawBars(c, s.theme, t, p.X, p.Y, p.W, p.H)
	case WidgetRadar:
		drawRadar(c, s.theme, t, p.X, p.Y, p.R)
	case WidgetScatter:
		drawScatterPlot(c, s.theme, t, p.X, p.Y, p.W, p.H)
	case WidgetProgress:
		drawCircularProgress(c, s.theme, p.X, p.Y, p.R, Progress(t))
	case WidgetRings:
		drawRotatingRings(c, s.theme, t, p.X, p.Y)
	case WidgetDataStream:
		drawDataStream(c, s.theme, s.rng, t, p.X, p.Y)
	}
}
