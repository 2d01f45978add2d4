package hud

import (
	"math"
	"math/rand"
)

// Particle is a floating data point in the background field.
type Particle struct {
	X, Y   float64 // logical position
	VX, VY float64 // velocity per frame
	Life   float64 // phase driving the opacity pulse
}

// Alpha returns the particle's pulsing opacity.
func (p *Particle) Alpha() float64 {
	return (math.Sin(p.Life)*0.5 + 0.5) * particleMaxAlpha
}

// ParticleField is a fixed-size set of particles. Unlike an emitter it never
// spawns or retires particles; it only moves them around a torus.
type ParticleField struct {
	particles []Particle
	phaseStep float64
}

// NewParticleField seeds n particles uniformly over a width x height area.
func NewParticleField(n int, width, height, speed, phaseStep float64, rng *rand.Rand) *ParticleField {
	f := &ParticleField{
		particles: make([]Particle, n),
		phaseStep: phaseStep,
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * height,
			VX:   (rng.Float64() - 0.5) * speed,
			VY:   (rng.Float64() - 0.5) * speed,
			Life: rng.Float64(),
		}
	}
	return f
}

// Len returns the particle count.
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Snapshot returns a copy of every particle.
func (f *ParticleField) Snapshot() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// advance moves particle i one frame and wraps it into [0,width) x [0,height).
func (f *ParticleField) advance(i int, width, height float64) *Particle {
	p := &f.particles[i]
	p.X += p.VX
	p.Y += p.VY
	p.Life += f.phaseStep
	p.X = wrap(p.X, width)
	p.Y = wrap(p.Y, height)
	return p
}

// Draw advances each particle, draws it, then links it to every other
// particle closer than linkDist. The pass is all-pairs; n is small and fixed.
func (f *ParticleField) Draw(c Canvas, th Theme, width, height, linkDist, linkAlpha float64) {
	for i := range f.particles {
		p := f.advance(i, width, height)
		c.FillCircle(p.X, p.Y, particleRadius, Fade(th.Accent, p.Alpha()))

		for j := range f.particles {
			if j == i {
				continue
			}
			q := &f.particles[j]
			d := math.Hypot(q.X-p.X, q.Y-p.Y)
			a, ok := LinkAlpha(d, linkDist, linkAlpha)
			if !ok {
				continue
			}
			c.StrokeLine(p.X, p.Y, q.X, q.Y, linkWidth, Fade(th.Accent, a))
		}
	}
}

// LinkAlpha returns the opacity of a link between two particles d apart,
// (1 - d/maxDist) * k, and false when no link should be drawn.
func LinkAlpha(d, maxDist, k float64) (float64, bool) {
	if d >= maxDist {
		return 0, false
	}
	return (1 - d/maxDist) * k, true
}

// wrap folds v into [0,size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size rounds to size
	if v >= size {
		v = 0
	}
	return v
}
