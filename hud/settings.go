package hud

import (
	"errors"
	"fmt"
)

// Settings holds the tunables of the background scene.
type Settings struct {
	// ParticleCount is the fixed size of the particle field
	ParticleCount int `mapstructure:"particle_count"`

	// ParticleSpeed is the width of the uniform velocity range, centred on 0
	ParticleSpeed float64 `mapstructure:"particle_speed"`

	// PhaseStep is added to each particle's phase every frame
	PhaseStep float64 `mapstructure:"phase_step"`

	// LinkDistance is the proximity threshold for connecting lines
	LinkDistance float64 `mapstructure:"link_distance"`

	// LinkAlpha is the opacity of a link between two coincident particles
	LinkAlpha float64 `mapstructure:"link_alpha"`

	// GridPitch is the spacing between grid lines in logical pixels
	GridPitch float64 `mapstructure:"grid_pitch"`

	// GridScroll is the horizontal scroll per frame
	GridScroll float64 `mapstructure:"grid_scroll"`

	// Breakpoint is the width at or below which the compact layout is used
	Breakpoint float64 `mapstructure:"breakpoint"`

	Theme ThemeSettings `mapstructure:"theme"`
}

// DefaultSettings returns the stock scene.
func DefaultSettings() Settings {
	return Settings{
		ParticleCount: 30,
		ParticleSpeed: 0.5,
		PhaseStep:     0.01,
		LinkDistance:  100,
		LinkAlpha:     0.1,
		GridPitch:     80,
		GridScroll:    0.3,
		Breakpoint:    768,
		Theme:         DefaultThemeSettings(),
	}
}

// Validate reports the first unusable value.
func (s Settings) Validate() error {
	var errs []error
	if s.ParticleCount < 0 {
		errs = append(errs, fmt.Errorf("particle_count %d is negative", s.ParticleCount))
	}
	if s.LinkDistance <= 0 {
		errs = append(errs, fmt.Errorf("link_distance %v must be positive", s.LinkDistance))
	}
	if s.GridPitch <= 0 {
		errs = append(errs, fmt.Errorf("grid_pitch %v must be positive", s.GridPitch))
	}
	if s.GridScroll < 0 {
		errs = append(errs, fmt.Errorf("grid_scroll %v is negative", s.GridScroll))
	}
	if s.LinkAlpha < 0 || s.LinkAlpha > 1 {
		errs = append(errs, fmt.Errorf("link_alpha %v outside [0,1]", s.LinkAlpha))
	}
	return errors.Join(errs...)
}
