package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// HSV is a colour in hue (0-360), saturation (0-1), value (0-1).
type HSV struct {
	H float64 `mapstructure:"h"`
	S float64 `mapstructure:"s"`
	V float64 `mapstructure:"v"`
}

// ThemeSettings is the configurable palette.
type ThemeSettings struct {
	Background HSV `mapstructure:"background"`
	Accent     HSV `mapstructure:"accent"`
	Grid       HSV `mapstructure:"grid"`
	Bar        HSV `mapstructure:"bar"`
}

// DefaultThemeSettings is the cyan-on-navy HUD palette.
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		Background: HSV{H: 218.6, S: 0.7, V: 0.078}, // #060b14
		Accent:     HSV{H: 195.6, S: 0.53, V: 1},    // 120,220,255
		Grid:       HSV{H: 198.9, S: 0.686, V: 1},   // 80,200,255
		Bar:        HSV{H: 205.7, S: 0.686, V: 1},   // 80,180,255
	}
}

// Theme holds the resolved opaque colours. Translucency is applied per draw
// call with fade.
type Theme struct {
	Background color.NRGBA
	Accent     color.NRGBA
	Grid       color.NRGBA
	Bar        color.NRGBA
}

// NewTheme resolves the HSV settings to RGB.
func NewTheme(ts ThemeSettings) (Theme, error) {
	var th Theme
	for _, c := range []struct {
		name string
		in   HSV
		out  *color.NRGBA
	}{
		{"background", ts.Background, &th.Background},
		{"accent", ts.Accent, &th.Accent},
		{"grid", ts.Grid, &th.Grid},
		{"bar", ts.Bar, &th.Bar},
	} {
		r, g, b, err := colorconv.HSVToRGB(c.in.H, c.in.S, c.in.V)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", c.name, err)
		}
		*c.out = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return th, nil
}

// DefaultTheme resolves DefaultThemeSettings. The stock values are always
// in range, so the error is dropped.
func DefaultTheme() Theme {
	th, _ := NewTheme(DefaultThemeSettings())
	return th
}

// Palette spreads n opaque colours around the hue circle, starting at the
// accent hue, at the given saturation and value.
func (ts ThemeSettings) Palette(n int, s, v float64) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, n)
	for i := 0; i < n; i++ {
		h := math.Mod(ts.Accent.H+float64(i)*360/float64(n), 360)
		r, g, b, err := colorconv.HSVToRGB(h, s, v)
		if err != nil {
			return nil, fmt.Errorf("palette colour %d: %w", i, err)
		}
		out = append(out, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}

// Fade returns c with the given opacity in [0,1].
func Fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(clamp(alpha, 0, 1)*255 + 0.5)
	return c
}

// mix linearly interpolates two opaque colours.
func mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp(t, 0, 1)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
