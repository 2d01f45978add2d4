package hud

import (
	"image/color"
	"testing"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestDefaultThemeColours(t *testing.T) {
	th := DefaultTheme()

	tests := []struct {
		name string
		got  color.NRGBA
		want color.NRGBA
	}{
		{"background", th.Background, color.NRGBA{R: 6, G: 11, B: 20, A: 255}},
		{"accent", th.Accent, color.NRGBA{R: 120, G: 220, B: 255, A: 255}},
		{"grid", th.Grid, color.NRGBA{R: 80, G: 200, B: 255, A: 255}},
		{"bar", th.Bar, color.NRGBA{R: 80, G: 180, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got.R, tt.want.R) || !near(tt.got.G, tt.want.G) || !near(tt.got.B, tt.want.B) || tt.got.A != 255 {
				t.Errorf("got %v, want about %v", tt.got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	ts := DefaultThemeSettings()
	p, err := ts.Palette(6, 0.53, 1)
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if len(p) != 6 {
		t.Fatalf("expected 6 colours, got %d", len(p))
	}
	accent := DefaultTheme().Accent
	if !near(p[0].R, accent.R) || !near(p[0].G, accent.G) || !near(p[0].B, accent.B) {
		t.Errorf("first colour %v should match the accent %v", p[0], accent)
	}
	for i := 1; i < len(p); i++ {
		if p[i] == p[i-1] {
			t.Errorf("colours %d and %d are identical", i-1, i)
		}
	}
}

func TestFade(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if got := Fade(c, tt.alpha).A; got != tt.want {
			t.Errorf("Fade(%v).A = %d, want %d", tt.alpha, got, tt.want)
		}
	}
}
