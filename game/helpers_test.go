package game

import (
	"image/color"
	"testing"

	"portfoliohud/content"
	"portfoliohud/hud"
)

// canvas records draw calls by kind and keeps every string drawn.
type canvas struct {
	calls map[string]int
	texts []string
}

func newCanvas() *canvas { return &canvas{calls: map[string]int{}} }

func (c *canvas) Clear()                                           { c.calls["clear"]++ }
func (c *canvas) FillRect(_, _, _, _ float64, _ color.Color)       { c.calls["fillrect"]++ }
func (c *canvas) StrokeRect(_, _, _, _, _ float64, _ color.Color)  { c.calls["strokerect"]++ }
func (c *canvas) StrokeLine(_, _, _, _, _ float64, _ color.Color)  { c.calls["line"]++ }
func (c *canvas) StrokePolyline(_ []hud.Point, _ float64, _ color.Color) {
	c.calls["polyline"]++
}
func (c *canvas) FillCircle(_, _, _ float64, _ color.Color) { c.calls["circle"]++ }
func (c *canvas) DrawText(s string, _, _ float64, _ color.Color) {
	c.calls["text"]++
	c.texts = append(c.texts, s)
}

func (c *canvas) drew(s string) bool {
	for _, t := range c.texts {
		if t == s {
			return true
		}
	}
	return false
}

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	return cat
}

func newTestOverlay(t *testing.T) *Overlay {
	t.Helper()
	palette, err := hud.DefaultThemeSettings().Palette(paletteSize, 0.55, 1)
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	return NewOverlay(OverlayConfig{
		Catalog:    loadCatalog(t),
		Theme:      hud.DefaultTheme(),
		Palette:    palette,
		Language:   content.EN,
		Breakpoint: hud.DefaultSettings().Breakpoint,
	})
}
